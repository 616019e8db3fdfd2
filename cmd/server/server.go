package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/kevinxiao27/sortvis/internal/config"
	"github.com/kevinxiao27/sortvis/internal/dataset"
	"github.com/kevinxiao27/sortvis/replay"
	"github.com/kevinxiao27/sortvis/sorts"
)

// Server records a fresh run for every websocket client and streams its
// replay one frame per tick. Connections share nothing but the config.
type Server struct {
	cfg      *config.Config
	upgrader websocket.Upgrader
}

type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type FrameData struct {
	Cursor    int          `json:"cursor"`
	Total     int          `json:"total"`
	Sequences [][]CellData `json:"sequences"`
}

type CellData struct {
	Value int    `json:"v"`
	Tag   string `json:"t,omitempty"`
}

type RunData struct {
	ID          string `json:"id"`
	Algorithm   string `json:"algorithm"`
	Size        int    `json:"size"`
	Auxiliaries int    `json:"auxiliaries"`
	Ops         int    `json:"ops"`
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Routes(r *mux.Router) {
	r.HandleFunc("/algorithms", s.handleAlgorithms).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebSocket)
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"algorithms": sorts.Names(),
		"orders":     dataset.Orders(),
	})
}

// runConfig derives a per-connection config from query parameters layered
// over the server config.
func (s *Server) runConfig(r *http.Request) (*config.Config, error) {
	cfg := *s.cfg
	q := r.URL.Query()

	if v := q.Get("algorithm"); v != "" {
		cfg.Algorithm = v
	}
	if v := q.Get("order"); v != "" {
		cfg.Order = v
	}
	for key, dst := range map[string]*int{
		"size": &cfg.Size,
		"ops":  &cfg.Replay.OpsPerFrame,
		"fps":  &cfg.Replay.FPS,
	} {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, err
			}
			*dst = n
		}
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		cfg.Seed = n
	}

	if cfg.Size > cfg.Server.MaxSize {
		cfg.Size = cfg.Server.MaxSize
	}
	return &cfg, cfg.Validate()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.runConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	values, err := dataset.Generate(cfg.Size, cfg.Order, cfg.Seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec, err := sorts.RecordInts(cfg.Algorithm, values)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		glog.Warningf("upgrade: %v", err)
		return
	}
	defer conn.Close()

	glog.Infof("CLIENT CONNECTED: run=%s algorithm=%s size=%d ops=%d", rec.ID, rec.Algorithm, len(values), rec.Log.Len())

	// a reader is needed to notice the client going away
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = conn.WriteJSON(WSMessage{Type: "init", Data: RunData{
		ID:          rec.ID.String(),
		Algorithm:   rec.Algorithm,
		Size:        len(values),
		Auxiliaries: rec.Auxiliaries,
		Ops:         rec.Log.Len(),
	}})
	if err != nil {
		return
	}

	if err := stream(conn, replay.New(rec.Log, rec.Initial), cfg.Replay, gone); err != nil {
		glog.Warningf("stream run=%s: %v", rec.ID, err)
		return
	}
	glog.Infof("CLIENT DONE: run=%s", rec.ID)
}

// stream sends one frame per tick until the engine is done, then a final
// faded frame and a done message.
func stream(conn *websocket.Conn, e *replay.Engine[int], rc config.ReplayConfig, gone <-chan struct{}) error {
	var tick <-chan time.Time
	if rc.FPS > 0 {
		ticker := time.NewTicker(max(time.Second/time.Duration(rc.FPS), time.Millisecond))
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		budget := rc.OpsPerFrame
		if e.Done() {
			budget = 0
		}
		if _, err := e.Step(budget); err != nil {
			conn.WriteJSON(WSMessage{Type: "error", Data: err.Error()})
			return err
		}
		if err := conn.WriteJSON(WSMessage{Type: "frame", Data: frame(e)}); err != nil {
			return err
		}
		if budget == 0 {
			return conn.WriteJSON(WSMessage{Type: "done"})
		}

		if tick != nil {
			select {
			case <-gone:
				return nil
			case <-tick:
			}
		}
	}
}

func frame(e *replay.Engine[int]) FrameData {
	view := e.View()
	seqs := make([][]CellData, len(view))
	for id, cells := range view {
		seqs[id] = make([]CellData, len(cells))
		for i, c := range cells {
			seqs[id][i] = CellData{Value: c.Value}
			if c.Tag != replay.Default {
				seqs[id][i].Tag = c.Tag.String()
			}
		}
	}
	return FrameData{Cursor: e.Cursor(), Total: e.Total(), Sequences: seqs}
}
