package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/kevinxiao27/sortvis/internal/config"
	"github.com/kevinxiao27/sortvis/internal/dataset"
	"github.com/kevinxiao27/sortvis/internal/render"
	"github.com/kevinxiao27/sortvis/ol"
	"github.com/kevinxiao27/sortvis/replay"
	"github.com/kevinxiao27/sortvis/sorts"
)

func record(cfg *config.Config) (*sorts.Recording[int], error) {
	values, err := dataset.Generate(cfg.Size, cfg.Order, cfg.Seed)
	if err != nil {
		return nil, err
	}

	rec, err := sorts.RecordInts(cfg.Algorithm, values)
	if err != nil {
		return nil, err
	}
	glog.Infof("recorded %s over %d elements: %d ops in %s (id=%s)",
		rec.Algorithm, len(values), rec.Log.Len(), rec.Elapsed, rec.ID)
	return rec, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rec, err := record(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	engine := replay.New(rec.Log, rec.Initial)
	out := cmd.OutOrStdout()

	if cfg.Replay.Headless {
		bar := render.ShowProgress(os.Stderr, rec.Log.Len(), "replaying "+rec.Algorithm)
		if err := render.Drain(ctx, engine, cfg.Replay.OpsPerFrame, bar); err != nil && ctx.Err() == nil {
			glog.Errorf("replay run=%s halted: %v", rec.ID, err)
			return err
		}
	} else {
		width, height := render.TerminalSize(os.Stdout, 80, 24)
		bands := 1 + rec.Auxiliaries
		// leave a rule between bands and a status line
		band := (height - bands) / bands
		player := &render.Player{
			Engine:      engine,
			Frame:       render.NewFrame(nil, rec.Initial, width, band),
			OpsPerFrame: cfg.Replay.OpsPerFrame,
			FPS:         cfg.Replay.FPS,
			Title:       fmt.Sprintf("%s n=%d", rec.Algorithm, len(rec.Initial)),
			Out:         out,
			In:          os.Stdin,
		}
		if err := player.Run(ctx); err != nil && ctx.Err() == nil {
			glog.Errorf("replay run=%s halted: %v", rec.ID, err)
			return err
		}
	}

	summary := render.Summary{
		Recording: rec,
		Frames:    render.Frames(engine.Cursor(), cfg.Replay.OpsPerFrame),
	}
	if engine.Done() {
		summary.Final = engine.Values(0)
	}
	render.PrintSummary(out, summary)
	if summary.Final != nil && !summary.Verified() {
		return fmt.Errorf("replayed content does not match sorted input")
	}
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rec, err := record(cfg)
	if err != nil {
		return err
	}

	render.PrintSummary(cmd.OutOrStdout(), render.Summary{Recording: rec})
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rec, err := record(cfg)
	if err != nil {
		return err
	}

	ops := rec.Log.Slice(0, rec.Log.Len())
	if dumpSeq >= 0 {
		ops = rec.Log.Of(ol.SeqID(dumpSeq))
	}
	ops = ops[:limit(len(ops))]

	out := cmd.OutOrStdout()
	if dumpRaw {
		litter.Config.HidePrivateFields = false
		fmt.Fprintln(out, litter.Sdump(ops))
		return nil
	}

	for i, op := range ops {
		fmt.Fprintf(out, "%6d  %s\n", i, op)
	}
	return nil
}

func limit(n int) int {
	if dumpLimit > 0 {
		return min(n, dumpLimit)
	}
	return n
}
