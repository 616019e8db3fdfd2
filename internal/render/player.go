package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/kevinxiao27/sortvis/internal/errs"
	"github.com/kevinxiao27/sortvis/replay"
)

const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

type key int

const (
	keyPause key = iota
	keyQuit
)

// Player replays an engine at a fixed frame rate, drawing one frame per
// tick. Space pauses, q or Esc quits.
type Player struct {
	Engine      *replay.Engine[int]
	Frame       *Frame
	OpsPerFrame int
	FPS         int // 0 draws as fast as the terminal allows
	Title       string

	Out io.Writer
	In  *os.File // keyboard; nil disables key handling
}

// TerminalSize returns the size of the terminal behind f, or the fallbacks
// when f is not a terminal.
func TerminalSize(f *os.File, fallbackW, fallbackH int) (int, int) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return fallbackW, fallbackH
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackW, fallbackH
	}
	return w, h
}

// Run plays until the log is exhausted, the user quits, or ctx ends. The
// last frame is drawn with every highlight faded.
func (p *Player) Run(ctx context.Context) error {
	keys, restore := p.listen()
	defer restore()

	fmt.Fprint(p.Out, hideCursor)
	defer fmt.Fprint(p.Out, showCursor)

	var tick <-chan time.Time
	if p.FPS > 0 {
		ticker := time.NewTicker(max(time.Second/time.Duration(p.FPS), time.Millisecond))
		defer ticker.Stop()
		tick = ticker.C
	}

	paused := false
	for {
		if !paused {
			if _, err := p.Engine.Step(p.OpsPerFrame); err != nil {
				return err
			}
		}
		p.draw(paused)

		if p.Engine.Done() && !paused {
			// one empty step fades the last highlights
			if _, err := p.Engine.Step(0); err != nil {
				return err
			}
			p.draw(false)
			return nil
		}

		if tick == nil && !paused {
			select {
			case <-ctx.Done():
				return canceled(ctx, p.Engine)
			case k := <-keys:
				if quit := p.handle(k, &paused); quit {
					return nil
				}
			default:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return canceled(ctx, p.Engine)
		case k := <-keys:
			if quit := p.handle(k, &paused); quit {
				return nil
			}
		case <-tick:
		}
	}
}

func canceled(ctx context.Context, e *replay.Engine[int]) error {
	err := &errs.Error{Code: errs.CodeCanceled, Message: "replay canceled", Cause: ctx.Err()}
	return err.With("position", e.Cursor())
}

func (p *Player) handle(k key, paused *bool) (quit bool) {
	switch k {
	case keyQuit:
		glog.V(1).Infof("player: quit at op %d/%d", p.Engine.Cursor(), p.Engine.Total())
		return true
	case keyPause:
		*paused = !*paused
	}
	return false
}

func (p *Player) draw(paused bool) {
	status := fmt.Sprintf("%s  op %d/%d", p.Title, p.Engine.Cursor(), p.Engine.Total())
	if paused {
		status += "  [paused]"
	}
	fmt.Fprint(p.Out, clearScreen+p.Frame.Render(p.Engine.View())+p.Frame.muted.Render(status)+"\n")
}

// listen puts the keyboard in raw mode and forwards recognised keys. The
// returned func stops the reader and restores the terminal.
func (p *Player) listen() (<-chan key, func()) {
	if p.In == nil || !term.IsTerminal(int(p.In.Fd())) {
		return make(chan key), func() {}
	}

	fd := int(p.In.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		glog.Warningf("player: keyboard disabled: %v", err)
		return make(chan key), func() {}
	}

	keys, stop := readKeys(p.In)
	return keys, func() {
		stop()
		_ = term.Restore(fd, state)
	}
}

func keyOf(b byte) (key, bool) {
	switch b {
	case ' ':
		return keyPause, true
	case 'q', 'Q', 27, 3: // Esc, Ctrl-C
		return keyQuit, true
	}
	return 0, false
}

// readKeys reads f one byte at a time until stop is called. stop interrupts
// a pending read through a read deadline and waits for the reader to exit.
// Files without deadline support (some ttys) can still lose one keystroke
// to a reader that was already blocked.
func readKeys(f *os.File) (<-chan key, func()) {
	keys := make(chan key, 1)
	stopping := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		buf := make([]byte, 1)
		for {
			if _, err := f.Read(buf); err != nil {
				return
			}
			select {
			case <-stopping:
				return
			default:
			}
			k, ok := keyOf(buf[0])
			if !ok {
				continue
			}
			select {
			case keys <- k:
			case <-stopping:
				return
			}
		}
	}()

	stop := func() {
		close(stopping)
		if err := f.SetReadDeadline(time.Now()); err != nil {
			return
		}
		<-done
		_ = f.SetReadDeadline(time.Time{})
	}
	return keys, stop
}
