package render

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/kevinxiao27/sortvis/ol"
	"github.com/kevinxiao27/sortvis/replay"
	"github.com/kevinxiao27/sortvis/sorts"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CC66")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
)

// Drain replays the whole engine without drawing, reporting progress on bar
// when it is not nil.
func Drain(ctx context.Context, e *replay.Engine[int], opsPerFrame int, bar *progressbar.ProgressBar) error {
	for !e.Done() {
		if err := ctx.Err(); err != nil {
			return canceled(ctx, e)
		}
		n, err := e.Step(opsPerFrame)
		if err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(n)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}

// ShowProgress creates a progress bar over total ops.
func ShowProgress(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// Summary describes a finished recording and, optionally, its replay.
type Summary struct {
	Recording *sorts.Recording[int]
	Final     []int // replayed root content; nil when not replayed
	Frames    int
}

// Verified reports whether the replayed root matches the expected output.
func (s Summary) Verified() bool {
	return s.Final != nil && slices.Equal(s.Final, s.Recording.Expected)
}

// PrintSummary writes a short report of the recording.
func PrintSummary(w io.Writer, s Summary) {
	rec := s.Recording
	counts := rec.Log.Counts()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s %s\n", titleStyle.Render(rec.Algorithm),
		mutedStyle.Render(fmt.Sprintf("n=%d", len(rec.Initial))),
		mutedStyle.Render(rec.ID.String()))
	fmt.Fprintf(w, "  %s %s %s\n", mutedStyle.Render("Ops:"),
		titleStyle.Render(formatNumber(int64(rec.Log.Len()))),
		mutedStyle.Render(fmt.Sprintf("(recorded in %s)", formatDuration(rec.Elapsed))))
	for _, k := range ol.Kinds {
		fmt.Fprintf(w, "    %-7s %s\n", k.String(), formatNumber(int64(counts[k])))
	}
	if s.Frames > 0 {
		fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render("Frames:"), titleStyle.Render(formatNumber(int64(s.Frames))))
	}

	if s.Final != nil {
		if s.Verified() {
			fmt.Fprintln(w, successStyle.Render("  ✓ replay matches sorted input"))
		} else {
			fmt.Fprintln(w, failStyle.Render("  ✗ replay does not match sorted input"))
		}
	}
	fmt.Fprintln(w)
}

// Frames is how many Step calls of size opsPerFrame replaying n ops takes.
func Frames(n, opsPerFrame int) int {
	if opsPerFrame < 1 {
		return 0
	}
	return (n + opsPerFrame - 1) / opsPerFrame
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func formatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}
