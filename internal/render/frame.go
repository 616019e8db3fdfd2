// Package render draws replay view states in a terminal and drives the
// paced playback loop.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kevinxiao27/sortvis/replay"
)

const bar = "█"

// Column is one drawn column of a band: a bar height in rows and the tag
// that colors it.
type Column struct {
	Height int
	Tag    replay.Tag
}

// Frame renders view states as one band of vertical bars per sequence. Bars
// are scaled against MaxValue so auxiliary bands line up with the root.
type Frame struct {
	Width    int // terminal columns available
	Band     int // rows per sequence
	Slots    int // columns per band, normally the root length
	MaxValue int

	styles map[replay.Tag]lipgloss.Style
	muted  lipgloss.Style
}

// NewFrame sizes a frame for the initial root values. r may be nil to use
// the default renderer.
func NewFrame(r *lipgloss.Renderer, initial []int, width, band int) *Frame {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	maxValue := 1
	for _, v := range initial {
		maxValue = max(maxValue, v)
	}

	// white default, yellow read, blue write
	return &Frame{
		Width:    max(width, 1),
		Band:     max(band, 1),
		Slots:    max(len(initial), 1),
		MaxValue: maxValue,
		styles: map[replay.Tag]lipgloss.Style{
			replay.Default: r.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
			replay.Read:    r.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
			replay.Write:   r.NewStyle().Foreground(lipgloss.Color("#0000FF")),
		},
		muted: r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// cellWidth is how many terminal columns each slot gets; zero means slots
// are sampled down to fit.
func (f *Frame) cellWidth() int {
	return f.Width / f.Slots
}

// Columns maps one sequence onto drawn columns. When the band is narrower
// than the sequence, several elements share a column and the most recent
// highlight among them wins.
func (f *Frame) Columns(cells []replay.Cell[int]) []Column {
	n := f.Slots
	if f.cellWidth() == 0 {
		n = f.Width
	}

	cols := make([]Column, 0, n)
	for c := 0; c < n; c++ {
		lo, hi := c*f.Slots/n, (c+1)*f.Slots/n
		if lo >= len(cells) {
			break
		}
		hi = min(max(hi, lo+1), len(cells))

		col := Column{}
		for _, cell := range cells[lo:hi] {
			col.Height = max(col.Height, f.height(cell.Value))
			if cell.Tag != replay.Default {
				col.Tag = cell.Tag
			}
		}
		cols = append(cols, col)
	}
	return cols
}

func (f *Frame) height(v int) int {
	if v <= 0 {
		return 0
	}
	return max(1, (v*f.Band+f.MaxValue-1)/f.MaxValue)
}

// Render draws every sequence of view, top to bottom, separated by a rule.
func (f *Frame) Render(view [][]replay.Cell[int]) string {
	w := max(f.cellWidth(), 1)
	var sb strings.Builder

	for id, cells := range view {
		if id > 0 {
			sb.WriteString(f.muted.Render(strings.Repeat("─", f.Width)))
			sb.WriteByte('\n')
		}

		cols := f.Columns(cells)
		for row := f.Band; row >= 1; row-- {
			f.renderRow(&sb, cols, row, w)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// renderRow writes one text row, batching adjacent columns of the same tag
// into a single styled run.
func (f *Frame) renderRow(sb *strings.Builder, cols []Column, row, w int) {
	var run strings.Builder
	runTag := replay.Default
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(f.styles[runTag].Render(run.String()))
			run.Reset()
		}
	}

	glyph := strings.Repeat(bar, w)
	blank := strings.Repeat(" ", w)
	for _, col := range cols {
		if col.Height < row {
			flush()
			sb.WriteString(blank)
			continue
		}
		if col.Tag != runTag {
			flush()
			runTag = col.Tag
		}
		run.WriteString(glyph)
	}
	flush()
}
