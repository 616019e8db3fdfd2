// Package sorts implements sorting algorithms written purely against the
// recorded operations of seq.Sequence. Running one to completion leaves the
// full trace of the run in the sequence's log.
package sorts

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/kevinxiao27/sortvis/internal/errs"
	"github.com/kevinxiao27/sortvis/ol"
	"github.com/kevinxiao27/sortvis/seq"
)

type Sort interface {
	Run() error
	Name() string
	// Auxiliaries is the number of sequences the sort derives from its input.
	Auxiliaries() int
}

var (
	_ Sort = (*Bubble[int])(nil)
	_ Sort = (*Cocktail[int])(nil)
	_ Sort = (*Merge[int])(nil)
)

const (
	NameBubble   = "bubble"
	NameCocktail = "cocktail"
	NameMerge    = "merge"
)

// Default is the algorithm used when none is configured.
const Default = NameCocktail

// Names lists the available algorithms in a stable order.
func Names() []string {
	return []string{NameBubble, NameCocktail, NameMerge}
}

// New builds the named sort over s.
func New[T any](name string, s *seq.Sequence[T], cmp func(a, b T) int) (Sort, error) {
	switch name {
	case NameBubble:
		return NewBubble(s, cmp), nil
	case NameCocktail:
		return NewCocktail(s, cmp), nil
	case NameMerge:
		return NewMerge(s, cmp), nil
	default:
		return nil, errs.Newf(errs.CodeUnknownAlgorithm, "unknown algorithm %q", name).
			With("known", Names())
	}
}

// Recording is the outcome of one recorded run: the log to replay, plus the
// input and output needed to seed and check a replay.
type Recording[T any] struct {
	ID          uuid.UUID
	Algorithm   string
	Auxiliaries int
	Initial     []T
	Expected    []T // Initial sorted by the standard library, for checking a replay
	Log         *ol.Log[T]
	Elapsed     time.Duration
}

// Record runs the named algorithm over a copy of values and returns the
// finished log. The sort itself is discarded.
func Record[T any](name string, values []T, cmp func(a, b T) int) (*Recording[T], error) {
	s := seq.New(values)
	algo, err := New(name, s, cmp)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	if err := algo.Run(); err != nil {
		return nil, err
	}
	elapsed := time.Since(began)

	expected := slices.Clone(values)
	slices.SortStableFunc(expected, cmp)

	return &Recording[T]{
		ID:          uuid.New(),
		Algorithm:   algo.Name(),
		Auxiliaries: algo.Auxiliaries(),
		Initial:     slices.Clone(values),
		Expected:    expected,
		Log:         s.Log(),
		Elapsed:     elapsed,
	}, nil
}

// RecordInts is Record for plain integers.
func RecordInts(name string, values []int) (*Recording[int], error) {
	return Record(name, values, cmp.Compare[int])
}
