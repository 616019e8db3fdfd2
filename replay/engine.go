// Package replay folds a recorded operation log back into per-sequence view
// states, a bounded number of ops at a time.
package replay

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/kevinxiao27/sortvis/internal/errs"
	"github.com/kevinxiao27/sortvis/ol"
	"github.com/kevinxiao27/sortvis/util"
)

type Tag uint8

const (
	Default Tag = iota
	Read
	Write
)

func (t Tag) String() string {
	switch t {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return "default"
	}
}

type Cell[T any] struct {
	Value T
	Tag   Tag
}

// Engine replays one log. It never mutates the log, so several engines may
// read the same finished log.
type Engine[T any] struct {
	log     *ol.Log[T]
	cursor  int
	created int
	view    [][]Cell[T]
	lit     []mapset.Set[int] // indices highlighted by the previous step, per sequence
	err     error
}

// New seeds sequence 0 from initial; constructing the root sequence records
// no per-element ops, so its content cannot come from the log.
func New[T any](log *ol.Log[T], initial []T) *Engine[T] {
	root := util.Map(initial, func(v T) Cell[T] { return Cell[T]{Value: v} })
	return &Engine[T]{
		log:  log,
		view: [][]Cell[T]{root},
		lit:  []mapset.Set[int]{mapset.NewThreadUnsafeSet[int]()},
	}
}

// Step clears the highlights left by the previous step, then applies up to
// budget ops. It returns how many were applied, which is less than budget
// only once the log runs out. A consistency error halts the engine for good.
func (e *Engine[T]) Step(budget int) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	e.fade()

	n := 0
	for n < budget && e.cursor < e.log.Len() {
		if err := e.apply(e.log.At(e.cursor)); err != nil {
			e.err = err.With("position", e.cursor)
			return n, e.err
		}
		e.cursor++
		n++
	}
	return n, nil
}

func (e *Engine[T]) fade() {
	for id, set := range e.lit {
		set.Each(func(i int) bool {
			if i < len(e.view[id]) {
				e.view[id][i].Tag = Default
			}
			return false
		})
		set.Clear()
	}
}

func (e *Engine[T]) apply(op ol.Op[T]) *errs.Error {
	id := int(op.Seq)
	if op.Kind != ol.Create && (id < 0 || id >= e.created) {
		return errs.Newf(errs.CodeLogInconsistent, "%s on unknown sequence %d", op.Kind, id)
	}

	switch op.Kind {
	case ol.Create:
		if id != e.created {
			return errs.Newf(errs.CodeLogInconsistent, "create(%d) out of order, want create(%d)", id, e.created)
		}
		if id >= len(e.view) {
			e.view = append(e.view, []Cell[T]{})
			e.lit = append(e.lit, mapset.NewThreadUnsafeSet[int]())
		}
		e.created++
	case ol.Get:
		if err := e.inView(id, op.Index); err != nil {
			return err
		}
		e.view[id][op.Index].Tag = Read
		e.lit[id].Add(op.Index)
	case ol.Set:
		if err := e.inView(id, op.Index); err != nil {
			return err
		}
		e.view[id][op.Index] = Cell[T]{Value: op.Value, Tag: Write}
		e.lit[id].Add(op.Index)
	case ol.Append:
		e.view[id] = append(e.view[id], Cell[T]{Value: op.Value})
	case ol.Clear:
		e.view[id] = e.view[id][:0]
		e.lit[id].Clear()
	default:
		return errs.Newf(errs.CodeLogInconsistent, "unknown op kind %d", op.Kind)
	}
	return nil
}

func (e *Engine[T]) inView(id, idx int) *errs.Error {
	if idx < 0 || idx >= len(e.view[id]) {
		return errs.Newf(errs.CodeLogInconsistent, "index %d outside sequence %d of length %d", idx, id, len(e.view[id]))
	}
	return nil
}

// View is the live view state, indexed by sequence id. Callers must treat it
// as read-only and must not keep it across calls to Step.
func (e *Engine[T]) View() [][]Cell[T] {
	return e.view
}

// Snapshot returns a deep copy of the view state.
func (e *Engine[T]) Snapshot() [][]Cell[T] {
	out := make([][]Cell[T], len(e.view))
	for i, cells := range e.view {
		out[i] = append([]Cell[T]{}, cells...)
	}
	return out
}

// Values returns the values of sequence id without their tags.
func (e *Engine[T]) Values(id ol.SeqID) []T {
	if int(id) < 0 || int(id) >= len(e.view) {
		return nil
	}
	return util.Map(e.view[id], func(c Cell[T]) T { return c.Value })
}

// Sequences is the number of sequences currently in the view.
func (e *Engine[T]) Sequences() int { return len(e.view) }

func (e *Engine[T]) Cursor() int { return e.cursor }

func (e *Engine[T]) Total() int { return e.log.Len() }

func (e *Engine[T]) Remaining() int { return e.log.Len() - e.cursor }

// Done reports whether the log is exhausted or the engine has halted.
func (e *Engine[T]) Done() bool { return e.err != nil || e.cursor >= e.log.Len() }

// Err returns the error that halted the engine, if any.
func (e *Engine[T]) Err() error { return e.err }
