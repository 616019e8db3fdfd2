// Package seq provides Sequence, a growable container that records every
// element access and mutation into a shared operation log.
//
// A Sequence owns its backing slice and never hands it out; the only ways to
// observe or change content are the recorded methods below. Each method emits
// exactly one op per element touched, in index order, so that a replay can
// highlight every element the algorithm looked at.
package seq

import (
	"github.com/kevinxiao27/sortvis/internal/errs"
	"github.com/kevinxiao27/sortvis/ol"
)

// ErrIndexOutOfRange matches, via errors.Is, every bounds error returned by
// a Sequence.
var ErrIndexOutOfRange = errs.ErrIndexOutOfRange

type Sequence[T any] struct {
	id       ol.SeqID
	items    []T
	log      *ol.Log[T]
	children int
}

// New creates a root sequence with a fresh log. The initial values are
// copied in without recording per-element ops; only Create(0) is logged.
func New[T any](values []T) *Sequence[T] {
	log := ol.NewLog[T]()
	items := make([]T, len(values))
	copy(items, values)

	return &Sequence[T]{
		id:    log.Register(),
		items: items,
		log:   log,
	}
}

// Derive creates an empty auxiliary sequence sharing parent's log. Its id is
// allocated by the log, so ids stay unique however deep derivation goes.
func Derive[T any](parent *Sequence[T]) *Sequence[T] {
	parent.children++
	return &Sequence[T]{
		id:    parent.log.Register(),
		items: []T{},
		log:   parent.log,
	}
}

func (s *Sequence[T]) ID() ol.SeqID { return s.id }

func (s *Sequence[T]) Log() *ol.Log[T] { return s.log }

// Len does not record anything; it reads metadata, not content.
func (s *Sequence[T]) Len() int { return len(s.items) }

// Children is the number of sequences derived from s. It is informational;
// ids come from the log.
func (s *Sequence[T]) Children() int { return s.children }

func (s *Sequence[T]) Get(i int) (T, error) {
	if err := s.check(i, i+1); err != nil {
		var zero T
		return zero, err
	}

	s.log.Append(ol.GetOp[T](s.id, i))
	return s.items[i], nil
}

// GetRange reads [lo, hi), recording one Get per index in ascending order.
// The whole range is validated before anything is recorded.
func (s *Sequence[T]) GetRange(lo, hi int) ([]T, error) {
	if err := s.check(lo, hi); err != nil {
		return nil, err
	}

	out := make([]T, hi-lo)
	for i := lo; i < hi; i++ {
		s.log.Append(ol.GetOp[T](s.id, i))
		out[i-lo] = s.items[i]
	}
	return out, nil
}

func (s *Sequence[T]) Set(i int, v T) error {
	if err := s.check(i, i+1); err != nil {
		return err
	}

	s.log.Append(ol.SetOp(s.id, i, v))
	s.items[i] = v
	return nil
}

// SetRange writes values into [lo, hi) pairwise. When values is shorter than
// the range only len(values) positions are written.
func (s *Sequence[T]) SetRange(lo, hi int, values []T) error {
	if hi < lo {
		return s.outOfRange(lo, hi)
	}
	hi = min(hi, lo+len(values))
	if err := s.check(lo, hi); err != nil {
		return err
	}

	for i := lo; i < hi; i++ {
		s.log.Append(ol.SetOp(s.id, i, values[i-lo]))
	}
	copy(s.items[lo:hi], values)
	return nil
}

func (s *Sequence[T]) Append(v T) {
	s.log.Append(ol.AppendOp(s.id, v))
	s.items = append(s.items, v)
}

func (s *Sequence[T]) Clear() {
	s.log.Append(ol.ClearOp[T](s.id))
	s.items = s.items[:0]
}

// check validates the half-open range [lo, hi) against the current length.
func (s *Sequence[T]) check(lo, hi int) error {
	if lo < 0 || hi < lo || hi > len(s.items) {
		return s.outOfRange(lo, hi)
	}
	return nil
}

func (s *Sequence[T]) outOfRange(lo, hi int) error {
	err := errs.New(errs.CodeIndexOutOfRange, "index out of range").
		With("seq", s.id).
		With("len", len(s.items))
	if hi == lo+1 {
		return err.With("index", lo)
	}
	return err.With("range", [2]int{lo, hi})
}
