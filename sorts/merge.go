package sorts

import "github.com/kevinxiao27/sortvis/seq"

// Merge is a top-down merge sort that builds each merged run in one
// auxiliary sequence before copying it back.
type Merge[T any] struct {
	s   *seq.Sequence[T]
	aux *seq.Sequence[T]
	cmp func(a, b T) int
}

// NewMerge derives the auxiliary sequence immediately, so its Create op
// precedes every op of the run.
func NewMerge[T any](s *seq.Sequence[T], cmp func(a, b T) int) *Merge[T] {
	return &Merge[T]{s: s, aux: seq.Derive(s), cmp: cmp}
}

func (m *Merge[T]) Name() string { return "merge" }

func (m *Merge[T]) Auxiliaries() int { return 1 }

func (m *Merge[T]) Run() error {
	return m.sort(0, m.s.Len())
}

func (m *Merge[T]) sort(start, end int) error {
	switch end - start {
	case 0, 1:
		return nil
	case 2:
		pair, err := m.s.GetRange(start, end)
		if err != nil {
			return err
		}
		if m.cmp(pair[0], pair[1]) > 0 {
			pair[0], pair[1] = pair[1], pair[0]
		}
		return m.s.SetRange(start, end, pair)
	}

	mid := start + (end-start)/2
	if err := m.sort(start, mid); err != nil {
		return err
	}
	if err := m.sort(mid, end); err != nil {
		return err
	}
	return m.merge(start, mid, end)
}

// merge combines the sorted runs [start, mid) and [mid, end). Each element
// is read exactly once, and ties take the left element.
func (m *Merge[T]) merge(start, mid, end int) error {
	i, j := start, mid
	left, err := m.s.Get(i)
	if err != nil {
		return err
	}
	right, err := m.s.Get(j)
	if err != nil {
		return err
	}

	for {
		if m.cmp(left, right) <= 0 {
			m.aux.Append(left)
			i++
			if i == mid {
				m.aux.Append(right)
				if err := m.drain(j+1, end); err != nil {
					return err
				}
				break
			}
			if left, err = m.s.Get(i); err != nil {
				return err
			}
		} else {
			m.aux.Append(right)
			j++
			if j == end {
				m.aux.Append(left)
				if err := m.drain(i+1, mid); err != nil {
					return err
				}
				break
			}
			if right, err = m.s.Get(j); err != nil {
				return err
			}
		}
	}

	merged, err := m.aux.GetRange(0, m.aux.Len())
	if err != nil {
		return err
	}
	if err := m.s.SetRange(start, end, merged); err != nil {
		return err
	}
	m.aux.Clear()
	return nil
}

// drain appends the untouched tail [from, to) of one run to the auxiliary.
func (m *Merge[T]) drain(from, to int) error {
	for k := from; k < to; k++ {
		v, err := m.s.Get(k)
		if err != nil {
			return err
		}
		m.aux.Append(v)
	}
	return nil
}
