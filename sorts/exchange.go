package sorts

import "github.com/kevinxiao27/sortvis/seq"

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Pass describes one sweep of an exchange sort.
type Pass struct {
	Direction Direction
	Lo, Hi    int // window swept, half-open
	Swaps     int
}

// exchange holds the window and pass primitives shared by Bubble and
// Cocktail. Only the newly examined element is read at each step; the
// element carried along the sweep is cached.
type exchange[T any] struct {
	s          *seq.Sequence[T]
	cmp        func(a, b T) int
	start, end int
	passes     []Pass
}

// forward sweeps [start, end) left to right, carrying the larger value. A
// swap writes both positions. When anything swapped, end moves to the last
// swap position since everything from there on is in its final place.
func (x *exchange[T]) forward() (int, error) {
	pass := Pass{Direction: Forward, Lo: x.start, Hi: x.end}
	if x.end-x.start < 2 {
		x.passes = append(x.passes, pass)
		return 0, nil
	}

	carried, err := x.s.Get(x.start)
	if err != nil {
		return 0, err
	}

	last := x.start
	for i := x.start + 1; i < x.end; i++ {
		cur, err := x.s.Get(i)
		if err != nil {
			return pass.Swaps, err
		}
		if x.cmp(carried, cur) > 0 {
			if err := x.s.Set(i-1, cur); err != nil {
				return pass.Swaps, err
			}
			if err := x.s.Set(i, carried); err != nil {
				return pass.Swaps, err
			}
			pass.Swaps++
			last = i
		} else {
			carried = cur
		}
	}

	if pass.Swaps > 0 {
		x.end = last
	}
	x.passes = append(x.passes, pass)
	return pass.Swaps, nil
}

// backward mirrors forward: it sweeps right to left carrying the smaller
// value and moves start past the last swap.
func (x *exchange[T]) backward() (int, error) {
	pass := Pass{Direction: Backward, Lo: x.start, Hi: x.end}
	if x.end-x.start < 2 {
		x.passes = append(x.passes, pass)
		return 0, nil
	}

	carried, err := x.s.Get(x.end - 1)
	if err != nil {
		return 0, err
	}

	last := x.end - 1
	for i := x.end - 2; i >= x.start; i-- {
		cur, err := x.s.Get(i)
		if err != nil {
			return pass.Swaps, err
		}
		if x.cmp(cur, carried) > 0 {
			if err := x.s.Set(i+1, cur); err != nil {
				return pass.Swaps, err
			}
			if err := x.s.Set(i, carried); err != nil {
				return pass.Swaps, err
			}
			pass.Swaps++
			last = i
		} else {
			carried = cur
		}
	}

	if pass.Swaps > 0 {
		x.start = last + 1
	}
	x.passes = append(x.passes, pass)
	return pass.Swaps, nil
}

func (x *exchange[T]) Auxiliaries() int { return 0 }

// Passes returns the sweeps performed by the last Run.
func (x *exchange[T]) Passes() []Pass {
	out := make([]Pass, len(x.passes))
	copy(out, x.passes)
	return out
}

// Bubble sweeps the whole sequence forward until a sweep swaps nothing.
type Bubble[T any] struct {
	exchange[T]
}

func NewBubble[T any](s *seq.Sequence[T], cmp func(a, b T) int) *Bubble[T] {
	return &Bubble[T]{exchange[T]{s: s, cmp: cmp}}
}

func (b *Bubble[T]) Name() string { return "bubble" }

func (b *Bubble[T]) Run() error {
	b.passes = b.passes[:0]
	for {
		b.start, b.end = 0, b.s.Len()
		swaps, err := b.forward()
		if err != nil {
			return err
		}
		if swaps == 0 {
			return nil
		}
	}
}

// Cocktail alternates forward and backward sweeps over a window that shrinks
// from whichever side was just swept.
type Cocktail[T any] struct {
	exchange[T]
}

func NewCocktail[T any](s *seq.Sequence[T], cmp func(a, b T) int) *Cocktail[T] {
	return &Cocktail[T]{exchange[T]{s: s, cmp: cmp}}
}

func (c *Cocktail[T]) Name() string { return "cocktail" }

// Run performs forward/backward pairs while the window holds at least two
// elements, stopping after a pair in which either sweep swapped nothing.
func (c *Cocktail[T]) Run() error {
	c.passes = c.passes[:0]
	c.start, c.end = 0, c.s.Len()
	for c.end-c.start > 1 {
		fwd, err := c.forward()
		if err != nil {
			return err
		}
		bwd, err := c.backward()
		if err != nil {
			return err
		}
		if fwd == 0 || bwd == 0 {
			return nil
		}
	}
	return nil
}
