package ol

import "github.com/kevinxiao27/sortvis/util"

// Log is the append-only record of one sort run. A root sequence creates it
// and every sequence derived from the root holds the same *Log.
type Log[T any] struct {
	ops    []Op[T]
	nextID SeqID
}

func NewLog[T any]() *Log[T] {
	return &Log[T]{ops: []Op[T]{}}
}

// Register allocates the next sequence id (0 for the root, then 1, 2, ...)
// and records its Create op.
func (l *Log[T]) Register() SeqID {
	id := l.nextID
	l.nextID++
	l.Append(CreateOp[T](id))
	return id
}

func (l *Log[T]) Append(op Op[T]) {
	l.ops = append(l.ops, op)
}

func (l *Log[T]) Len() int {
	return len(l.ops)
}

// At returns the op at position i. It panics when i is out of range, like a
// slice index would.
func (l *Log[T]) At(i int) Op[T] {
	return l.ops[i]
}

// Slice returns a copy of ops in [lo, hi), clamped to the log bounds.
func (l *Log[T]) Slice(lo, hi int) []Op[T] {
	lo = max(lo, 0)
	hi = min(hi, len(l.ops))
	if lo >= hi {
		return []Op[T]{}
	}

	out := make([]Op[T], hi-lo)
	copy(out, l.ops[lo:hi])
	return out
}

// Of returns the ops that target sequence id, in log order.
func (l *Log[T]) Of(id SeqID) []Op[T] {
	return util.Filter(l.ops, func(op Op[T]) bool { return op.Seq == id })
}

// Sequences is the number of ids registered so far.
func (l *Log[T]) Sequences() int {
	return int(l.nextID)
}

// Counts returns how many ops of each kind the log holds.
func (l *Log[T]) Counts() map[Kind]int {
	return util.Reduce(l.ops, func(op Op[T], counts map[Kind]int) map[Kind]int {
		counts[op.Kind]++
		return counts
	}, make(map[Kind]int, len(Kinds)))
}
