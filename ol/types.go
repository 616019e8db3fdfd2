package ol

import (
	"fmt"
	"time"
)

type SeqID int // identity of a sequence within one log

type Kind uint8

const (
	Create Kind = iota
	Get
	Set
	Append
	Clear
)

func (k Kind) String() string {
	switch k {
	case Create:
		return "create"
	case Get:
		return "get"
	case Set:
		return "set"
	case Append:
		return "append"
	case Clear:
		return "clear"
	default:
		return "unknown"
	}
}

// Kinds lists every operation kind in declaration order.
var Kinds = []Kind{Create, Get, Set, Append, Clear}

// Op is one recorded touch of a sequence. Index is only meaningful for
// Get/Set, Value only for Set/Append.
type Op[T any] struct {
	Kind  Kind
	Seq   SeqID
	Index int
	Value T
	Time  time.Time
}

func (op Op[T]) String() string {
	switch op.Kind {
	case Get:
		return fmt.Sprintf("get(seq=%d, idx=%d)", op.Seq, op.Index)
	case Set:
		return fmt.Sprintf("set(seq=%d, idx=%d, val=%v)", op.Seq, op.Index, op.Value)
	case Append:
		return fmt.Sprintf("append(seq=%d, val=%v)", op.Seq, op.Value)
	default:
		return fmt.Sprintf("%s(seq=%d)", op.Kind, op.Seq)
	}
}

func CreateOp[T any](id SeqID) Op[T] {
	return Op[T]{Kind: Create, Seq: id, Time: time.Now()}
}

func GetOp[T any](id SeqID, idx int) Op[T] {
	return Op[T]{Kind: Get, Seq: id, Index: idx, Time: time.Now()}
}

func SetOp[T any](id SeqID, idx int, v T) Op[T] {
	return Op[T]{Kind: Set, Seq: id, Index: idx, Value: v, Time: time.Now()}
}

func AppendOp[T any](id SeqID, v T) Op[T] {
	return Op[T]{Kind: Append, Seq: id, Value: v, Time: time.Now()}
}

func ClearOp[T any](id SeqID) Op[T] {
	return Op[T]{Kind: Clear, Seq: id, Time: time.Now()}
}
