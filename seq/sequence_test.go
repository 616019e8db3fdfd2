package seq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinxiao27/sortvis/internal/errs"
	"github.com/kevinxiao27/sortvis/ol"
)

func opsOf(log *ol.Log[int]) []ol.Op[int] {
	return log.Slice(0, log.Len())
}

func TestNewRecordsOnlyCreate(t *testing.T) {
	s := New([]int{3, 1, 2})

	require.Equal(t, ol.SeqID(0), s.ID())
	require.Equal(t, 3, s.Len())
	require.Equal(t, 1, s.Log().Len())

	op := s.Log().At(0)
	assert.Equal(t, ol.Create, op.Kind)
	assert.Equal(t, ol.SeqID(0), op.Seq)
}

func TestNewCopiesInput(t *testing.T) {
	in := []int{1, 2}
	s := New(in)
	in[0] = 99

	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestDeriveSharesLogAndAllocatesIDs(t *testing.T) {
	root := New([]int{1})
	a := Derive(root)
	b := Derive(root)
	c := Derive(a)

	assert.Same(t, root.Log(), a.Log())
	assert.Same(t, root.Log(), c.Log())
	assert.Equal(t, ol.SeqID(1), a.ID())
	assert.Equal(t, ol.SeqID(2), b.ID())
	assert.Equal(t, ol.SeqID(3), c.ID())
	assert.Equal(t, 2, root.Children())
	assert.Equal(t, 1, a.Children())
	assert.Zero(t, a.Len())

	ids := []ol.SeqID{}
	for _, op := range opsOf(root.Log()) {
		require.Equal(t, ol.Create, op.Kind)
		ids = append(ids, op.Seq)
	}
	assert.Equal(t, []ol.SeqID{0, 1, 2, 3}, ids)
}

func TestGetAndSetRecord(t *testing.T) {
	s := New([]int{5, 6, 7})

	v, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	require.NoError(t, s.Set(2, 70))
	v, err = s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 70, v)

	ops := opsOf(s.Log())
	require.Len(t, ops, 4)
	assert.Equal(t, ol.Get, ops[1].Kind)
	assert.Equal(t, 1, ops[1].Index)
	assert.Equal(t, ol.Set, ops[2].Kind)
	assert.Equal(t, 2, ops[2].Index)
	assert.Equal(t, 70, ops[2].Value)
	assert.Equal(t, ol.Get, ops[3].Kind)
}

func TestGetRangeRecordsOnePerIndex(t *testing.T) {
	s := New([]int{10, 20, 30, 40})

	got, err := s.GetRange(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30, 40}, got)

	ops := opsOf(s.Log())[1:]
	require.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, ol.Get, op.Kind)
		assert.Equal(t, i+1, op.Index)
	}

	empty, err := s.GetRange(2, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 4, s.Log().Len())
}

func TestSetRangeTruncatesToValues(t *testing.T) {
	s := New([]int{0, 0, 0, 0})

	require.NoError(t, s.SetRange(1, 4, []int{8, 9}))

	ops := opsOf(s.Log())[1:]
	require.Len(t, ops, 2)
	assert.Equal(t, 1, ops[0].Index)
	assert.Equal(t, 8, ops[0].Value)
	assert.Equal(t, 2, ops[1].Index)
	assert.Equal(t, 9, ops[1].Value)

	got, err := s.GetRange(0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8, 9, 0}, got)
}

func TestSetRangeBeyondLengthIsAllowedWhenValuesFit(t *testing.T) {
	s := New([]int{1, 2})
	require.NoError(t, s.SetRange(1, 10, []int{5}))

	v, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestAppendAndClear(t *testing.T) {
	s := Derive(New([]int{1}))

	s.Append(4)
	s.Append(2)
	assert.Equal(t, 2, s.Len())
	s.Clear()
	assert.Zero(t, s.Len())
	s.Append(3)

	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	kinds := []ol.Kind{}
	for _, op := range opsOf(s.Log()) {
		kinds = append(kinds, op.Kind)
	}
	assert.Equal(t, []ol.Kind{ol.Create, ol.Create, ol.Append, ol.Append, ol.Clear, ol.Append, ol.Get}, kinds)
}

func TestLenRecordsNothing(t *testing.T) {
	s := New([]int{1, 2, 3})
	_ = s.Len()
	assert.Equal(t, 1, s.Log().Len())
}

func TestOutOfRangeRecordsNothing(t *testing.T) {
	tests := []struct {
		name string
		call func(s *Sequence[int]) error
	}{
		{"get one past end", func(s *Sequence[int]) error { _, err := s.Get(3); return err }},
		{"get negative", func(s *Sequence[int]) error { _, err := s.Get(-1); return err }},
		{"set one past end", func(s *Sequence[int]) error { return s.Set(3, 1) }},
		{"get range past end", func(s *Sequence[int]) error { _, err := s.GetRange(1, 4); return err }},
		{"get range inverted", func(s *Sequence[int]) error { _, err := s.GetRange(2, 1); return err }},
		{"set range past end", func(s *Sequence[int]) error { return s.SetRange(2, 4, []int{1, 2}) }},
		{"set range inverted", func(s *Sequence[int]) error { return s.SetRange(2, 1, []int{1}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New([]int{1, 2, 3})
			err := tt.call(s)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))
			assert.Equal(t, errs.CodeIndexOutOfRange, errs.CodeOf(err))
			assert.Equal(t, 1, s.Log().Len(), "a failed access must not be recorded")
		})
	}
}
