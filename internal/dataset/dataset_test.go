package dataset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinxiao27/sortvis/internal/errs"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		order string
		want  []int
	}{
		{Sorted, []int{1, 2, 3, 4}},
		{Reversed, []int{4, 3, 2, 1}},
	}

	for _, tt := range tests {
		got, err := Generate(4, tt.order, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.order)
	}
}

func TestShuffledIsPermutation(t *testing.T) {
	got, err := Generate(100, Shuffled, 42)
	require.NoError(t, err)

	sorted := slices.Clone(got)
	slices.Sort(sorted)
	want, _ := Generate(100, Sorted, 0)
	assert.Equal(t, want, sorted)
	assert.NotEqual(t, want, got)
}

func TestShuffledSeedIsReproducible(t *testing.T) {
	a, err := Generate(50, Shuffled, 9)
	require.NoError(t, err)
	b, err := Generate(50, Shuffled, 9)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := Generate(-1, Sorted, 0)
	assert.Equal(t, errs.CodeInvalidConfig, errs.CodeOf(err))

	_, err = Generate(3, "sideways", 0)
	assert.Equal(t, errs.CodeInvalidConfig, errs.CodeOf(err))
}

func TestGenerateEmpty(t *testing.T) {
	got, err := Generate(0, Shuffled, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}
