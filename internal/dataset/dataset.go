// Package dataset generates the inputs sortvis sorts: the values 1..n in a
// chosen order.
package dataset

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/kevinxiao27/sortvis/internal/errs"
)

const (
	Shuffled = "shuffled"
	Reversed = "reversed"
	Sorted   = "sorted"
)

func Orders() []string {
	return []string{Shuffled, Reversed, Sorted}
}

// Generate returns 1..size arranged by order. A zero seed shuffles with a
// time-based seed.
func Generate(size int, order string, seed uint64) ([]int, error) {
	if size < 0 {
		return nil, errs.New(errs.CodeInvalidConfig, "negative size").With("size", size)
	}

	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}

	switch order {
	case Sorted:
	case Reversed:
		slices.Reverse(values)
	case Shuffled:
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		r := rand.New(rand.NewPCG(seed, seed>>32|1))
		r.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
	default:
		return nil, errs.Newf(errs.CodeInvalidConfig, "unknown order %q", order)
	}
	return values, nil
}
