package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(CodeIndexOutOfRange, "index out of range").With("len", 3).With("index", 4)
	assert.Equal(t, "[E101] index out of range (index=4, len=3)", err.Error())

	wrapped := Wrap(fmt.Errorf("boom"), CodeInvalidConfig, "read config")
	assert.Equal(t, "[E302] read config: boom", wrapped.Error())
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(CodeLogInconsistent, "create(%d) out of order", 3)
	assert.True(t, errors.Is(err, ErrLogInconsistent))
	assert.False(t, errors.Is(err, ErrIndexOutOfRange))

	outer := fmt.Errorf("replay: %w", err)
	assert.True(t, errors.Is(outer, ErrLogInconsistent))
	assert.Equal(t, CodeLogInconsistent, CodeOf(outer))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeUnknown, "nothing"))

	cause := errors.New("disk")
	err := Wrap(cause, CodeInvalidConfig, "read")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeUnknown, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))
}
