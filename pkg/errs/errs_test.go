package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatchesThroughWrapping(t *testing.T) {
	base := New(UnknownCategory, "value %q", "3").At("encoder", "SEX")
	wrapped := fmt.Errorf("categorical pipeline: %w", base)

	assert.True(t, errors.Is(wrapped, UnknownCategory))
	assert.False(t, errors.Is(wrapped, NotFitted))
	assert.Equal(t, UnknownCategory, KindOf(wrapped))
	assert.Equal(t, `categorical pipeline: unknown-category [stage encoder] [column SEX]: value "3"`, wrapped.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(SerializationFailure, cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, SerializationFailure))
	assert.Nil(t, Wrap(SerializationFailure, nil))
}

func TestAtDoesNotMutate(t *testing.T) {
	e := New(SchemaMismatch, "missing")
	_ = e.At("stage", "col")
	assert.Empty(t, e.Stage)
	assert.Empty(t, e.Column)
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}
