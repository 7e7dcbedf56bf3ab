package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/studyfocus/internal/apperr"
)

var errSample = &apperr.Error{
	Message: "%s must be positive",
}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errSample.Fmt("work duration")

	assert.Equal(t, "work duration must be positive", err.Error())
	assert.ErrorIs(t, err, errSample)
}

func TestWrapKeepsCause(t *testing.T) {
	err := errSample.Fmt("break").Wrap(io.EOF)

	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "break must be positive: EOF", err.Error())
}

func TestDistinctSentinels(t *testing.T) {
	other := &apperr.Error{Message: "other"}

	assert.False(t, errors.Is(errSample.Fmt("x"), other))
}
