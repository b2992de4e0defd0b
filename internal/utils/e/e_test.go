package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	base := errors.New("boom")

	err := Wrap("failed to read file", base)

	assert.EqualError(t, err, "failed to read file: boom")
	assert.ErrorIs(t, err, base)
}

func TestWrapIfErr(t *testing.T) {
	assert.NoError(t, WrapIfErr("no-op", nil))
	assert.EqualError(t, WrapIfErr("step", errors.New("x")), "step: x")
}
