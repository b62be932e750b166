package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		invalid bool
		fatal   bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "invalid argument", err: InvalidArgument("C", "M", "path"), invalid: true},
		{name: "wrapped invalid", err: WrapInvalid(errors.New("bad"), "C", "M", "parse"), invalid: true},
		{name: "wrapped fatal", err: WrapFatal(errors.New("bad"), "C", "M", "convert"), fatal: true},
		{name: "unsupported value", err: Unsupported("C", "M", 42), fatal: true},
		{name: "bare file not found sentinel", err: fmt.Errorf("x: %w", ErrFileNotFound), invalid: true},
		{name: "bare unsupported sentinel", err: fmt.Errorf("x: %w", ErrUnsupportedOperation), fatal: true},
		{name: "classified error wrapped again", err: fmt.Errorf("outer: %w", WrapFatal(errors.New("bad"), "C", "M", "write")), fatal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, IsInvalid(tt.err))
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
		})
	}
}

func TestWrapKeepsChain(t *testing.T) {
	assert.Nil(t, Wrap(nil, "C", "M", "a"))
	assert.Nil(t, WrapInvalid(nil, "C", "M", "a"))
	assert.Nil(t, WrapFatal(nil, "C", "M", "a"))

	err := WrapInvalid(fmt.Errorf("%w: a.pol", ErrFileNotFound), "Reader", "Read", "open")
	assert.True(t, Is(err, ErrFileNotFound))
	assert.Equal(t, "Reader.Read: open failed: file not found: a.pol", err.Error())

	var ce *ClassifiedError
	require.True(t, As(err, &ce))
	assert.Equal(t, "Reader", ce.Component)
	assert.Equal(t, "Read", ce.Operation)
	assert.Equal(t, "invalid", ce.Class.String())
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("InitialFieldFile", "Write", "file path")
	assert.True(t, Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "file path must not be empty")
}
