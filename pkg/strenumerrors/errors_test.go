package strenumerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/strenum/pkg/strenumerrors"
)

func TestParseError(t *testing.T) {
	err := &strenumerrors.ParseError{Enum: "Test", Input: "Unknown"}
	assert.Equal(t, `cannot parse "Unknown" as Test`, err.Error())
}

func TestParseErrorQuote(t *testing.T) {
	err := &strenumerrors.ParseError{Enum: "Test", Input: " First\n"}
	assert.Equal(t, `cannot parse " First\n" as Test`, err.Error())
}

func TestParseErrorIs(t *testing.T) {
	var err error = &strenumerrors.ParseError{Enum: "Test", Input: ""}
	assert.ErrorIs(t, err, strenumerrors.ErrNoMatch)

	err = fmt.Errorf("reading config: %w", err)
	assert.ErrorIs(t, err, strenumerrors.ErrNoMatch)
}

func TestParseErrorAs(t *testing.T) {
	err := fmt.Errorf("reading config: %w", &strenumerrors.ParseError{Enum: "Test", Input: "first"})

	var parseErr *strenumerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "Test", parseErr.Enum)
	assert.Equal(t, "first", parseErr.Input)
}
