package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndInspect(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeNotFound, "faq not found", cause)

	require.True(t, IsCode(err, CodeNotFound))
	require.False(t, IsCode(err, CodeNotOwner))
	require.Equal(t, "faq not found: boom", err.Error())
	require.Equal(t, "faq not found", MessageOf(err))
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	require.Equal(t, CodeNotFound, CodeOf(wrapped))
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.Equal(t, "plain", MessageOf(errors.New("plain")))
	require.Equal(t, "", MessageOf(nil))
}
