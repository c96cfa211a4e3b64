package ai

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the model answers with no usable text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// TextGenerator sends one user-role prompt to a language model and returns its text.
// Implementations are safe for concurrent use.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
