package embedding

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned when a provider is asked to embed an empty
	// string.
	ErrEmptyText = errors.New("embedding: text is empty")
)

// ErrUnexpectedStatus is returned when an embedding endpoint responds with
// a non-2xx status code.
type ErrUnexpectedStatus struct {
	StatusCode int
	Body       string
}

func (e *ErrUnexpectedStatus) Error() string {
	return fmt.Sprintf("embedding: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Options configure a single embedding call.
type Options struct {
	// Model overrides the provider's default model for this call.
	Model string

	// Normalize scales the returned vector to unit length.
	Normalize bool
}

// Provider embeds text into a fixed-dimension vector.
type Provider interface {
	// Embed returns the embedding for the given text.
	Embed(ctx context.Context, text string, optFns ...func(o *Options)) ([]float32, error)

	// BatchEmbed returns one embedding per input text, in order.
	BatchEmbed(ctx context.Context, texts []string, optFns ...func(o *Options)) ([][]float32, error)

	// Dimension reports the provider's output dimension, or 0 when it is
	// not known up front.
	Dimension() int
}

// WithModel overrides the model for a single call.
func WithModel(model string) func(o *Options) {
	return func(o *Options) { o.Model = model }
}

// WithNormalize scales returned vectors to unit length.
func WithNormalize() func(o *Options) {
	return func(o *Options) { o.Normalize = true }
}

func applyCallOptions(optFns []func(o *Options)) Options {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
