package embedding

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited wraps a Provider with a token-bucket limiter so a shared
// embedding endpoint is not flooded during bulk ingestion. Each Embed call
// costs one token; BatchEmbed costs one token per input text.
type RateLimited struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewRateLimited wraps the provider, allowing rps requests per second with
// the given burst.
func NewRateLimited(provider Provider, rps float64, burst int) *RateLimited {
	return &RateLimited{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Embed implements Provider.
func (p *RateLimited) Embed(ctx context.Context, text string, optFns ...func(o *Options)) ([]float32, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return p.provider.Embed(ctx, text, optFns...)
}

// BatchEmbed implements Provider.
func (p *RateLimited) BatchEmbed(ctx context.Context, texts []string, optFns ...func(o *Options)) ([][]float32, error) {
	if err := p.limiter.WaitN(ctx, len(texts)); err != nil {
		return nil, err
	}
	return p.provider.BatchEmbed(ctx, texts, optFns...)
}

// Dimension implements Provider.
func (p *RateLimited) Dimension() int { return p.provider.Dimension() }
