package embedding

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/platewise/platewise/distance"
)

// Deterministic embeds text by hashing its lowercased tokens into a
// fixed-dimension bag-of-words vector. The same text always produces the
// same vector and overlapping token sets produce similar vectors, which is
// all tests and offline seeding need. It is not a semantic model.
type Deterministic struct {
	dimension int
}

// NewDeterministic creates a deterministic provider with the given output
// dimension.
func NewDeterministic(dimension int) *Deterministic {
	return &Deterministic{dimension: dimension}
}

// Embed implements Provider.
func (p *Deterministic) Embed(ctx context.Context, text string, optFns ...func(o *Options)) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrEmptyText
	}

	vec := make([]float32, p.dimension)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%uint32(p.dimension)]++
	}
	return distance.NormalizeCopy(vec), nil
}

// BatchEmbed implements Provider.
func (p *Deterministic) BatchEmbed(ctx context.Context, texts []string, optFns ...func(o *Options)) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := p.Embed(ctx, text, optFns...)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// Dimension implements Provider.
func (p *Deterministic) Dimension() int { return p.dimension }
