package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/platewise/platewise/distance"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPOptions configure an HTTP provider.
type HTTPOptions struct {
	// Model is the default model name sent with each request.
	Model string

	// Dimension is the expected output dimension. When set, responses of
	// a different length are rejected.
	Dimension int

	// Token is attached as a bearer token when non-empty.
	Token string

	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// HTTP embeds text by calling an embeddings endpoint that accepts
// {"model","input"} and answers {"embeddings":[[...]]} — the shape served
// by Ollama's /api/embed and by OpenAI-compatible gateways.
type HTTP struct {
	url        string
	model      string
	dimension  int
	token      string
	httpClient *http.Client
}

// NewHTTP creates an HTTP provider for the given endpoint URL.
func NewHTTP(url string, optFns ...func(o *HTTPOptions)) *HTTP {
	opts := HTTPOptions{
		HTTPClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &HTTP{
		url:        url,
		model:      opts.Model,
		dimension:  opts.Dimension,
		token:      opts.Token,
		httpClient: opts.HTTPClient,
	}
}

type embedRequest struct {
	Model string   `json:"model,omitempty"`
	Input []string `json:"input"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed implements Provider.
func (p *HTTP) Embed(ctx context.Context, text string, optFns ...func(o *Options)) ([]float32, error) {
	vectors, err := p.BatchEmbed(ctx, []string{text}, optFns...)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// BatchEmbed implements Provider.
func (p *HTTP) BatchEmbed(ctx context.Context, texts []string, optFns ...func(o *Options)) ([][]float32, error) {
	opts := applyCallOptions(optFns)

	if len(texts) == 0 {
		return nil, ErrEmptyText
	}
	for _, text := range texts {
		if text == "" {
			return nil, ErrEmptyText
		}
	}

	model := p.model
	if opts.Model != "" {
		model = opts.Model
	}

	body, err := json.Marshal(embedRequest{Model: model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &ErrUnexpectedStatus{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var decoded embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding: got %d vectors for %d inputs", len(decoded.Embeddings), len(texts))
	}

	for i, vec := range decoded.Embeddings {
		if p.dimension > 0 && len(vec) != p.dimension {
			return nil, fmt.Errorf("embedding: got dimension %d, want %d", len(vec), p.dimension)
		}
		if opts.Normalize {
			decoded.Embeddings[i] = distance.NormalizeCopy(vec)
		}
	}
	return decoded.Embeddings, nil
}

// Dimension implements Provider.
func (p *HTTP) Dimension() int { return p.dimension }
