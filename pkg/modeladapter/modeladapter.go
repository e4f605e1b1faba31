package modeladapter

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"
)

// ErrNoChoices is returned when a completion response carries no choices, so
// there is no first choice to read text from.
var ErrNoChoices = errors.New("choice index 0 out of range: response has no choices")

// Generator turns a single prompt into the text of the model's reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GetModelName() string
}

// Model is the full capability contract expected by evaluation harnesses.
// AGenerate must not block; its result arrives on the returned channel.
type Model interface {
	Generator
	AGenerate(ctx context.Context, prompt string) <-chan Result
}

// ModelAdapter holds shared state for provider implementations. Embed it in
// concrete provider structs to get the model identifier, base URL, headers,
// and HTTP client. All fields are fixed at construction.
type ModelAdapter struct {
	name    string
	baseURL string
	headers map[string]string
	client  *http.Client

	clientOnce    sync.Once
	defaultClient *http.Client
}

// New creates a ModelAdapter with the given settings.
// A nil client falls back to a default client with a 10-minute timeout.
func New(name, baseURL string, client *http.Client, headers map[string]string) ModelAdapter {
	return ModelAdapter{
		name:    name,
		baseURL: baseURL,
		headers: maps.Clone(headers),
		client:  client,
	}
}

// GetModelName returns the model identifier supplied at construction.
func (a *ModelAdapter) GetModelName() string { return a.name }

// BaseURL returns the API base URL.
func (a *ModelAdapter) BaseURL() string { return a.baseURL }

// Headers returns a copy of the extra headers applied to every request.
func (a *ModelAdapter) Headers() map[string]string { return maps.Clone(a.headers) }

// HTTPClient returns the configured client or a cached default client with a
// 10-minute timeout.
func (a *ModelAdapter) HTTPClient() *http.Client {
	if a.client != nil {
		return a.client
	}

	a.clientOnce.Do(func() {
		a.defaultClient = &http.Client{Timeout: 10 * time.Minute}
	})

	return a.defaultClient
}
