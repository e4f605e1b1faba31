// Package openrouter provides a model adapter for the OpenRouter gateway,
// which serves many vendors' models behind an OpenAI-compatible Chat
// Completions API.
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/germanamz/evalbridge/pkg/modeladapter"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultBaseURL is the OpenRouter API root. Requests go to
	// DefaultBaseURL + "/chat/completions".
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is used when no model is supplied.
	DefaultModel = "anthropic/claude-3.5-sonnet"
	// APIKeyEnv is the environment variable conventionally holding the key.
	APIKeyEnv = "OPENROUTER_API_KEY"
)

var _ modeladapter.Model = (*Adapter)(nil)

// Adapter implements modeladapter.Model on top of an OpenAI SDK client bound
// to the OpenRouter base URL.
type Adapter struct {
	modeladapter.ModelAdapter

	client openai.Client
}

type settings struct {
	model   string
	baseURL string
	client  *http.Client
	headers map[string]string
}

// Option customizes an Adapter at construction.
type Option func(*settings)

// WithModel sets the model identifier (e.g. "openai/gpt-4o").
// An empty value keeps DefaultModel.
func WithModel(model string) Option {
	return func(s *settings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithBaseURL overrides the gateway base URL. An empty value keeps DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client used for every request.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.client = c }
}

// WithHeaders adds headers sent on every request, such as OpenRouter's
// HTTP-Referer and X-Title attribution headers.
func WithHeaders(h map[string]string) Option {
	return func(s *settings) {
		if s.headers == nil {
			s.headers = make(map[string]string, len(h))
		}
		maps.Copy(s.headers, h)
	}
}

// New creates an Adapter authenticated with apiKey. An empty key is accepted:
// the adapter is still built and the first request fails with an
// authentication error from the gateway. No network I/O happens here.
func New(apiKey string, opts ...Option) *Adapter {
	s := settings{model: DefaultModel, baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&s)
	}

	a := &Adapter{
		ModelAdapter: modeladapter.New(s.model, s.baseURL, s.client, s.headers),
	}

	// NewClient applies the SDK defaults first, which read OPENAI_BASE_URL,
	// OPENAI_API_KEY, OPENAI_ORG_ID and OPENAI_PROJECT_ID. Each of them is
	// overridden or removed here so nothing from the environment reaches the
	// gateway.
	reqOpts := []option.RequestOption{
		option.WithBaseURL(a.BaseURL()),
		option.WithAPIKey(apiKey),
		option.WithHeaderDel("OpenAI-Organization"),
		option.WithHeaderDel("OpenAI-Project"),
		option.WithHTTPClient(a.HTTPClient()),
		option.WithMaxRetries(0),
	}
	for k, v := range a.Headers() {
		reqOpts = append(reqOpts, option.WithHeader(k, v))
	}

	a.client = openai.NewClient(reqOpts...)

	return a
}

// LoadModel returns the client owned by the adapter.
func (a *Adapter) LoadModel() *openai.Client { return &a.client }

// Generate sends prompt as a single user message and returns the text of the
// first completion choice. Client errors are returned wrapped, never retried.
func (a *Adapter) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.GetModelName(),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter: %w", modeladapter.ErrNoChoices)
	}

	return resp.Choices[0].Message.Content, nil
}

// AGenerate runs Generate on its own goroutine and returns immediately.
func (a *Adapter) AGenerate(ctx context.Context, prompt string) <-chan modeladapter.Result {
	return modeladapter.Go(ctx, func(ctx context.Context) (string, error) {
		return a.Generate(ctx, prompt)
	})
}

// IsAuthError reports whether err carries an HTTP 401 or 403 from the gateway,
// which is how a missing or invalid API key surfaces.
func IsAuthError(err error) bool {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}
