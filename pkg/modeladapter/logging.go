package modeladapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type loggedModel struct {
	next Model
	log  *slog.Logger
}

// WithLogging returns a Model that logs generation start, duration, and error
// for every call to next. Each call is tagged with a fresh request id.
func WithLogging(next Model, log *slog.Logger) Model {
	return &loggedModel{next: next, log: log}
}

func (m *loggedModel) GetModelName() string { return m.next.GetModelName() }

func (m *loggedModel) Generate(ctx context.Context, prompt string) (string, error) {
	id := m.started(ctx, "generate", prompt)
	start := time.Now()

	text, err := m.next.Generate(ctx, prompt)
	m.finished(ctx, id, time.Since(start), text, err)

	return text, err
}

func (m *loggedModel) AGenerate(ctx context.Context, prompt string) <-chan Result {
	id := m.started(ctx, "agenerate", prompt)
	start := time.Now()
	in := m.next.AGenerate(ctx, prompt)

	out := make(chan Result, 1)
	go func() {
		defer close(out)

		res, ok := <-in
		if !ok {
			res = Result{Err: ErrNoResult}
		}
		m.finished(ctx, id, time.Since(start), res.Text, res.Err)
		out <- res
	}()

	return out
}

func (m *loggedModel) started(ctx context.Context, op, prompt string) string {
	id := uuid.NewString()

	m.log.InfoContext(ctx, "generation started",
		"request_id", id,
		"op", op,
		"model", m.next.GetModelName(),
		"prompt_chars", len(prompt),
	)

	return id
}

func (m *loggedModel) finished(ctx context.Context, id string, d time.Duration, text string, err error) {
	if err != nil {
		m.log.ErrorContext(ctx, "generation finished with error",
			"request_id", id,
			"duration", d,
			"error", err,
		)
		return
	}

	m.log.InfoContext(ctx, "generation finished",
		"request_id", id,
		"duration", d,
		"reply_chars", len(text),
	)
}
