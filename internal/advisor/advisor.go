// Package advisor answers free-text finance questions. It asks a text
// generator first and, when that is unavailable or fails, falls back to
// templates filled from the user's own numbers.
package advisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/financely/financely/internal/insight"
	"github.com/financely/financely/internal/model"
)

var (
	// ErrMissingCredential means no API key was configured; no call is attempted.
	ErrMissingCredential = errors.New("text generation credential not configured")
	// ErrEmptyResponse means the generator answered without any text.
	ErrEmptyResponse = errors.New("text generation returned no text")
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Mode records which path produced an answer.
type Mode string

const (
	ModeLive     Mode = "live"
	ModeFallback Mode = "fallback"
)

// Advice is the answer to one message.
type Advice struct {
	Mode  Mode   `json:"mode"`
	Topic Topic  `json:"topic"`
	Text  string `json:"text"`
	// Err is why the live path was abandoned; nil for live answers.
	Err error `json:"-"`
}

// Reason returns Err as text, or "" for live answers.
func (a Advice) Reason() string {
	if a.Err == nil {
		return ""
	}
	return a.Err.Error()
}

// Advisor composes prompts and fallback answers. It holds no per-call state
// and is safe for concurrent use if its Generator is.
type Advisor struct {
	gen      Generator
	currency insight.Currency
	logger   *slog.Logger
}

// New creates an Advisor. gen may be nil, in which case every answer is a fallback.
func New(gen Generator, currency insight.Currency, logger *slog.Logger) *Advisor {
	if currency == "" {
		currency = insight.DefaultCurrency
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Advisor{gen: gen, currency: currency, logger: logger}
}

// Advise answers message from the snapshot. It never fails: any problem on
// the live path is logged and the templated answer is returned instead.
// There are no retries.
func (a *Advisor) Advise(ctx context.Context, snap model.Snapshot, message string) Advice {
	c := insight.BuildContext(snap)
	p := insight.Predict(c)
	topic := MatchTopic(message)

	if a.gen == nil {
		return a.fallback(c, p, topic, ErrMissingCredential)
	}

	text, err := a.gen.Generate(ctx, BuildPrompt(c, p, message, a.currency))
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		return a.fallback(c, p, topic, err)
	}

	return Advice{Mode: ModeLive, Topic: topic, Text: text}
}

func (a *Advisor) fallback(c insight.Context, p insight.PredictiveInsight, topic Topic, err error) Advice {
	if errors.Is(err, ErrMissingCredential) {
		a.logger.Debug("advice generator not configured, using fallback", "topic", topic)
	} else {
		a.logger.Warn("advice generation failed, using fallback", "topic", topic, "error", err)
	}
	return Advice{
		Mode:  ModeFallback,
		Topic: topic,
		Text:  Render(topic, c, p, a.currency),
		Err:   err,
	}
}

// QuickInsights builds the dashboard banners for a snapshot.
func (a *Advisor) QuickInsights(snap model.Snapshot) []string {
	c := insight.BuildContext(snap)
	return insight.QuickInsights(c, insight.Predict(c), a.currency)
}
