// Package llm provides the text-completion gateway. It tries a primary
// backend (Groq) then a secondary one (Gemini); when neither can service a
// prompt it returns the Unavailable sentinel so callers can substitute
// pre-written fallback content instead of handling errors.
package llm

import (
	"context"

	"github.com/devang92/wayfarer/log"
)

// Unavailable is the reserved sentinel returned when no backend could
// service a request. Callers must compare against it by value.
const Unavailable = "__LLM_UNAVAILABLE__"

// Backend is one text-completion provider. A backend gets exactly one
// attempt per Generate call; it never retries internally.
type Backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator is the consumer-side interface of the gateway.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// Gateway fans a prompt across its backends in priority order.
type Gateway struct {
	backends []Backend
}

// NewGateway builds a gateway over the given backends. Backends whose
// credentials are missing should simply not be passed in; an empty gateway
// is valid and always returns Unavailable.
func NewGateway(backends ...Backend) *Gateway {
	return &Gateway{backends: backends}
}

var _ Generator = (*Gateway)(nil)

// Generate returns the first backend's completion, or Unavailable when all
// backends fail or none are configured. An empty completion counts as a
// failure.
func (g *Gateway) Generate(ctx context.Context, prompt string) string {
	for _, b := range g.backends {
		text, err := b.Complete(ctx, prompt)
		if err != nil {
			log.Warnf(ctx, "LLM backend %s failed: %v", b.Name(), err)
			continue
		}
		if text == "" {
			log.Warnf(ctx, "LLM backend %s returned empty completion", b.Name())
			continue
		}
		return text
	}
	return Unavailable
}
