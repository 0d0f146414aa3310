package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubBackend struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestGateway_PrimaryWins(t *testing.T) {
	primary := &stubBackend{name: "primary", text: "a paragraph"}
	secondary := &stubBackend{name: "secondary", text: "should not be used"}

	g := NewGateway(primary, secondary)
	out := g.Generate(context.Background(), "write about Tokyo")

	assert.Equal(t, "a paragraph", out)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestGateway_FallsBackToSecondary(t *testing.T) {
	primary := &stubBackend{name: "primary", err: errors.New("quota exceeded")}
	secondary := &stubBackend{name: "secondary", text: "backup text"}

	g := NewGateway(primary, secondary)
	out := g.Generate(context.Background(), "prompt")

	assert.Equal(t, "backup text", out)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestGateway_AllFail(t *testing.T) {
	primary := &stubBackend{name: "primary", err: errors.New("down")}
	secondary := &stubBackend{name: "secondary", err: errors.New("also down")}

	g := NewGateway(primary, secondary)
	assert.Equal(t, Unavailable, g.Generate(context.Background(), "prompt"))
}

func TestGateway_EmptyCompletionIsFailure(t *testing.T) {
	primary := &stubBackend{name: "primary", text: ""}
	secondary := &stubBackend{name: "secondary", text: "real text"}

	g := NewGateway(primary, secondary)
	assert.Equal(t, "real text", g.Generate(context.Background(), "prompt"))
}

func TestGateway_NoBackends(t *testing.T) {
	g := NewGateway()
	assert.Equal(t, Unavailable, g.Generate(context.Background(), "prompt"))
}

func TestNewGroq_RequiresKey(t *testing.T) {
	_, err := NewGroq("", "llama-3.3-70b-versatile")
	assert.Error(t, err)
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-2.0-flash")
	assert.Error(t, err)
}
