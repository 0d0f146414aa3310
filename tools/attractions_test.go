package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devang92/wayfarer/llm"
)

type stubGenerator struct {
	response string
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) string {
	s.prompts = append(s.prompts, prompt)
	return s.response
}

func TestAttractionsCurated(t *testing.T) {
	gen := &stubGenerator{response: "should not be called"}
	a := &Attractions{LLM: gen}

	out := a.Get(context.Background(), "Tokyo")
	assert.Len(t, out, 6)
	assert.Equal(t, "Senso-ji Temple", out[0].Name)
	assert.Equal(t, "Temple", out[0].Category)
	for _, at := range out {
		assert.False(t, at.Sample)
	}
	assert.Empty(t, gen.prompts, "curated cities must not consult the LLM")
}

func TestAttractionsCuratedCopyIsolated(t *testing.T) {
	a := &Attractions{}

	first := a.Get(context.Background(), "paris")
	first[0].Name = "mutated"
	second := a.Get(context.Background(), "Paris")
	assert.Equal(t, "Eiffel Tower", second[0].Name)
}

func TestAttractionsFromLLM(t *testing.T) {
	gen := &stubGenerator{response: `Here are the top attractions:
1. Alcazar Palace | Palace | Moorish royal palace with gardens. | 4.8
2. Old Quarter | Heritage | Winding medieval streets. | 4.6/5
3. River Walk | Nature | Promenade along the river
Some trailing commentary.`}
	a := &Attractions{LLM: gen}

	out := a.Get(context.Background(), "Seville")
	assert.Len(t, out, 3)
	assert.Equal(t, Attraction{Name: "Alcazar Palace", Category: "Palace", Description: "Moorish royal palace with gardens.", Rating: 4.8}, out[0])
	assert.Equal(t, 4.6, out[1].Rating)
	// Missing rating column defaults.
	assert.Equal(t, 4.5, out[2].Rating)
	assert.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Seville")
}

func TestAttractionsLLMUnavailable(t *testing.T) {
	gen := &stubGenerator{response: llm.Unavailable}
	a := &Attractions{LLM: gen}

	out := a.Get(context.Background(), "Seville")
	assert.Len(t, out, 5)
	for _, at := range out {
		assert.True(t, at.Sample)
		assert.Contains(t, at.Name, "Seville")
	}
}

func TestAttractionsUnparseableLLMOutput(t *testing.T) {
	gen := &stubGenerator{response: "I cannot provide a list right now."}
	a := &Attractions{LLM: gen}

	out := a.Get(context.Background(), "Seville")
	assert.Len(t, out, 5)
	assert.True(t, out[0].Sample)
}

func TestAttractionsNoLLM(t *testing.T) {
	a := &Attractions{}

	out := a.Get(context.Background(), "Seville")
	assert.Len(t, out, 5)
	assert.True(t, out[0].Sample)
}

func TestParseAttractionListSkipsMalformedLines(t *testing.T) {
	out := parseAttractionList(`1. Name only
2. Too | few
3. Good Spot | Park | Nice place | 4.2`)
	assert.Len(t, out, 1)
	assert.Equal(t, "Good Spot", out[0].Name)
	assert.Equal(t, 4.2, out[0].Rating)
}
