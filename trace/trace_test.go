package trace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrace_StartFinish(t *testing.T) {
	tr := New()

	inputs := map[string]interface{}{"city": "Tokyo", "days": 5}
	h := tr.Start("get_weather_forecast", inputs)

	err := tr.Finish(h, []string{"sunny", "rain"}, "")
	assert.NoError(t, err)

	calls := tr.Calls()
	assert.Len(t, calls, 1)
	assert.Equal(t, StatusSuccess, calls[0].Status)
	assert.Equal(t, "get_weather_forecast", calls[0].Tool)
	assert.GreaterOrEqual(t, calls[0].DurationMS, 0.0)
	assert.Empty(t, calls[0].Error)
}

func TestTrace_FinishWithError(t *testing.T) {
	tr := New()

	h := tr.Start("search_flights", map[string]interface{}{"from": "Delhi"})
	err := tr.Finish(h, nil, "upstream exploded")
	assert.NoError(t, err)

	calls := tr.Calls()
	assert.Equal(t, StatusError, calls[0].Status)
	assert.Equal(t, "upstream exploded", calls[0].Error)
}

func TestTrace_InputsNotMutated(t *testing.T) {
	tr := New()

	inputs := map[string]interface{}{"country": "Japan"}
	h := tr.Start("get_currency_info", inputs)

	// Mutating the caller's map after Start must not leak into the record.
	inputs["country"] = "France"

	assert.NoError(t, tr.Finish(h, "ok", ""))
	assert.Equal(t, map[string]interface{}{"country": "Japan"}, tr.Calls()[0].Inputs)
}

func TestTrace_BadHandle(t *testing.T) {
	tr := New()
	assert.Error(t, tr.Finish(0, nil, ""))
	assert.Error(t, tr.Finish(-1, nil, ""))
}

func TestTrace_DoubleFinish(t *testing.T) {
	tr := New()

	h := tr.Start("get_attractions", nil)
	assert.NoError(t, tr.Finish(h, "first", ""))

	err := tr.Finish(h, "second", "")
	assert.Error(t, err)

	// The first finalization stands.
	assert.Equal(t, "first", tr.Calls()[0].Output)
}

func TestTrace_OrderAndReset(t *testing.T) {
	tr := New()
	tr.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	a := tr.Start("a", nil)
	b := tr.Start("b", nil)
	assert.NoError(t, tr.Finish(b, 2, ""))
	assert.NoError(t, tr.Finish(a, 1, ""))

	calls := tr.Calls()
	assert.Equal(t, "a", calls[0].Tool)
	assert.Equal(t, "b", calls[1].Tool)
	assert.Equal(t, 0.0, calls[0].DurationMS)

	tr.Reset()
	assert.Equal(t, 0, tr.Len())
}
