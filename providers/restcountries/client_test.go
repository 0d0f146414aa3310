package restcountries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupCountry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/Japan", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]interface{}{{
			"name":       map[string]interface{}{"common": "Japan"},
			"currencies": map[string]interface{}{"JPY": map[string]interface{}{"name": "Japanese yen", "symbol": "¥"}},
			"capital":    []string{"Tokyo"},
			"latlng":     []float64{36.0, 138.0},
			"flag":       "🇯🇵",
		}})
	}))
	defer ts.Close()

	c := NewClient()
	c.BaseURL = ts.URL

	country, err := c.LookupCountry(context.Background(), "Japan")
	assert.NoError(t, err)
	assert.Equal(t, "Japan", country.Name.Common)
	assert.Equal(t, "Japanese yen", country.Currencies["JPY"].Name)
	assert.Equal(t, []string{"Tokyo"}, country.Capital)
}

func TestLookupCountry_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient()
	c.BaseURL = ts.URL

	_, err := c.LookupCountry(context.Background(), "Atlantis")
	assert.Error(t, err)
}

func TestLookupCountry_EmptyList(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]interface{}{})
	}))
	defer ts.Close()

	c := NewClient()
	c.BaseURL = ts.URL

	_, err := c.LookupCountry(context.Background(), "Nowhere")
	assert.Error(t, err)
}
