package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotelSearchDeterministic(t *testing.T) {
	var h Hotels

	first := h.Search("Tokyo", "2026-04-10", "2026-04-14", 2)
	second := h.Search("Tokyo", "2026-04-10", "2026-04-14", 2)
	assert.Equal(t, first, second)

	third := h.Search(" tokyo ", "2026-04-10", "2026-04-14", 2)
	assert.Equal(t, first, third)
}

func TestHotelSearchShape(t *testing.T) {
	var h Hotels

	hotels := h.Search("Udaipur", "2026-05-01", "2026-05-05", 4)
	assert.GreaterOrEqual(t, len(hotels), 4)
	assert.LessOrEqual(t, len(hotels), 6)

	for i, ho := range hotels {
		assert.Contains(t, ho.Name, "Udaipur")
		assert.Contains(t, []int{3, 4, 5}, ho.Stars)
		assert.GreaterOrEqual(t, ho.Rating, 3.0)
		assert.LessOrEqual(t, ho.Rating, 5.0)
		assert.GreaterOrEqual(t, len(ho.Amenities), 3)
		assert.LessOrEqual(t, len(ho.Amenities), 7)
		assert.GreaterOrEqual(t, ho.PricePerNight, 40)
		assert.Equal(t, 4, ho.Guests)
		assert.Equal(t, "2026-05-01", ho.CheckIn)
		assert.Equal(t, "2026-05-05", ho.CheckOut)
		assert.True(t, ho.Sample)
		assert.Equal(t, hotelNote, ho.Note)
		if i > 0 {
			assert.GreaterOrEqual(t, ho.PricePerNight, hotels[i-1].PricePerNight)
		}
	}
}

func TestHotelSearchDefaultsGuests(t *testing.T) {
	var h Hotels

	hotels := h.Search("Paris", "2026-07-01", "2026-07-03", -2)
	for _, ho := range hotels {
		assert.Equal(t, 1, ho.Guests)
	}
}

func TestHotelSearchVariesWithCity(t *testing.T) {
	var h Hotels

	paris := h.Search("Paris", "2026-07-01", "2026-07-03", 2)
	london := h.Search("London", "2026-07-01", "2026-07-03", 2)
	assert.NotEqual(t, paris, london)
}
