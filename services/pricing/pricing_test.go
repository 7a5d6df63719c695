package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNights(t *testing.T) {
	t.Run("whole nights", func(t *testing.T) {
		nights, err := Nights("2026-09-10", "2026-09-12")
		require.NoError(t, err)
		assert.Equal(t, 2, nights)
	})

	t.Run("single night", func(t *testing.T) {
		nights, err := Nights("2026-09-10", "2026-09-11")
		require.NoError(t, err)
		assert.Equal(t, 1, nights)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		nights, err := Nights("2026-09-10 14:00", "2026-09-12 11:00")
		require.NoError(t, err)
		assert.Equal(t, 2, nights)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := Nights("2026-09-12", "2026-09-10")
		assert.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("same day", func(t *testing.T) {
		_, err := Nights("2026-09-10", "2026-09-10")
		assert.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := Nights("soon", "2026-09-10")
		assert.ErrorIs(t, err, ErrInvalidStay)
	})
}

func TestNightlyTotal(t *testing.T) {
	total, err := NightlyTotal(120, "2026-09-10", "2026-09-12")
	require.NoError(t, err)
	assert.Equal(t, float64(240), total)

	total, err = NightlyTotal(100, "2026-09-10", "2026-09-13")
	require.NoError(t, err)
	assert.Equal(t, float64(300), total)

	_, err = NightlyTotal(120, "2026-09-12", "2026-09-10")
	assert.Error(t, err)
}

func TestPerPersonTotal(t *testing.T) {
	assert.Equal(t, float64(1200), PerPersonTotal(400, 3))
	assert.Equal(t, float64(400), PerPersonTotal(400, 1))

	// A guest count below one still charges a single traveler.
	assert.Equal(t, float64(400), PerPersonTotal(400, 0))
	assert.Equal(t, float64(400), PerPersonTotal(400, -2))
}
