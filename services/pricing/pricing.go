package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/jinzhu/now"
)

// ErrInvalidStay covers unparsable or reversed check-in/check-out dates.
var ErrInvalidStay = errors.New("invalid stay dates")

// Nights returns the number of chargeable nights between two calendar
// dates. A stay spanning a partial day rounds up to the next whole night.
func Nights(checkIn, checkOut string) (int, error) {
	start, err := now.Parse(checkIn)
	if err != nil {
		return 0, fmt.Errorf("%w: bad check-in %q", ErrInvalidStay, checkIn)
	}
	end, err := now.Parse(checkOut)
	if err != nil {
		return 0, fmt.Errorf("%w: bad check-out %q", ErrInvalidStay, checkOut)
	}
	if !end.After(start) {
		return 0, fmt.Errorf("%w: check-out %q must be after check-in %q", ErrInvalidStay, checkOut, checkIn)
	}

	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	return nights, nil
}

// NightlyTotal prices a per-night offering: rate times the rounded-up
// night count.
func NightlyTotal(rate float64, checkIn, checkOut string) (float64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return rate * float64(nights), nil
}

// PerPersonTotal prices a per-person offering.
func PerPersonTotal(rate float64, guests int) float64 {
	if guests < 1 {
		guests = 1
	}
	return rate * float64(guests)
}
