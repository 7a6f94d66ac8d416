package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearsSince(t *testing.T) {
	const current = 2031
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{name: "unknown level", start: 0, want: 0},
		{name: "current year", start: current, want: 0},
		{name: "five years ago", start: current - 5, want: 5},
		{name: "future year is not clamped", start: current + 2, want: -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YearsSince(tt.start, current))
		})
	}
}

func TestCalculatorSince(t *testing.T) {
	c := NewCalculator(FixedYear(2024))
	assert.Equal(t, 0, c.Since(0))
	assert.Equal(t, 0, c.Since(2024))
	assert.Equal(t, 5, c.Since(2019))

	// Repeated calls carry no state.
	for i := 0; i < 5; i++ {
		assert.Equal(t, 5, c.Since(2019))
	}
}

func TestCalculatorReadsClockPerCall(t *testing.T) {
	year := 2020
	c := NewCalculator(func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	})
	assert.Equal(t, 10, c.Since(2010))
	year = 2022
	assert.Equal(t, 12, c.Since(2010))
}

func TestNilClockUsesSystemClock(t *testing.T) {
	current := time.Now().Year()
	assert.Equal(t, 0, NewCalculator(nil).Since(current))
	assert.Equal(t, 5, (&Calculator{}).Since(current-5))
}
