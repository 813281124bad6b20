package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(h, m int) time.Time {
	return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{"disjuntos", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"parcial", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contido", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"identicos", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"extremos encostados nao contam", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"encostados invertidos", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// simetria
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(at(9, 0), at(18, 0), at(9, 0), at(18, 0)))
	assert.True(t, Contains(at(9, 0), at(18, 0), at(10, 0), at(11, 0)))
	assert.False(t, Contains(at(9, 0), at(18, 0), at(8, 30), at(9, 30)))
	assert.False(t, Contains(at(9, 0), at(18, 0), at(17, 45), at(18, 15)))
}

func TestRangeOverlaps(t *testing.T) {
	lunch := ClockRange{Start: 12 * 60, End: 13 * 60}

	assert.True(t, RangeOverlaps(lunch, ClockRange{Start: 12*60 + 15, End: 12*60 + 45}))
	assert.True(t, RangeOverlaps(lunch, ClockRange{Start: 11*60 + 45, End: 12*60 + 15}))
	assert.False(t, RangeOverlaps(lunch, ClockRange{Start: 11*60 + 30, End: 12 * 60}))
	assert.False(t, RangeOverlaps(lunch, ClockRange{Start: 13 * 60, End: 13*60 + 30}))
}

func TestRangeContains(t *testing.T) {
	shift := ClockRange{Start: 9 * 60, End: 18 * 60}

	assert.True(t, RangeContains(shift, ClockRange{Start: 9 * 60, End: 9*60 + 30}))
	assert.True(t, RangeContains(shift, ClockRange{Start: 17*60 + 30, End: 18 * 60}))
	assert.False(t, RangeContains(shift, ClockRange{Start: 18 * 60, End: 18*60 + 30}))
	assert.False(t, RangeContains(shift, ClockRange{Start: 8*60 + 45, End: 9*60 + 15}))
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*60+30), tod)
	assert.Equal(t, "09:30", tod.String())

	_, err = ParseTimeOfDay("9h30")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestTimeOfDayAt(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	tod := TimeOfDay(14*60 + 30)
	anchored := tod.At(date, loc)

	assert.Equal(t, 14, anchored.Hour())
	assert.Equal(t, 30, anchored.Minute())
	assert.Equal(t, loc, anchored.Location())
	assert.Equal(t, tod, FromInstant(anchored))
}
