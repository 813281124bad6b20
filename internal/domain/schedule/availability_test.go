package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// agenda de referência: seg-sex 09:00-18:00 com pausa 12:00-13:00
func weekdaysNineToSix() WeekSchedule {
	week := WeekSchedule{}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		week[wd] = DaySchedule{
			Working: []ClockRange{{Start: 9 * 60, End: 18 * 60}},
			Breaks:  []ClockRange{{Start: 12 * 60, End: 13 * 60}},
		}
	}
	return week
}

// 2025-03-10 é uma segunda-feira
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// now bem antes do dia consultado
var earlierNow = time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)

func slotStrings(slots []TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestComputeAvailableSlots_NonWorkingDay(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	slots := ComputeAvailableSlots(weekdaysNineToSix(), nil, 1, sunday, 30*time.Minute, 30*time.Minute, earlierNow)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_Scenario(t *testing.T) {
	existing := []models.Appointment{
		dayAppointment(1, 10, 0, 30, StatusConfirmed),
	}

	slots := ComputeAvailableSlots(weekdaysNineToSix(), existing, 1, monday, 30*time.Minute, 30*time.Minute, earlierNow)
	got := slotStrings(slots)

	// 18 candidatos no dia, menos a pausa (12:00, 12:30) e o ocupado (10:00)
	assert.Len(t, got, 15)

	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "09:30")
	assert.Contains(t, got, "11:30") // encosta na pausa, não cruza
	assert.Contains(t, got, "13:00")
	assert.Contains(t, got, "17:30") // último que cabe antes das 18:00

	assert.NotContains(t, got, "10:00") // ocupado
	assert.NotContains(t, got, "12:00") // pausa
	assert.NotContains(t, got, "12:30") // pausa
	assert.NotContains(t, got, "18:00") // terminaria 18:30, fora do expediente

	// ordem crescente
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestComputeAvailableSlots_PastTimeExclusion(t *testing.T) {
	// consultando o próprio dia às 12:10
	now := time.Date(2025, 3, 10, 12, 10, 0, 0, time.UTC)

	slots := ComputeAvailableSlots(weekdaysNineToSix(), nil, 1, monday, 30*time.Minute, 30*time.Minute, now)
	got := slotStrings(slots)

	require.NotEmpty(t, got)
	assert.Equal(t, "13:00", got[0])

	for _, s := range slots {
		assert.Greater(t, s, FromInstant(now))
	}
}

func TestComputeAvailableSlots_FullDayExhaustion(t *testing.T) {
	// um bloco confirmado cobrindo o expediente inteiro
	existing := []models.Appointment{
		dayAppointment(1, 9, 0, 9*60, StatusConfirmed),
	}

	slots := ComputeAvailableSlots(weekdaysNineToSix(), existing, 1, monday, 30*time.Minute, 30*time.Minute, earlierNow)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_CancellationFreesSlot(t *testing.T) {
	occupied := []models.Appointment{
		dayAppointment(1, 10, 0, 30, StatusConfirmed),
	}

	before := ComputeAvailableSlots(weekdaysNineToSix(), occupied, 1, monday, 30*time.Minute, 30*time.Minute, earlierNow)
	assert.NotContains(t, slotStrings(before), "10:00")

	occupied[0].Status = string(StatusCancelled)

	after := ComputeAvailableSlots(weekdaysNineToSix(), occupied, 1, monday, 30*time.Minute, 30*time.Minute, earlierNow)
	assert.Contains(t, slotStrings(after), "10:00")
}

func TestComputeAvailableSlots_SplitShift(t *testing.T) {
	week := WeekSchedule{
		time.Monday: {
			Working: []ClockRange{
				{Start: 14 * 60, End: 18 * 60}, // fora de ordem de propósito
				{Start: 9 * 60, End: 12 * 60},
			},
		},
	}

	slots := ComputeAvailableSlots(week, nil, 1, monday, time.Hour, 30*time.Minute, earlierNow)
	got := slotStrings(slots)

	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "11:00") // termina 12:00, ainda cabe
	assert.Contains(t, got, "14:00")
	assert.Contains(t, got, "17:00")

	assert.NotContains(t, got, "11:30") // cruzaria o fim do turno da manhã
	assert.NotContains(t, got, "12:00")
	assert.NotContains(t, got, "13:30")

	// merge ordenado entre turnos
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestComputeAvailableSlots_ServiceLongerThanRemainder(t *testing.T) {
	slots := ComputeAvailableSlots(weekdaysNineToSix(), nil, 1, monday, 45*time.Minute, 30*time.Minute, earlierNow)
	got := slotStrings(slots)

	assert.Contains(t, got, "17:00") // termina 17:45
	assert.NotContains(t, got, "17:30")
	// 45 min não cabem entre 11:30 e a pausa
	assert.NotContains(t, got, "11:30")
	assert.Contains(t, got, "11:00") // termina 11:45, encosta na pausa
}

func TestWithinWorkingHours(t *testing.T) {
	day := weekdaysNineToSix()[time.Monday]

	assert.True(t, WithinWorkingHours(day, ClockRange{Start: 9 * 60, End: 9*60 + 30}))
	assert.True(t, WithinWorkingHours(day, ClockRange{Start: 11*60 + 30, End: 12 * 60}))
	assert.True(t, WithinWorkingHours(day, ClockRange{Start: 13 * 60, End: 14 * 60}))

	assert.False(t, WithinWorkingHours(day, ClockRange{Start: 8 * 60, End: 9 * 60}))
	assert.False(t, WithinWorkingHours(day, ClockRange{Start: 12*60 + 15, End: 12*60 + 45})) // dentro da pausa
	assert.False(t, WithinWorkingHours(day, ClockRange{Start: 11*60 + 45, End: 12*60 + 15})) // cruza a pausa
	assert.False(t, WithinWorkingHours(day, ClockRange{Start: 17*60 + 45, End: 18*60 + 15}))

	// dia sem expediente
	assert.False(t, WithinWorkingHours(DaySchedule{}, ClockRange{Start: 10 * 60, End: 11 * 60}))
}
