package schedule

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Availability
// ===============================

const DefaultSlotGranularity = 30 * time.Minute

// TimeSlot é a forma "HH:mm" de um slot para a borda HTTP e o cache.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (t TimeOfDay) Slot(duration time.Duration) TimeSlot {
	return TimeSlot{
		Start: t.String(),
		End:   t.Add(duration).String(),
	}
}

// WithinWorkingHours valida se a janela cabe inteira numa faixa de
// expediente do dia e não encosta em nenhuma pausa.
func WithinWorkingHours(day DaySchedule, window ClockRange) bool {
	inShift := false
	for _, w := range day.Working {
		if RangeContains(w, window) {
			inShift = true
			break
		}
	}
	if !inShift {
		return false
	}

	for _, b := range day.Breaks {
		if RangeOverlaps(b, window) {
			return false
		}
	}

	return true
}

// ComputeAvailableSlots devolve os horários de início ofertáveis para um
// serviço de serviceDuration no dia informado, em ordem crescente.
//
// Candidatos são gerados por faixa de expediente, no passo de granularity,
// e descartados quando: não cabem inteiros na faixa, cruzam uma pausa,
// já passaram (quando date é hoje segundo now) ou colidem com um
// agendamento não cancelado do barbeiro.
//
// O resultado é finito e totalmente materializado; existing chega do store
// já buscado por (filial, dia).
func ComputeAvailableSlots(
	week WeekSchedule,
	existing []models.Appointment,
	barberID uint,
	date time.Time,
	serviceDuration time.Duration,
	granularity time.Duration,
	now time.Time,
) []TimeOfDay {

	day, ok := week[date.Weekday()]
	if !ok || !day.IsWorkingDay() {
		return []TimeOfDay{}
	}

	if granularity <= 0 {
		granularity = DefaultSlotGranularity
	}

	loc := date.Location()
	localNow := now.In(loc)
	isToday := localNow.Year() == date.Year() &&
		localNow.Month() == date.Month() &&
		localNow.Day() == date.Day()
	nowOfDay := FromInstant(localNow)

	// janelas ocupadas do barbeiro, projetadas para horário do dia
	var busy []ClockRange
	for _, ap := range existing {
		if ap.BarberID != barberID || !Blocks(ap) {
			continue
		}
		busy = append(busy, ClockRange{
			Start: FromInstant(ap.StartTime.In(loc)),
			End:   FromInstant(ap.EndTime.In(loc)),
		})
	}

	step := TimeOfDay(granularity / time.Minute)
	length := TimeOfDay(serviceDuration / time.Minute)

	var slots []TimeOfDay

	for _, shift := range day.Working {
		for cur := shift.Start; cur+length <= shift.End; cur += step {
			window := ClockRange{Start: cur, End: cur + length}

			if isToday && cur <= nowOfDay {
				continue
			}

			if !WithinWorkingHours(day, window) {
				continue
			}

			conflict := false
			for _, b := range busy {
				if RangeOverlaps(b, window) {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}

			slots = append(slots, cur)
		}
	}

	// turnos podem vir fora de ordem; o contrato é ordem crescente
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	if slots == nil {
		return []TimeOfDay{}
	}
	return slots
}
