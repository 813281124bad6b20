package schedule

import (
	"fmt"
	"time"
)

// ===============================
// TimeOfDay
// ===============================

// TimeOfDay é um horário do dia em minutos desde a meia-noite.
// Toda a lógica de agenda trabalha nesse tipo neutro; a decodificação de
// strings "HH:mm" e de timestamps fica no adapter de persistência.
type TimeOfDay int

func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", hm, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

// At ancora o horário num dia concreto, no timezone informado.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(t)/60, int(t)%60, 0, 0,
		loc,
	)
}

// FromInstant projeta um instante para o horário do dia no seu timezone.
func FromInstant(ts time.Time) TimeOfDay {
	return TimeOfDay(ts.Hour()*60 + ts.Minute())
}

// ===============================
// ClockRange / DaySchedule
// ===============================

// ClockRange é um intervalo semiaberto [Start, End) dentro de um dia.
type ClockRange struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

func (r ClockRange) Valid() bool {
	return r.Start < r.End
}

// DaySchedule é a agenda de um barbeiro para um dia da semana:
// faixas de expediente (turno dividido permitido) e pausas explícitas.
type DaySchedule struct {
	Working []ClockRange
	Breaks  []ClockRange
}

func (d DaySchedule) IsWorkingDay() bool {
	return len(d.Working) > 0
}

// WeekSchedule indexa a agenda por dia da semana. Dia ausente = folga.
type WeekSchedule map[time.Weekday]DaySchedule
