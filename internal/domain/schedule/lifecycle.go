package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// validTransitions define a máquina de estados do agendamento.
// Todos os estados fora de pending/confirmed são terminais.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	return !ok || len(allowed) == 0
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ValidationError{Code: "invalid_status", Message: "unknown status: " + raw}
	}
	return s, nil
}

// ===============================
// Transition
// ===============================

// Transition aplica uma mudança de status em memória. Valida a transição,
// carimba UpdatedAt e o timestamp específico do novo estado. Quem chamou
// persiste o resultado; aqui não há I/O.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	from := Status(ap.Status)

	if !from.CanTransitionTo(to) {
		return InvalidTransitionError{From: from, To: to}
	}

	ap.Status = string(to)
	ap.UpdatedAt = now

	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusNoShow:
		ap.NoShowAt = &now
	}

	return nil
}
