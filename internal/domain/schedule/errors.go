package schedule

import (
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Error kinds
// ===============================
//
// Erros de regra de negócio são determinísticos: voltam direto pro caller,
// sem retry. Só PersistenceError (falha de infra) é elegível a retry, e
// isso acontece no adapter de persistência.

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ConflictError carrega os agendamentos conflitantes para diagnóstico/UI.
type ConflictError struct {
	Conflicts []models.Appointment
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("time slot unavailable (%d conflicting appointments)", len(e.Conflicts))
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return "persistence failure in " + e.Op + ": " + e.Err.Error()
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}
