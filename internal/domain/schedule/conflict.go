package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Conflict check
// ===============================

type ConflictResult struct {
	Available bool
	Conflicts []models.Appointment
}

// Blocks informa se um agendamento ainda ocupa a agenda do barbeiro.
// Cancelado libera o horário; todos os outros status bloqueiam.
func Blocks(ap models.Appointment) bool {
	return Status(ap.Status) != StatusCancelled
}

// CheckAvailability testa a janela proposta [start, start+duration) contra
// os agendamentos do dia. A busca no store é por (filial, dia); o filtro de
// barbeiro e status acontece aqui, em memória — o volume de um dia por
// filial é pequeno e isso evita índice composto por combinação de filtro.
func CheckAvailability(
	barberID uint,
	start time.Time,
	duration time.Duration,
	appointmentsForDay []models.Appointment,
) ConflictResult {

	end := start.Add(duration)

	var conflicts []models.Appointment
	for _, ap := range appointmentsForDay {
		if ap.BarberID != barberID || !Blocks(ap) {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			conflicts = append(conflicts, ap)
		}
	}

	return ConflictResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}
}
