package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Interfaces dos colaboradores externos do core de agenda. O core consome,
// não implementa: a implementação gorm fica em internal/infra/repository.

type BranchLookup interface {
	GetBranchByID(ctx context.Context, id uint) (*models.Branch, error)
	GetBranchBySlug(ctx context.Context, slug string) (*models.Branch, error)
}

type BarberLookup interface {
	GetBarberByID(ctx context.Context, id uint) (*models.Barber, error)

	// GetWeekSchedule devolve a agenda decodificada do barbeiro
	// (faixas "HH:mm" do banco viram ClockRange aqui dentro).
	GetWeekSchedule(ctx context.Context, barberID uint) (WeekSchedule, error)
}

type ServiceLookup interface {
	GetServiceByID(ctx context.Context, branchID uint, serviceID uint) (*models.Service, error)
}

type ClientStore interface {
	GetOrCreateClient(ctx context.Context, branchID uint, name, phone, email string) (*models.Client, error)
}

type AppointmentStore interface {
	// QueryByBranchAndDay busca todos os agendamentos da filial no dia,
	// qualquer barbeiro e qualquer status. Filtros finos ficam em memória.
	QueryByBranchAndDay(ctx context.Context, branchID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	// InsertIfAvailable grava o agendamento numa transação que reavalia o
	// predicado de conflito contra o estado já commitado, com lock das
	// linhas concorrentes. Devolve ConflictError se a janela foi tomada.
	InsertIfAvailable(ctx context.Context, ap *models.Appointment) error

	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Appointment, error)

	Save(ctx context.Context, ap *models.Appointment) error

	// ListAppointmentsForPeriod é a visão de agenda da equipe (com client
	// e service pré-carregados), sem filtro de status.
	ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error)
}
