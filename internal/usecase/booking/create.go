package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BranchID uint
	BarberID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	now   func() time.Time
}

func NewCreateAppointment(
	repo Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	branch, err := uc.repo.GetBranchByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(branch.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, schedule.ValidationError{
			Code:    "invalid_date_or_time",
			Message: "Data ou hora inválida.",
		}
	}

	// futuro estrito; a antecedência mínima da filial só aperta o piso
	now := uc.now().In(loc)
	minAdvance := branch.MinAdvanceMinutes
	if minAdvance < 0 {
		minAdvance = 0
	}
	if !start.After(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, schedule.ValidationError{
			Code:    "past_or_too_soon",
			Message: "Horário já passou ou está perto demais.",
		}
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}
	if barber.BranchID != branch.ID {
		return nil, schedule.NotFoundError{Entity: "barber"}
	}
	if !barber.IsActive {
		return nil, schedule.ValidationError{
			Code:    "barber_inactive",
			Message: "Barbeiro indisponível.",
		}
	}

	svc, err := uc.repo.GetServiceByID(ctx, branch.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	end := start.Add(duration)

	// expediente + pausas
	if end.Day() != start.Day() {
		return nil, schedule.ValidationError{
			Code:    "outside_working_hours",
			Message: "Fora do horário de atendimento.",
		}
	}

	week, err := uc.repo.GetWeekSchedule(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	window := schedule.ClockRange{
		Start: schedule.FromInstant(start),
		End:   schedule.FromInstant(end),
	}
	if !schedule.WithinWorkingHours(week[start.Weekday()], window) {
		return nil, schedule.ValidationError{
			Code:    "outside_working_hours",
			Message: "Fora do horário de atendimento.",
		}
	}

	// pré-checagem de conflito com os agendamentos do dia; a palavra final
	// é do InsertIfAvailable, que reavalia dentro da transação
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointmentsForDay, err := uc.repo.QueryByBranchAndDay(ctx, branch.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	result := schedule.CheckAvailability(barber.ID, start, duration, appointmentsForDay)
	if !result.Available {
		return nil, schedule.ConflictError{Conflicts: result.Conflicts}
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		branch.ID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PublicID:        uuid.New(),
		BranchID:        branch.ID,
		BarberID:        barber.ID,
		ClientID:        client.ID,
		ServiceID:       svc.ID,
		StartTime:       start,
		DurationMinutes: svc.DurationMin,
		EndTime:         end,
		Status:          string(schedule.InitialStatus()),
		Price:           svc.Price,
		Notes:           in.Notes,
	}

	if err := uc.repo.InsertIfAvailable(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: branch.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.InvalidateDay(ctx, branch.ID, barber.ID, in.Date)

	return ap, nil
}
