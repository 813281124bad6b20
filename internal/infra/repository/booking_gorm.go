package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBookingGormRepository(db *gorm.DB, log *zap.Logger) *BookingGormRepository {
	return &BookingGormRepository{db: db, log: log}
}

// --------------------------------------------------
// Branch
// --------------------------------------------------

func (r *BookingGormRepository) GetBranchByID(
	ctx context.Context,
	id uint,
) (*models.Branch, error) {

	var branch models.Branch
	err := withRetry(r.log, "get_branch", func() error {
		return r.db.WithContext(ctx).First(&branch, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.NotFoundError{Entity: "branch"}
		}
		return nil, err
	}
	return &branch, nil
}

func (r *BookingGormRepository) GetBranchBySlug(
	ctx context.Context,
	slug string,
) (*models.Branch, error) {

	var branch models.Branch
	err := withRetry(r.log, "get_branch_by_slug", func() error {
		return r.db.WithContext(ctx).Where("slug = ?", slug).First(&branch).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.NotFoundError{Entity: "branch"}
		}
		return nil, err
	}
	return &branch, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	err := withRetry(r.log, "get_barber", func() error {
		return r.db.WithContext(ctx).First(&barber, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.NotFoundError{Entity: "barber"}
		}
		return nil, err
	}
	return &barber, nil
}

// GetWeekSchedule monta a agenda semanal decodificada do barbeiro.
// As strings "HH:mm" do banco só existem daqui pra baixo; o domínio
// recebe ClockRange.
func (r *BookingGormRepository) GetWeekSchedule(
	ctx context.Context,
	barberID uint,
) (schedule.WeekSchedule, error) {

	var hours []models.WorkingHours
	err := withRetry(r.log, "list_working_hours", func() error {
		return r.db.WithContext(ctx).
			Where("barber_id = ? AND active = true", barberID).
			Order("weekday ASC, start_time ASC").
			Find(&hours).Error
	})
	if err != nil {
		return nil, err
	}

	var breaks []models.BreakPeriod
	err = withRetry(r.log, "list_break_periods", func() error {
		return r.db.WithContext(ctx).
			Where("barber_id = ?", barberID).
			Order("weekday ASC, start_time ASC").
			Find(&breaks).Error
	})
	if err != nil {
		return nil, err
	}

	week := schedule.WeekSchedule{}

	for _, wh := range hours {
		rng, err := decodeClockRange(wh.StartTime, wh.EndTime)
		if err != nil {
			r.log.Warn("skipping malformed working hours row",
				zap.Uint("barber_id", barberID),
				zap.Int("weekday", wh.Weekday),
				zap.Error(err),
			)
			continue
		}

		day := week[time.Weekday(wh.Weekday)]
		day.Working = append(day.Working, rng)
		week[time.Weekday(wh.Weekday)] = day
	}

	for _, bp := range breaks {
		rng, err := decodeClockRange(bp.StartTime, bp.EndTime)
		if err != nil {
			r.log.Warn("skipping malformed break row",
				zap.Uint("barber_id", barberID),
				zap.Int("weekday", bp.Weekday),
				zap.Error(err),
			)
			continue
		}

		day, ok := week[time.Weekday(bp.Weekday)]
		if !ok {
			// pausa sem expediente no dia não tem efeito
			continue
		}
		day.Breaks = append(day.Breaks, rng)
		week[time.Weekday(bp.Weekday)] = day
	}

	return week, nil
}

func decodeClockRange(start, end string) (schedule.ClockRange, error) {
	s, err := schedule.ParseTimeOfDay(start)
	if err != nil {
		return schedule.ClockRange{}, err
	}
	e, err := schedule.ParseTimeOfDay(end)
	if err != nil {
		return schedule.ClockRange{}, err
	}

	rng := schedule.ClockRange{Start: s, End: e}
	if !rng.Valid() {
		return schedule.ClockRange{}, schedule.ValidationError{
			Code:    "invalid_time_range",
			Message: start + " >= " + end,
		}
	}
	return rng, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	branchID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	err := withRetry(r.log, "get_service", func() error {
		return r.db.WithContext(ctx).
			Where("id = ? AND branch_id = ? AND active = true", serviceID, branchID).
			First(&svc).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.NotFoundError{Entity: "service"}
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	branchID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND phone = ?", branchID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, schedule.PersistenceError{Op: "get_client", Err: err}
	}

	client = models.Client{
		BranchID: branchID,
		Name:     name,
		Phone:    phone,
		Email:    email,
	}

	err = withRetry(r.log, "create_client", func() error {
		return r.db.WithContext(ctx).Create(&client).Error
	})
	if err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) QueryByBranchAndDay(
	ctx context.Context,
	branchID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := withRetry(r.log, "query_day_appointments", func() error {
		return r.db.WithContext(ctx).
			Where(
				"branch_id = ? AND start_time >= ? AND start_time < ?",
				branchID, dayStart, dayEnd,
			).
			Order("start_time ASC").
			Find(&apps).Error
	})
	if err != nil {
		return nil, err
	}

	return apps, nil
}

// InsertIfAvailable grava o agendamento reavaliando o predicado de conflito
// dentro da mesma transação do insert, com lock das linhas concorrentes.
// Checar antes e gravar depois em chamadas separadas deixa janela de corrida
// para duplo agendamento; por isso a checagem de fora é só pré-validação.
func (r *BookingGormRepository) InsertIfAvailable(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return withRetry(r.log, "insert_appointment", func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

			var conflicts []models.Appointment
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(
					"barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
					ap.BarberID,
					string(schedule.StatusCancelled),
					ap.EndTime,
					ap.StartTime,
				).
				Find(&conflicts).Error; err != nil {
				return err
			}

			if len(conflicts) > 0 {
				return schedule.ConflictError{Conflicts: conflicts}
			}

			return tx.Create(ap).Error
		})
	})
}

func (r *BookingGormRepository) GetByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := withRetry(r.log, "get_appointment", func() error {
		return r.db.WithContext(ctx).
			Where("public_id = ?", publicID).
			First(&ap).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.NotFoundError{Entity: "appointment"}
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) Save(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return withRetry(r.log, "save_appointment", func() error {
		return r.db.WithContext(ctx).Save(ap).Error
	})
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := withRetry(r.log, "list_period_appointments", func() error {
		return r.db.WithContext(ctx).
			Preload("Client").
			Preload("Service").
			Where(
				"barber_id = ? AND start_time >= ? AND start_time < ?",
				barberID, start, end,
			).
			Order("start_time ASC").
			Find(&apps).Error
	})
	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time checks
var (
	_ schedule.BranchLookup     = (*BookingGormRepository)(nil)
	_ schedule.BarberLookup     = (*BookingGormRepository)(nil)
	_ schedule.ServiceLookup    = (*BookingGormRepository)(nil)
	_ schedule.ClientStore      = (*BookingGormRepository)(nil)
	_ schedule.AppointmentStore = (*BookingGormRepository)(nil)
)
