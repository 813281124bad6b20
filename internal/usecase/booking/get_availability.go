package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type GetAvailabilityInput struct {
	BranchID  uint
	BarberID  uint
	ServiceID uint
	Date      string // YYYY-MM-DD
}

type GetAvailability struct {
	repo  Repository
	cache *cache.AvailabilityCache
	now   func() time.Time
}

func NewGetAvailability(repo Repository, cache *cache.AvailabilityCache) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]schedule.TimeSlot, error) {

	branch, err := uc.repo.GetBranchByID(ctx, in.BranchID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(branch.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, schedule.ValidationError{
			Code:    "invalid_date",
			Message: "Data inválida.",
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
		return []schedule.TimeSlot{}, nil
	}

	svc, err := uc.repo.GetServiceByID(ctx, branch.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute

	if slots, ok := uc.cache.Get(ctx, branch.ID, barber.ID, in.Date, svc.DurationMin); ok {
		return slots, nil
	}

	week, err := uc.repo.GetWeekSchedule(ctx, barber.ID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointmentsForDay, err := uc.repo.QueryByBranchAndDay(ctx, branch.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	starts := schedule.ComputeAvailableSlots(
		week,
		appointmentsForDay,
		barber.ID,
		date,
		duration,
		schedule.DefaultSlotGranularity,
		uc.now(),
	)

	slots := make([]schedule.TimeSlot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, s.Slot(duration))
	}

	uc.cache.Set(ctx, branch.ID, barber.ID, in.Date, svc.DurationMin, slots)

	return slots, nil
}
