package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// fakeRepo implementa Repository em memória para os testes de use case.
// InsertIfAvailable reavalia o conflito contra o estado guardado, igual à
// transação do adapter gorm.
type fakeRepo struct {
	branches  map[uint]*models.Branch
	barbers   map[uint]*models.Barber
	services  map[uint]*models.Service
	schedules map[uint]schedule.WeekSchedule

	appointments []models.Appointment
	nextID       uint

	insertCalls int
	failWith    error // força falha no próximo InsertIfAvailable
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		branches:  map[uint]*models.Branch{},
		barbers:   map[uint]*models.Barber{},
		services:  map[uint]*models.Service{},
		schedules: map[uint]schedule.WeekSchedule{},
		nextID:    1,
	}
}

func (f *fakeRepo) GetBranchByID(_ context.Context, id uint) (*models.Branch, error) {
	b, ok := f.branches[id]
	if !ok {
		return nil, schedule.NotFoundError{Entity: "branch"}
	}
	return b, nil
}

func (f *fakeRepo) GetBranchBySlug(_ context.Context, slug string) (*models.Branch, error) {
	for _, b := range f.branches {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, schedule.NotFoundError{Entity: "branch"}
}

func (f *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, schedule.NotFoundError{Entity: "barber"}
	}
	return b, nil
}

func (f *fakeRepo) GetWeekSchedule(_ context.Context, barberID uint) (schedule.WeekSchedule, error) {
	week, ok := f.schedules[barberID]
	if !ok {
		return schedule.WeekSchedule{}, nil
	}
	return week, nil
}

func (f *fakeRepo) GetServiceByID(_ context.Context, branchID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.BranchID != branchID {
		return nil, schedule.NotFoundError{Entity: "service"}
	}
	return s, nil
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, branchID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{
		ID:       1,
		BranchID: branchID,
		Name:     name,
		Phone:    phone,
		Email:    email,
	}, nil
}

func (f *fakeRepo) QueryByBranchAndDay(_ context.Context, branchID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BranchID != branchID {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (f *fakeRepo) InsertIfAvailable(_ context.Context, ap *models.Appointment) error {
	f.insertCalls++

	if f.failWith != nil {
		err := f.failWith
		f.failWith = nil
		return err
	}

	duration := time.Duration(ap.DurationMinutes) * time.Minute
	result := schedule.CheckAvailability(ap.BarberID, ap.StartTime, duration, f.appointments)
	if !result.Available {
		return schedule.ConflictError{Conflicts: result.Conflicts}
	}

	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetByPublicID(_ context.Context, publicID uuid.UUID) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].PublicID == publicID {
			ap := f.appointments[i]
			return &ap, nil
		}
	}
	return nil, schedule.NotFoundError{Entity: "appointment"}
}

func (f *fakeRepo) Save(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return schedule.NotFoundError{Entity: "appointment"}
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

var _ Repository = (*fakeRepo)(nil)

// ---------- fixture padrão ----------

// 2025-03-10 é uma segunda-feira
var (
	testMondayDate = "2025-03-10"
	testNow        = time.Date(2025, 3, 9, 8, 0, 0, 0, time.UTC)
)

func nineToSixWeek() schedule.WeekSchedule {
	week := schedule.WeekSchedule{}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		week[wd] = schedule.DaySchedule{
			Working: []schedule.ClockRange{{Start: 9 * 60, End: 18 * 60}},
			Breaks:  []schedule.ClockRange{{Start: 12 * 60, End: 13 * 60}},
		}
	}
	return week
}

func seededRepo() *fakeRepo {
	f := newFakeRepo()

	f.branches[1] = &models.Branch{
		ID:       1,
		Name:     "Matriz",
		Slug:     "matriz",
		Timezone: "UTC",
	}
	f.barbers[1] = &models.Barber{
		ID:       1,
		BranchID: 1,
		Name:     "João",
		IsActive: true,
	}
	f.services[1] = &models.Service{
		ID:          1,
		BranchID:    1,
		Name:        "Corte",
		DurationMin: 30,
		Price:       50,
		Active:      true,
	}
	f.schedules[1] = nineToSixWeek()

	return f
}

func fixedNow() time.Time {
	return testNow
}
