package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo Repository
}

func NewListAppointmentsByDate(repo Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	branchID uint,
	barberID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	branch, err := uc.repo.GetBranchByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(branch.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barberID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.PublicID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			Price:       ap.Price,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
