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

type UpdateStatus struct {
	repo  Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	now   func() time.Time
}

func NewUpdateStatus(
	repo Repository,
	audit *audit.Dispatcher,
	cache *cache.AvailabilityCache,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		cache: cache,
		now:   time.Now,
	}
}

// Execute aplica uma transição de status e persiste o resultado. Devolve o
// agendamento atualizado para o caller atualizar a própria view, em vez de
// recarregar a tela inteira.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actorID *uint,
	publicID uuid.UUID,
	newStatus string,
) (*models.Appointment, error) {

	to, err := schedule.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	branch, err := uc.repo.GetBranchByID(ctx, ap.BranchID)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(timezone.Location(branch.Timezone))

	if err := schedule.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BranchID: ap.BranchID,
		UserID:   actorID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// cancelamento e no-show liberam a janela; derrubar o cache do dia
	// garante que a disponibilidade volte a oferecer o horário
	day := ap.StartTime.In(timezone.Location(branch.Timezone)).Format("2006-01-02")
	uc.cache.InvalidateDay(ctx, ap.BranchID, ap.BarberID, day)

	return ap, nil
}
