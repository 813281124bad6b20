package booking

import (
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
)

// Repository agrega os colaboradores que os use cases de agendamento
// consomem. A implementação gorm satisfaz tudo de uma vez.
type Repository interface {
	schedule.BranchLookup
	schedule.BarberLookup
	schedule.ServiceLookup
	schedule.ClientStore
	schedule.AppointmentStore
}
