package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID          uuid.UUID `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	Price       float64   `json:"price"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
}
