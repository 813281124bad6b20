package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`

	BranchID uint   `json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `gorm:"index:idx_appointments_barber_start" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartTime       time.Time `gorm:"index:idx_appointments_barber_start" json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	// EndTime é derivado mas fica materializado para a query de conflito.
	EndTime time.Time `json:"end_time"`

	Status string  `gorm:"size:20;default:'pending'" json:"status"`
	Price  float64 `json:"price"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
