package models

import "time"

// Um barbeiro pode ter mais de uma faixa por dia (turno dividido).
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_working_hours_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"index:idx_working_hours_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:mm
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pausas são pares explícitos {start, end}, nunca um array alternado.
type BreakPeriod struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_break_periods_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"index:idx_break_periods_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:mm

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
