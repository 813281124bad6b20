package models

import "time"

type Barber struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BranchID uint   `json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"branch"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
