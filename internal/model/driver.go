package model

import (
	"time"

	"github.com/google/uuid"
)

type Driver struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	LicenseNumber string    `json:"license_number" gorm:"uniqueIndex;size:50;not null"`
	Phone         string    `json:"phone" gorm:"size:20"`
	CreatedAt     time.Time `json:"created_at"`
}
