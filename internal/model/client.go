package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Address     string    `json:"address"`
	ContactInfo string    `json:"contact_info" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
}
