package model

import "github.com/google/uuid"

type Destination struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name string    `json:"name" gorm:"size:255;not null"`
	Zone *string   `json:"zone" gorm:"size:50"`
}

type ServiceType struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name string    `json:"name" gorm:"size:100;not null"`
}
