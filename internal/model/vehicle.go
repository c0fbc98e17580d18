package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "AVAILABLE"
	VehicleInUse       VehicleStatus = "IN_USE"
	VehicleMaintenance VehicleStatus = "MAINTENANCE"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleMaintenance:
		return true
	}
	return false
}

type Vehicle struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	LicensePlate string          `json:"license_plate" gorm:"uniqueIndex;size:20;not null"`
	VehicleType  string          `json:"vehicle_type" gorm:"size:50;not null"`
	Capacity     decimal.Decimal `json:"capacity" gorm:"type:numeric(10,2);not null"`
	Status       VehicleStatus   `json:"status" gorm:"type:vehicle_status;default:'AVAILABLE'"`
	CreatedAt    time.Time       `json:"created_at"`
}
