package model

import (
	"time"

	"github.com/google/uuid"
)

type Tour struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	DriverID  uuid.UUID `json:"driver_id" gorm:"type:uuid;not null"`
	VehicleID uuid.UUID `json:"vehicle_id" gorm:"type:uuid;not null"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	CreatedAt time.Time `json:"created_at"`

	Driver    *Driver    `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Vehicle   *Vehicle   `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Shipments []Shipment `json:"shipments,omitempty" gorm:"many2many:tour_shipments"`
}
