package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentStatus string

const (
	ShipmentPending        ShipmentStatus = "PENDING"
	ShipmentInTransit      ShipmentStatus = "IN_TRANSIT"
	ShipmentSortingCenter  ShipmentStatus = "SORTING_CENTER"
	ShipmentOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	ShipmentDelivered      ShipmentStatus = "DELIVERED"
	ShipmentDeliveryFailed ShipmentStatus = "DELIVERY_FAILED"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentPending, ShipmentInTransit, ShipmentSortingCenter,
		ShipmentOutForDelivery, ShipmentDelivered, ShipmentDeliveryFailed:
		return true
	}
	return false
}

type Shipment struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	TrackingNumber string          `json:"tracking_number" gorm:"uniqueIndex;size:50;not null"`
	ClientID       uuid.UUID       `json:"client_id" gorm:"type:uuid;not null"`
	DestinationID  uuid.UUID       `json:"destination_id" gorm:"type:uuid;not null"`
	ServiceTypeID  uuid.UUID       `json:"service_type_id" gorm:"type:uuid;not null"`
	Weight         decimal.Decimal `json:"weight" gorm:"type:numeric(10,2);not null"`
	Volume         decimal.Decimal `json:"volume" gorm:"type:numeric(10,2);not null"`
	Description    string          `json:"description"`

	IsInternational          bool            `json:"is_international"`
	RequiresCustomsClearance bool            `json:"requires_customs_clearance"`
	CustomsValue             decimal.Decimal `json:"customs_value" gorm:"type:numeric(12,2)"`

	// CalculatedCost is cached on the record; null until a rate lookup
	// has been performed at least once.
	CalculatedCost decimal.NullDecimal `json:"calculated_cost" gorm:"type:numeric(10,2)"`

	Status    ShipmentStatus `json:"status" gorm:"type:shipment_status;default:'PENDING'"`
	CreatedAt time.Time      `json:"created_at"`

	Client        *Client                 `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Destination   *Destination            `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	ServiceType   *ServiceType            `json:"service_type,omitempty" gorm:"foreignKey:ServiceTypeID"`
	StatusHistory []ShipmentStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:ShipmentID"`
}

// ShipmentStatusHistory rows are append-only: one entry per actual
// status change, never mutated or deleted.
type ShipmentStatusHistory struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ShipmentID uuid.UUID      `json:"shipment_id" gorm:"type:uuid;not null"`
	Status     ShipmentStatus `json:"status" gorm:"type:shipment_status;not null"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (ShipmentStatusHistory) TableName() string { return "shipment_status_history" }
