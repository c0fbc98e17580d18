package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingRule is the rate card for one (destination, service type) pair.
// The pair is unique: at most one rule per combination.
type PricingRule struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	DestinationID uuid.UUID       `json:"destination_id" gorm:"type:uuid;not null"`
	ServiceTypeID uuid.UUID       `json:"service_type_id" gorm:"type:uuid;not null"`
	BaseTariff    decimal.Decimal `json:"base_tariff" gorm:"type:numeric(10,2);not null"`
	WeightRate    decimal.Decimal `json:"weight_rate" gorm:"type:numeric(10,2);not null"`
	VolumeRate    decimal.Decimal `json:"volume_rate" gorm:"type:numeric(10,2);not null"`

	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
	ServiceType *ServiceType `json:"service_type,omitempty" gorm:"foreignKey:ServiceTypeID"`
}
