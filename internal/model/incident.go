package model

import (
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentOpen     IncidentStatus = "OPEN"
	IncidentResolved IncidentStatus = "RESOLVED"
)

type Incident struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ShipmentID  uuid.UUID      `json:"shipment_id" gorm:"type:uuid;not null"`
	Description string         `json:"description" gorm:"not null"`
	Status      IncidentStatus `json:"status" gorm:"type:incident_status;default:'OPEN'"`
	CreatedAt   time.Time      `json:"created_at"`

	Shipment *Shipment `json:"shipment,omitempty" gorm:"foreignKey:ShipmentID"`
}

type ClaimType string

const (
	ClaimDamagedPackage ClaimType = "DAMAGED_PACKAGE"
	ClaimLostPackage    ClaimType = "LOST_PACKAGE"
	ClaimLateDelivery   ClaimType = "LATE_DELIVERY"
	ClaimWrongDelivery  ClaimType = "WRONG_DELIVERY"
	ClaimBillingIssue   ClaimType = "BILLING_ISSUE"
	ClaimServiceQuality ClaimType = "SERVICE_QUALITY"
)

func (t ClaimType) Valid() bool {
	switch t {
	case ClaimDamagedPackage, ClaimLostPackage, ClaimLateDelivery,
		ClaimWrongDelivery, ClaimBillingIssue, ClaimServiceQuality:
		return true
	}
	return false
}

type ClaimStatus string

const (
	ClaimPending    ClaimStatus = "PENDING"
	ClaimInProgress ClaimStatus = "IN_PROGRESS"
	ClaimResolved   ClaimStatus = "RESOLVED"
	ClaimCancelled  ClaimStatus = "CANCELLED"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimPending, ClaimInProgress, ClaimResolved, ClaimCancelled:
		return true
	}
	return false
}

// Claim can arrive through the public form, in which case there is no
// client record and only a contact email.
type Claim struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ClientID     *uuid.UUID  `json:"client_id" gorm:"type:uuid"`
	ShipmentID   *uuid.UUID  `json:"shipment_id" gorm:"type:uuid"`
	ClaimType    ClaimType   `json:"claim_type" gorm:"type:claim_type;not null"`
	Description  string      `json:"description" gorm:"not null"`
	ContactEmail string      `json:"contact_email" gorm:"size:255"`
	Status       ClaimStatus `json:"status" gorm:"type:claim_status;default:'PENDING'"`
	CreatedAt    time.Time   `json:"created_at"`

	Client   *Client   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Shipment *Shipment `json:"shipment,omitempty" gorm:"foreignKey:ShipmentID"`
}
