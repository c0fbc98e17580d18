package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalRow is one line of the shipments journal export.
type JournalRow struct {
	TrackingNumber  string
	ClientName      string
	DestinationName string
	ServiceTypeName string
	Weight          decimal.Decimal
	Volume          decimal.Decimal
	CalculatedCost  decimal.NullDecimal
	Status          ShipmentStatus
	CreatedAt       time.Time
}

// ShipmentJournal is the full export payload with its period bounds.
type ShipmentJournal struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Rows        []JournalRow
}
