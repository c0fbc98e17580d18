package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "UNPAID"
	InvoicePartial InvoiceStatus = "PARTIAL"
	InvoicePaid    InvoiceStatus = "PAID"
)

type Invoice struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ClientID uuid.UUID `json:"client_id" gorm:"type:uuid;not null"`
	Date     time.Time `json:"date" gorm:"type:date"`

	AmountHT   decimal.Decimal `json:"amount_ht" gorm:"type:numeric(12,2)"`
	TVA        decimal.Decimal `json:"tva" gorm:"type:numeric(12,2)"`
	AmountTTC  decimal.Decimal `json:"amount_ttc" gorm:"type:numeric(12,2)"`
	PaidAmount decimal.Decimal `json:"paid_amount" gorm:"type:numeric(12,2)"`

	Status    InvoiceStatus `json:"status" gorm:"type:invoice_status;default:'UNPAID'"`
	CreatedAt time.Time     `json:"created_at"`

	Client    *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Shipments []Shipment `json:"shipments,omitempty" gorm:"many2many:invoice_shipments"`
}

func (i Invoice) RemainingBalance() decimal.Decimal {
	return i.AmountTTC.Sub(i.PaidAmount)
}
