package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago registrado. Solo PaymentStatusPaid salda un período.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusVoided  = "voided"
)

// Payment es el registro de pago de la cuota de un mes para un residente.
// Único por (ResidentID, Month, Year).
type Payment struct {
	ID         string
	ResidentID string
	Month      int
	Year       int
	Amount     decimal.Decimal
	Status     string
	InvoiceID  string // vacío si el pago no salió de una factura generada aquí
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
