package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice es la cabecera persistida de una factura emitida a un residente.
type Invoice struct {
	ID            string
	ResidentID    string
	InvoiceNumber string // FAC-YYMM-NNNN
	NCF           string // Número de Comprobante Fiscal
	IssueDate     time.Time
	DueDate       time.Time
	Subtotal      decimal.Decimal
	TaxTotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	TaxRate       decimal.Decimal // ITBIS (%) con el que se calculó
	AmountInWords string
	// Resolución impresa en el pie legal al momento de emitir.
	ResolutionNumber     string
	ResolutionValidUntil *time.Time
	CreatedBy            string
	CreatedAt            time.Time
}

// InvoiceLine es una línea persistida de la factura (una por período facturado).
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	Position    int
	Month       int
	Year        int
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}
