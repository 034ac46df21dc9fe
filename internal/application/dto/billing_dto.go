package dto

import "github.com/shopspring/decimal"

// PaymentRequest body para POST /api/residents/:id/payments.
// Amount en cero usa la cuota mensual configurada.
type PaymentRequest struct {
	Month  int             `json:"month" validate:"required,min=1,max=12"`
	Year   int             `json:"year" validate:"required,min=2000,max=2100"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status,omitempty" validate:"omitempty,oneof=paid pending voided"`
}

// PaymentResponse pago registrado.
type PaymentResponse struct {
	ID         string          `json:"id"`
	ResidentID string          `json:"resident_id"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	InvoiceID  string          `json:"invoice_id,omitempty"`
	PaidAt     string          `json:"paid_at,omitempty"`
}

// PeriodResponse un período de la ventana de facturación.
type PeriodResponse struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	Label         string          `json:"label"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"` // paid | pending | overdue
	DueDate       string          `json:"due_date"`
	DaysOverdue   int             `json:"days_overdue,omitempty"`
	DaysRemaining int             `json:"days_remaining,omitempty"`
}

// PeriodsResponse respuesta de GET /api/residents/:id/periods.
// Selected es la preselección por defecto para facturar (todos los vencidos).
type PeriodsResponse struct {
	ResidentID string           `json:"resident_id"`
	History    []PeriodResponse `json:"history"`
	Available  []PeriodResponse `json:"available"`
	Selected   []PeriodResponse `json:"selected"`
}

// PeriodRef identifica un período a facturar.
type PeriodRef struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2000,max=2100"`
}

// IssueInvoiceRequest body para POST /api/residents/:id/invoices.
// Periods vacío factura la preselección (períodos vencidos).
// RegisterPayments marca como pagados los períodos facturados.
type IssueInvoiceRequest struct {
	Periods          []PeriodRef `json:"periods" validate:"dive"`
	RegisterPayments bool        `json:"register_payments"`
}

// InvoiceLineResponse línea de la factura.
type InvoiceLineResponse struct {
	Index       int             `json:"index"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse factura emitida. DataURL solo viene al emitir con format=json.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	ResidentID    string                `json:"resident_id"`
	ResidentName  string                `json:"resident_name,omitempty"`
	InvoiceNumber string                `json:"invoice_number"`
	NCF           string                `json:"ncf"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	Tax           decimal.Decimal       `json:"tax"`
	Discount      decimal.Decimal       `json:"discount"`
	Total         decimal.Decimal       `json:"total"`
	AmountInWords string                `json:"amount_in_words"`
	Lines         []InvoiceLineResponse `json:"lines"`
	Filename      string                `json:"filename,omitempty"`
	DataURL       string                `json:"data_url,omitempty"`
}
