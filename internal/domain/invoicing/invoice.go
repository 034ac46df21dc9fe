package invoicing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate es la tasa de ITBIS (porcentaje) aplicada a cada línea.
var DefaultTaxRate = decimal.NewFromInt(18)

// paymentTermDays es el plazo fijo entre emisión y vencimiento de la factura.
const paymentTermDays = 30

// CompanyProfile es la identidad fiscal del emisor.
type CompanyProfile struct {
	Name    string
	TaxID   string // RNC
	Address string
	Phone   string
	Email   string
	Website string
}

// RecipientProfile es la parte facturada.
type RecipientProfile struct {
	ID                 string
	FirstName          string
	LastName           string
	NationalID         string
	RegistrationNumber string
	Phone              string
	Address            string
}

// FullName devuelve nombre y apellido.
func (r RecipientProfile) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// LegalInfo alimenta el pie legal: resolución de autorización y URL de verificación del QR.
type LegalInfo struct {
	ResolutionNumber string
	ValidUntil       time.Time
	VerificationURL  string // base de la URL de consulta; vacío = sin QR
}

// InvoiceInput es la solicitud de generación de una factura.
type InvoiceInput struct {
	Company       CompanyProfile
	Recipient     RecipientProfile
	Periods       []BillingPeriod
	InvoiceNumber string
	NCF           string
	IssueDate     time.Time
	TaxRate       decimal.Decimal // porcentaje; cero usa DefaultTaxRate
	Currency      string          // nombre de la moneda para el monto en letras
	Legal         LegalInfo
}

// InvoiceLine es una fila de la tabla de detalle.
type InvoiceLine struct {
	Index       int
	Month       int
	Year        int
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// Invoice es el documento fiscal ya calculado, listo para maquetar.
type Invoice struct {
	Company       CompanyProfile
	Recipient     RecipientProfile
	InvoiceNumber string
	NCF           string
	IssueDate     time.Time
	DueDate       time.Time
	TaxRate       decimal.Decimal
	Lines         []InvoiceLine
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	AmountInWords string
	Currency      string
	Legal         LegalInfo
}

// BuildInvoice valida la entrada y calcula líneas y totales.
// Cada línea paga ITBIS sobre su subtotal; el total es subtotal + impuesto.
// El impuesto no se redondea aquí: el redondeo a 2 decimales es solo de presentación.
func BuildInvoice(in InvoiceInput) (*Invoice, error) {
	if len(in.Periods) == 0 {
		return nil, fmt.Errorf("%w: la factura debe tener al menos un período", ErrInvalidInvoiceInput)
	}
	rate := in.TaxRate
	if rate.IsZero() {
		rate = DefaultTaxRate
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("%w: tasa de impuesto negativa", ErrInvalidInvoiceInput)
	}
	fraction := rate.Div(decimal.NewFromInt(100))

	inv := &Invoice{
		Company:       in.Company,
		Recipient:     in.Recipient,
		InvoiceNumber: in.InvoiceNumber,
		NCF:           in.NCF,
		IssueDate:     in.IssueDate,
		DueDate:       in.IssueDate.AddDate(0, 0, paymentTermDays),
		TaxRate:       rate,
		Lines:         make([]InvoiceLine, 0, len(in.Periods)),
		Discount:      decimal.Zero,
		Currency:      in.Currency,
		Legal:         in.Legal,
	}

	one := decimal.NewFromInt(1)
	for i, p := range in.Periods {
		if p.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: monto negativo en %s", ErrInvalidInvoiceInput, PeriodLabel(p.Month, p.Year))
		}
		subtotal := p.Amount.Mul(one)
		tax := subtotal.Mul(fraction)
		inv.Lines = append(inv.Lines, InvoiceLine{
			Index:       i + 1,
			Month:       p.Month,
			Year:        p.Year,
			Description: LineDescription(p.Month, p.Year),
			Quantity:    one,
			UnitPrice:   p.Amount,
			Subtotal:    subtotal,
			Tax:         tax,
			Total:       subtotal.Add(tax),
		})
		inv.Subtotal = inv.Subtotal.Add(subtotal)
		inv.Tax = inv.Tax.Add(tax)
	}
	inv.Total = inv.Subtotal.Add(inv.Tax).Sub(inv.Discount)

	words, err := AmountInWordsLine(inv.Total, in.Currency)
	if err != nil {
		return nil, fmt.Errorf("monto en letras: %w", err)
	}
	inv.AmountInWords = words
	return inv, nil
}

// LegalFooter devuelve los párrafos fijos del pie legal.
func (inv *Invoice) LegalFooter() []string {
	validity := "vigencia indefinida"
	if !inv.Legal.ValidUntil.IsZero() {
		validity = "válida hasta el " + inv.Legal.ValidUntil.Format("02/01/2006")
	}
	return []string{
		fmt.Sprintf("Condiciones de pago: esta factura vence el %s (%d días a partir de su emisión).",
			inv.DueDate.Format("02/01/2006"), paymentTermDays),
		"Los pagos realizados después de la fecha de vencimiento generan un recargo por mora " +
			"según el contrato del plan.",
		fmt.Sprintf("Comprobante autorizado por la DGII mediante Resolución No. %s, %s.",
			inv.Legal.ResolutionNumber, validity),
		"Este documento es válido como comprobante fiscal. Conserve este documento como soporte.",
	}
}

// VerificationData devuelve la URL que codifica el QR de verificación, o vacío si no hay base configurada.
func (inv *Invoice) VerificationData() string {
	if inv.Legal.VerificationURL == "" {
		return ""
	}
	sep := "?"
	if strings.Contains(inv.Legal.VerificationURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%srnc=%s&ncf=%s", inv.Legal.VerificationURL, sep,
		onlyDigits(inv.Company.TaxID), inv.NCF)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
