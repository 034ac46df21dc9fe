package invoicing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
)

func scenarioInput(periods ...invoicing.BillingPeriod) invoicing.InvoiceInput {
	return invoicing.InvoiceInput{
		Company: invoicing.CompanyProfile{
			Name:    "Residencial Las Palmas",
			TaxID:   "1-31-12345-6",
			Address: "Av. Independencia 45, Santo Domingo",
			Phone:   "809-555-0100",
		},
		Recipient: invoicing.RecipientProfile{
			ID:         "r-1",
			FirstName:  "Juan",
			LastName:   "Pérez",
			NationalID: "001-1234567-8",
		},
		Periods:       periods,
		InvoiceNumber: "FAC-2610-0001",
		NCF:           "B0100000001",
		IssueDate:     date(2026, time.October, 15, 9),
		Currency:      "pesos dominicanos",
		Legal: invoicing.LegalInfo{
			ResolutionNumber: "06-2018",
			ValidUntil:       date(2026, time.December, 31, 0),
			VerificationURL:  "https://dgii.gov.do/verifica",
		},
	}
}

func period(month, year int, amount string) invoicing.BillingPeriod {
	return invoicing.BillingPeriod{
		Month:  month,
		Year:   year,
		Amount: decimal.RequireFromString(amount),
		Status: invoicing.PeriodPending,
	}
}

// TestBuildInvoice_EscenarioJuanPerez: una cuota de 700 → ITBIS 126, total 826.
func TestBuildInvoice_EscenarioJuanPerez(t *testing.T) {
	inv, err := invoicing.BuildInvoice(scenarioInput(period(10, 2026, "700.00")))
	require.NoError(t, err)

	require.Len(t, inv.Lines, 1)
	line := inv.Lines[0]
	assert.Equal(t, 1, line.Index)
	assert.Equal(t, "Cuota de mantenimiento - Octubre 2026", line.Description)
	assert.True(t, decimal.NewFromInt(1).Equal(line.Quantity))
	assert.Equal(t, "$700.00", invoicing.FormatMoney(line.Subtotal))
	assert.Equal(t, "$126.00", invoicing.FormatMoney(line.Tax))
	assert.Equal(t, "$826.00", invoicing.FormatMoney(line.Total))

	assert.Equal(t, "$700.00", invoicing.FormatMoney(inv.Subtotal))
	assert.Equal(t, "$126.00", invoicing.FormatMoney(inv.Tax))
	assert.Equal(t, "$0.00", invoicing.FormatMoney(inv.Discount))
	assert.Equal(t, "$826.00", invoicing.FormatMoney(inv.Total))
	assert.Contains(t, inv.AmountInWords, "ochocientos veintiséis")
	assert.Equal(t, "Juan Pérez", inv.Recipient.FullName())
	assert.Equal(t, date(2026, time.November, 14, 9), inv.DueDate, "vencimiento = emisión + 30 días")
}

// TestBuildInvoice_ImpuestoExacto: la suma de impuestos es exactamente 18% de la suma de subtotales.
func TestBuildInvoice_ImpuestoExacto(t *testing.T) {
	inv, err := invoicing.BuildInvoice(scenarioInput(
		period(7, 2026, "700.00"),
		period(8, 2026, "333.33"),
		period(9, 2026, "0.01"),
		period(10, 2026, "1250.75"),
	))
	require.NoError(t, err)

	var sumSubtotal, sumTax decimal.Decimal
	for _, l := range inv.Lines {
		sumSubtotal = sumSubtotal.Add(l.Subtotal)
		sumTax = sumTax.Add(l.Tax)
		assert.True(t, l.Total.Equal(l.Subtotal.Add(l.Tax)))
	}
	assert.True(t, sumSubtotal.Equal(inv.Subtotal))
	assert.True(t, sumTax.Equal(inv.Tax))
	assert.True(t, sumTax.Equal(sumSubtotal.Mul(decimal.RequireFromString("0.18"))),
		"impuesto %s != 18%% de %s", sumTax, sumSubtotal)
	assert.True(t, inv.Total.Equal(sumSubtotal.Add(sumTax)))
}

func TestBuildInvoice_SinLineas(t *testing.T) {
	_, err := invoicing.BuildInvoice(scenarioInput())
	assert.ErrorIs(t, err, invoicing.ErrInvalidInvoiceInput)
}

func TestBuildInvoice_MontoNegativo(t *testing.T) {
	_, err := invoicing.BuildInvoice(scenarioInput(period(10, 2026, "-1")))
	assert.ErrorIs(t, err, invoicing.ErrInvalidInvoiceInput)
}

func TestBuildInvoice_TasaPersonalizada(t *testing.T) {
	in := scenarioInput(period(10, 2026, "1000"))
	in.TaxRate = decimal.NewFromInt(16)
	inv, err := invoicing.BuildInvoice(in)
	require.NoError(t, err)
	assert.Equal(t, "$160.00", invoicing.FormatMoney(inv.Tax))
}

func TestInvoice_PieLegalYVerificacion(t *testing.T) {
	inv, err := invoicing.BuildInvoice(scenarioInput(period(10, 2026, "700")))
	require.NoError(t, err)

	footer := inv.LegalFooter()
	require.Len(t, footer, 4)
	assert.Contains(t, footer[0], "14/11/2026")
	assert.Contains(t, footer[2], "06-2018")
	assert.Contains(t, footer[2], "31/12/2026")

	assert.Equal(t, "https://dgii.gov.do/verifica?rnc=131123456&ncf=B0100000001", inv.VerificationData())

	inv.Legal.VerificationURL = ""
	assert.Empty(t, inv.VerificationData())
}
