package billing_test

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/mocks"
)

// 15 de octubre de 2026: mayo a septiembre vencidos, octubre pendiente.
var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

var fee = decimal.NewFromInt(700)

func fixedClock() invoicing.Clock {
	return invoicing.ClockFunc(func() time.Time { return testNow })
}

func fixedSequence(n int64) invoicing.Sequence {
	return invoicing.SequenceFunc(func(context.Context) (int64, error) { return n, nil })
}

func testResident() *entity.Resident {
	return &entity.Resident{
		ID:         "res-1",
		FirstName:  "Juan",
		LastName:   "Pérez",
		NationalID: "001-1234567-3",
		Status:     entity.ResidentStatusActive,
	}
}

func testCompany() *entity.CompanySettings {
	return &entity.CompanySettings{
		Name:    "Residencial Las Palmas",
		TaxID:   "131123457",
		Address: "Av. Principal #1, Santo Domingo",
		Phone:   "809-555-0000",
	}
}

type fixture struct {
	residents *mocks.MockResidentRepo
	payments  *mocks.MockPaymentRepo
	invoices  *mocks.MockInvoiceRepo
	settings  *mocks.MockSettingsRepo
	sequences *mocks.MockSequenceRepo
	pdf       *mocks.MockPDFGenerator
	uc        *billing.InvoiceUseCase
}

func newFixture() *fixture {
	return newFixtureAt(testNow)
}

// newFixtureAt arma el caso de uso con el reloj detenido en now.
func newFixtureAt(now time.Time) *fixture {
	f := &fixture{
		residents: new(mocks.MockResidentRepo),
		payments:  new(mocks.MockPaymentRepo),
		invoices:  new(mocks.MockInvoiceRepo),
		settings:  new(mocks.MockSettingsRepo),
		sequences: new(mocks.MockSequenceRepo),
		pdf:       new(mocks.MockPDFGenerator),
	}
	clock := invoicing.ClockFunc(func() time.Time { return now })
	periods := billing.NewPeriodUseCase(f.residents, f.payments, fee, clock)
	ids := invoicing.NewIdentifierGenerator(clock, fixedSequence(42), fixedSequence(7), "B01")
	tx := &mocks.TxRunner{Invoices: f.invoices, Payments: f.payments, Sequences: f.sequences}
	f.uc = billing.NewInvoiceUseCase(periods, f.residents, f.invoices, f.settings, tx, f.pdf, ids, clock,
		billing.InvoiceConfig{
			TaxRate:  decimal.NewFromInt(18),
			Currency: "pesos dominicanos",
			DefaultLegal: invoicing.LegalInfo{
				ResolutionNumber: "DGII-DEFAULT",
				VerificationURL:  "https://dgii.gov.do/verifica",
			},
		},
		zerolog.Nop(),
	)
	return f
}
