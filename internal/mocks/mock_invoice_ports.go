package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
)

// MockPDFGenerator implementa billing.InvoicePDFGenerator.
type MockPDFGenerator struct {
	mock.Mock
}

func (m *MockPDFGenerator) GenerateInvoicePDF(ctx context.Context, inv *invoicing.Invoice) ([]byte, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// TxRunner implementa billing.InvoiceTxRunner sin transacción real: ejecuta fn con los repos dados.
type TxRunner struct {
	Invoices  repository.InvoiceRepository
	Payments  repository.PaymentRepository
	Sequences repository.FiscalSequenceRepository
}

func (r *TxRunner) RunInvoice(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	sequenceRepo repository.FiscalSequenceRepository,
) error) error {
	return fn(r.Invoices, r.Payments, r.Sequences)
}
