package billing

import (
	"context"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
)

// InvoicePDFGenerator es el puerto de salida para maquetar la factura DGI en PDF.
// La implementación concreta vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *invoicing.Invoice) ([]byte, error)
}

// InvoiceTxRunner ejecuta fn dentro de una transacción con los repos de facturación.
// Si fn devuelve error se hace rollback: la secuencia fiscal reservada vuelve a quedar libre.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
		sequenceRepo repository.FiscalSequenceRepository,
	) error) error
}
