package postgres

import (
	"context"
	"fmt"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create inserta un pago. Devuelve domain.ErrDuplicate si el período ya tiene registro.
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, resident_id, month, year, amount, status, invoice_id, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ResidentID, p.Month, p.Year, p.Amount, p.Status,
		nullIfEmpty(p.InvoiceID), p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: ya existe un pago para %02d/%d", domain.ErrDuplicate, p.Month, p.Year)
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// Settle inserta el pago o convierte en pagado un registro pending/voided del mismo período.
func (r *PaymentRepo) Settle(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, resident_id, month, year, amount, status, invoice_id, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (resident_id, month, year) DO UPDATE
		SET amount = EXCLUDED.amount, status = EXCLUDED.status, invoice_id = EXCLUDED.invoice_id,
		    paid_at = EXCLUDED.paid_at, updated_at = EXCLUDED.updated_at
		WHERE payments.status <> 'paid'`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.ResidentID, p.Month, p.Year, p.Amount, p.Status,
		nullIfEmpty(p.InvoiceID), p.PaidAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("settle payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: el período %02d/%d ya está pagado", domain.ErrConflict, p.Month, p.Year)
	}
	return nil
}

// ListByResident devuelve los pagos del residente en orden cronológico.
func (r *PaymentRepo) ListByResident(ctx context.Context, residentID string) ([]*entity.Payment, error) {
	query := `
		SELECT id, resident_id, month, year, amount, status, invoice_id, paid_at, created_at, updated_at
		FROM payments
		WHERE resident_id = $1
		ORDER BY year, month`
	rows, err := r.q.Query(ctx, query, residentID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		var (
			p         entity.Payment
			invoiceID *string
		)
		if err := rows.Scan(
			&p.ID, &p.ResidentID, &p.Month, &p.Year, &p.Amount, &p.Status,
			&invoiceID, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.InvoiceID = derefString(invoiceID)
		list = append(list, &p)
	}
	return list, rows.Err()
}
