package repository

import (
	"context"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para los pagos de cuotas.
type PaymentRepository interface {
	// Create devuelve domain.ErrDuplicate si ya existe un pago para (residente, mes, año).
	Create(ctx context.Context, payment *entity.Payment) error
	// Settle marca el período como pagado: inserta el pago o actualiza un registro pending/voided.
	// Devuelve domain.ErrConflict si el período ya estaba pagado.
	Settle(ctx context.Context, payment *entity.Payment) error
	ListByResident(ctx context.Context, residentID string) ([]*entity.Payment, error)
}
