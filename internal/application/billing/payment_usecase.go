package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
)

// PaymentUseCase registra y consulta pagos de cuotas.
type PaymentUseCase struct {
	residents repository.ResidentRepository
	payments  repository.PaymentRepository
	fee       decimal.Decimal
	clock     invoicing.Clock
	log       zerolog.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	residents repository.ResidentRepository,
	payments repository.PaymentRepository,
	fee decimal.Decimal,
	clock invoicing.Clock,
	log zerolog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{residents: residents, payments: payments, fee: fee, clock: clock, log: log}
}

// Record registra el pago de un mes. Monto cero usa la cuota configurada; estado vacío es paid.
// Un segundo pago para el mismo (mes, año) devuelve domain.ErrDuplicate.
func (uc *PaymentUseCase) Record(ctx context.Context, residentID string, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if in.Month < 1 || in.Month > 12 || in.Year < 1 {
		return nil, fmt.Errorf("%w: período %d/%d", domain.ErrInvalidInput, in.Month, in.Year)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: el monto no puede ser negativo", domain.ErrInvalidInput)
	}
	r, err := loadResident(ctx, uc.residents, residentID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	p := &entity.Payment{
		ID:         uuid.New().String(),
		ResidentID: r.ID,
		Month:      in.Month,
		Year:       in.Year,
		Amount:     in.Amount,
		Status:     in.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if p.Amount.IsZero() {
		p.Amount = uc.fee
	}
	if p.Status == "" {
		p.Status = entity.PaymentStatusPaid
	}
	if p.Status == entity.PaymentStatusPaid {
		p.PaidAt = &now
	}
	if err := uc.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("resident_id", r.ID).
		Str("period", invoicing.PeriodLabel(p.Month, p.Year)).
		Str("status", p.Status).
		Msg("pago registrado")
	return toPaymentResponse(p), nil
}

// List devuelve los pagos de un residente.
func (uc *PaymentUseCase) List(ctx context.Context, residentID string) ([]dto.PaymentResponse, error) {
	r, err := loadResident(ctx, uc.residents, residentID)
	if err != nil {
		return nil, err
	}
	list, err := uc.payments.ListByResident(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPaymentResponse(p))
	}
	return out, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:         p.ID,
		ResidentID: p.ResidentID,
		Month:      p.Month,
		Year:       p.Year,
		Amount:     p.Amount,
		Status:     p.Status,
		InvoiceID:  p.InvoiceID,
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}
