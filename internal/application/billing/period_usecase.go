package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
)

// PeriodUseCase arma la ventana de períodos facturables de un residente.
type PeriodUseCase struct {
	residents repository.ResidentRepository
	payments  repository.PaymentRepository
	fee       decimal.Decimal
	clock     invoicing.Clock
}

// NewPeriodUseCase construye el caso de uso con la cuota mensual y el reloj de negocio.
func NewPeriodUseCase(
	residents repository.ResidentRepository,
	payments repository.PaymentRepository,
	fee decimal.Decimal,
	clock invoicing.Clock,
) *PeriodUseCase {
	return &PeriodUseCase{residents: residents, payments: payments, fee: fee, clock: clock}
}

// Window carga al residente y sus pagos y resuelve la ventana de períodos a la fecha del reloj.
func (uc *PeriodUseCase) Window(ctx context.Context, residentID string) (*entity.Resident, invoicing.PeriodWindow, error) {
	r, err := loadResident(ctx, uc.residents, residentID)
	if err != nil {
		return nil, invoicing.PeriodWindow{}, err
	}
	payments, err := uc.payments.ListByResident(ctx, r.ID)
	if err != nil {
		return nil, invoicing.PeriodWindow{}, fmt.Errorf("listar pagos: %w", err)
	}
	return r, invoicing.ResolvePeriods(uc.clock.Now(), settledPeriods(payments), uc.fee), nil
}

// Periods devuelve historial, pendientes y preselección de un residente.
func (uc *PeriodUseCase) Periods(ctx context.Context, residentID string) (*dto.PeriodsResponse, error) {
	r, w, err := uc.Window(ctx, residentID)
	if err != nil {
		return nil, err
	}
	return &dto.PeriodsResponse{
		ResidentID: r.ID,
		History:    toPeriodResponses(w.History),
		Available:  toPeriodResponses(w.Available),
		Selected:   toPeriodResponses(w.Selected),
	}, nil
}

// settledPeriods filtra los pagos que saldan un período (solo estado paid).
func settledPeriods(payments []*entity.Payment) []invoicing.SettledPeriod {
	out := make([]invoicing.SettledPeriod, 0, len(payments))
	for _, p := range payments {
		if p.Status != entity.PaymentStatusPaid {
			continue
		}
		out = append(out, invoicing.SettledPeriod{
			PeriodKey: invoicing.PeriodKey{Month: p.Month, Year: p.Year},
			Amount:    p.Amount,
		})
	}
	return out
}

func toPeriodResponses(periods []invoicing.BillingPeriod) []dto.PeriodResponse {
	out := make([]dto.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, dto.PeriodResponse{
			Month:         p.Month,
			Year:          p.Year,
			Label:         invoicing.PeriodLabel(p.Month, p.Year),
			Amount:        p.Amount,
			Status:        p.Status,
			DueDate:       p.DueDate.Format("2006-01-02"),
			DaysOverdue:   p.DaysOverdue,
			DaysRemaining: p.DaysRemaining,
		})
	}
	return out
}
