// Package invoicing contiene el núcleo de facturación de cuotas mensuales:
// resolución de períodos, identificadores fiscales, cálculo de la factura DGI
// y conversión de montos a letras. No hace I/O; "ahora" siempre se recibe
// como parámetro.
package invoicing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un período de facturación.
const (
	PeriodPaid    = "paid"
	PeriodPending = "pending"
	PeriodOverdue = "overdue"
)

// Ventana de períodos alrededor del mes actual: 6 hacia atrás (incluido el
// actual) y 6 hacia adelante.
const (
	windowPastMonths   = 5
	windowFutureMonths = 6
	dueDay             = 30
)

// PeriodKey identifica un mes de facturación.
type PeriodKey struct {
	Month int
	Year  int
}

// SettledPeriod es un período ya pagado según los registros de pago.
// Amount puede ser cero si el registro no trae monto.
type SettledPeriod struct {
	PeriodKey
	Amount decimal.Decimal
}

// BillingPeriod es la cuota de un mes para una cuenta.
type BillingPeriod struct {
	Month         int
	Year          int
	Amount        decimal.Decimal
	Status        string
	DueDate       time.Time
	DaysOverdue   int
	DaysRemaining int
}

// Key devuelve el identificador (mes, año) del período.
func (p BillingPeriod) Key() PeriodKey {
	return PeriodKey{Month: p.Month, Year: p.Year}
}

// PeriodWindow es el resultado del resolvedor: historial pagado, períodos
// disponibles para facturar y la preselección (todos los vencidos).
type PeriodWindow struct {
	History   []BillingPeriod
	Available []BillingPeriod
	Selected  []BillingPeriod
}

// Find busca un período de la ventana por su clave.
func (w PeriodWindow) Find(key PeriodKey) (BillingPeriod, bool) {
	for _, list := range [][]BillingPeriod{w.History, w.Available} {
		for _, p := range list {
			if p.Key() == key {
				return p, true
			}
		}
	}
	return BillingPeriod{}, false
}

// DueDateFor devuelve la fecha de vencimiento del período: día 30 del mes.
// En meses de menos de 30 días la fecha se normaliza al mes siguiente
// (febrero 30 → 2 de marzo, o 1 de marzo en bisiesto).
func DueDateFor(month, year int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(month), dueDay, 0, 0, 0, 0, loc)
}

// ResolvePeriods sintetiza la ventana de 12 meses alrededor de now y clasifica
// cada período como pagado, pendiente o vencido. fee es la cuota fija por mes.
func ResolvePeriods(now time.Time, settled []SettledPeriod, fee decimal.Decimal) PeriodWindow {
	paid := make(map[PeriodKey]decimal.Decimal, len(settled))
	for _, s := range settled {
		paid[s.PeriodKey] = s.Amount
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var w PeriodWindow
	for i := -windowPastMonths; i <= windowFutureMonths; i++ {
		start := monthStart.AddDate(0, i, 0)
		p := BillingPeriod{
			Month:   int(start.Month()),
			Year:    start.Year(),
			Amount:  fee,
			DueDate: DueDateFor(int(start.Month()), start.Year(), now.Location()),
		}

		if amount, ok := paid[p.Key()]; ok {
			p.Status = PeriodPaid
			if !amount.IsZero() {
				p.Amount = amount
			}
			w.History = append(w.History, p)
			continue
		}

		if now.After(p.DueDate) {
			p.Status = PeriodOverdue
			p.DaysOverdue = wholeDays(now.Sub(p.DueDate))
			w.Available = append(w.Available, p)
			w.Selected = append(w.Selected, p)
			continue
		}
		p.Status = PeriodPending
		p.DaysRemaining = wholeDays(p.DueDate.Sub(now))
		w.Available = append(w.Available, p)
	}
	return w
}

func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
