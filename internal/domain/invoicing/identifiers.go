package invoicing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Límites de los identificadores: NNNN en FAC-YYMM-NNNN y las 8 cifras del NCF.
const (
	maxInvoiceSeq = 9999
	maxNCFSeq     = 99999999

	DefaultNCFSeries = "B01"
)

// Clock abstrae la hora actual.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapta una función a Clock.
type ClockFunc func() time.Time

// Now implementa Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock devuelve la hora del sistema en la zona indicada (nil = local).
func SystemClock(loc *time.Location) Clock {
	return ClockFunc(func() time.Time {
		if loc == nil {
			return time.Now()
		}
		return time.Now().In(loc)
	})
}

// Sequence entrega el siguiente valor numérico de un identificador.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// SequenceFunc adapta una función a Sequence.
type SequenceFunc func(ctx context.Context) (int64, error)

// Next implementa Sequence.
func (f SequenceFunc) Next(ctx context.Context) (int64, error) { return f(ctx) }

// RandomSequence genera valores aleatorios en [0, max]. No garantiza unicidad.
type RandomSequence struct {
	max int64
}

// NewRandomSequence construye una secuencia aleatoria acotada por max (inclusive).
func NewRandomSequence(max int64) *RandomSequence {
	return &RandomSequence{max: max}
}

// Next implementa Sequence.
func (s *RandomSequence) Next(_ context.Context) (int64, error) {
	return rand.Int64N(s.max + 1), nil
}

// IdentifierGenerator produce el número interno de factura y el NCF.
type IdentifierGenerator struct {
	clock      Clock
	invoiceSeq Sequence
	ncfSeq     Sequence
	series     string
}

// NewIdentifierGenerator construye el generador. series vacío usa B01.
func NewIdentifierGenerator(clock Clock, invoiceSeq, ncfSeq Sequence, series string) *IdentifierGenerator {
	if series == "" {
		series = DefaultNCFSeries
	}
	return &IdentifierGenerator{clock: clock, invoiceSeq: invoiceSeq, ncfSeq: ncfSeq, series: series}
}

// InvoiceNumber devuelve FAC-YYMM-NNNN con año y mes del reloj inyectado.
func (g *IdentifierGenerator) InvoiceNumber(ctx context.Context) (string, error) {
	n, err := g.invoiceSeq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("número de factura: %w", err)
	}
	if n < 0 {
		return "", fmt.Errorf("número de factura: secuencia negativa %d", n)
	}
	now := g.clock.Now()
	return fmt.Sprintf("FAC-%02d%02d-%04d", now.Year()%100, int(now.Month()), n%(maxInvoiceSeq+1)), nil
}

// NCF devuelve la serie seguida de 8 dígitos (ej: B0100000042).
func (g *IdentifierGenerator) NCF(ctx context.Context) (string, error) {
	return g.NCFWith(ctx, g.ncfSeq, g.series)
}

// NCFWith genera un NCF usando una secuencia y serie distintas a las por defecto
// (por ejemplo, la secuencia respaldada por la configuración fiscal).
func (g *IdentifierGenerator) NCFWith(ctx context.Context, seq Sequence, series string) (string, error) {
	if series == "" {
		series = g.series
	}
	n, err := seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("ncf: %w", err)
	}
	if n < 0 || n > maxNCFSeq {
		return "", fmt.Errorf("ncf: %w: %d", ErrSequenceExhausted, n)
	}
	return fmt.Sprintf("%s%08d", series, n), nil
}
