package invoicing_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
)

var (
	reInvoiceNumber = regexp.MustCompile(`^FAC-\d{4}-\d{4}$`)
	reNCF           = regexp.MustCompile(`^B01\d{8}$`)
)

func fixedClock(t time.Time) invoicing.Clock {
	return invoicing.ClockFunc(func() time.Time { return t })
}

func counter(start int64) invoicing.Sequence {
	n := start
	return invoicing.SequenceFunc(func(context.Context) (int64, error) {
		v := n
		n++
		return v, nil
	})
}

func TestIdentifierGenerator_Deterministico(t *testing.T) {
	gen := invoicing.NewIdentifierGenerator(
		fixedClock(date(2026, time.March, 5, 9)), counter(42), counter(7), "")

	num, err := gen.InvoiceNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FAC-2603-0042", num)

	ncf, err := gen.NCF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B0100000007", ncf)

	ncf, err = gen.NCF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "B0100000008", ncf, "la secuencia avanza en cada llamada")
}

// TestIdentifierGenerator_FormatoAleatorio: con secuencias aleatorias el formato siempre se respeta.
func TestIdentifierGenerator_FormatoAleatorio(t *testing.T) {
	gen := invoicing.NewIdentifierGenerator(
		invoicing.SystemClock(nil),
		invoicing.NewRandomSequence(9999),
		invoicing.NewRandomSequence(99999999),
		invoicing.DefaultNCFSeries,
	)
	for i := 0; i < 200; i++ {
		num, err := gen.InvoiceNumber(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, reInvoiceNumber, num)

		ncf, err := gen.NCF(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, reNCF, ncf)
	}
}

func TestIdentifierGenerator_NCFFueraDeRango(t *testing.T) {
	gen := invoicing.NewIdentifierGenerator(fixedClock(time.Now()), counter(0), counter(100_000_000), "")
	_, err := gen.NCF(context.Background())
	assert.ErrorIs(t, err, invoicing.ErrSequenceExhausted)
}

func TestIdentifierGenerator_PropagaErrorDeSecuencia(t *testing.T) {
	boom := errors.New("db caída")
	failing := invoicing.SequenceFunc(func(context.Context) (int64, error) { return 0, boom })
	gen := invoicing.NewIdentifierGenerator(fixedClock(time.Now()), failing, failing, "")

	_, err := gen.InvoiceNumber(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = gen.NCFWith(context.Background(), failing, "B02")
	assert.ErrorIs(t, err, boom)
}

func TestIdentifierGenerator_NCFWithSerie(t *testing.T) {
	gen := invoicing.NewIdentifierGenerator(fixedClock(time.Now()), counter(0), counter(0), "")
	ncf, err := gen.NCFWith(context.Background(), counter(15), "B02")
	require.NoError(t, err)
	assert.Equal(t, "B0200000015", ncf)
}
