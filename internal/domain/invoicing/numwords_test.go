package invoicing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
)

func TestAmountToWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "cero"},
		{"1", "uno"},
		{"15", "quince"},
		{"21", "veintiuno"},
		{"31", "treinta y uno"},
		{"100", "cien"},
		{"101", "ciento uno"},
		{"110", "ciento diez"},
		{"700", "setecientos"},
		{"826.00", "ochocientos veintiséis"},
		{"700.50", "setecientos con 50/100"},
		{"0.05", "cero con 05/100"},
		{"1000", "mil"},
		{"1001", "mil uno"},
		{"2500", "dos mil quinientos"},
		{"21000", "veintiún mil"},
		{"31000", "treinta y un mil"},
		{"100000", "cien mil"},
		{"101000", "ciento un mil"},
		{"9912.6", "nueve mil novecientos doce con 60/100"},
		{"1000000", "un millón"},
		{"2000001", "dos millones uno"},
		{"999999999.99", "novecientos noventa y nueve millones novecientos noventa y nueve mil novecientos noventa y nueve con 99/100"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := invoicing.AmountToWords(decimal.RequireFromString(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAmountToWords_FueraDeRango(t *testing.T) {
	_, err := invoicing.AmountToWords(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, invoicing.ErrAmountOutOfRange, "negativos no se convierten")

	_, err = invoicing.AmountToWords(decimal.NewFromInt(1_000_000_000))
	assert.ErrorIs(t, err, invoicing.ErrAmountOutOfRange)
}

func TestAmountInWordsLine(t *testing.T) {
	line, err := invoicing.AmountInWordsLine(decimal.RequireFromString("826"), "pesos dominicanos")
	require.NoError(t, err)
	assert.Equal(t, "Son: ochocientos veintiséis pesos dominicanos", line)
	assert.NotContains(t, line, "con", "sin centavos no lleva sufijo")
}
