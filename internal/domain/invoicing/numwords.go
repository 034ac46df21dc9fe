package invoicing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxWordsAmount es el primer valor entero que ya no se convierte (mil millones).
const maxWordsAmount = 1_000_000_000

var (
	unitWords = [...]string{
		"", "uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve",
	}
	teenWords = [...]string{
		"diez", "once", "doce", "trece", "catorce", "quince",
		"dieciséis", "diecisiete", "dieciocho", "diecinueve",
	}
	twentyWords = [...]string{
		"veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro",
		"veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve",
	}
	tenWords = [...]string{
		"", "", "", "treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa",
	}
	hundredWords = [...]string{
		"", "ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos",
		"seiscientos", "setecientos", "ochocientos", "novecientos",
	}
)

// AmountToWords convierte un monto no negativo a letras en español, en minúsculas.
// Los centavos se redondean a dos cifras y se agregan como "con NN/100" solo si no son cero.
// Ej: 826 → "ochocientos veintiséis", 700.50 → "setecientos con 50/100".
func AmountToWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", fmt.Errorf("%w: %s es negativo", ErrAmountOutOfRange, amount.String())
	}
	rounded := amount.Round(2)
	integer := rounded.Truncate(0)
	if integer.GreaterThanOrEqual(decimal.NewFromInt(maxWordsAmount)) {
		return "", fmt.Errorf("%w: %s supera el máximo admitido", ErrAmountOutOfRange, amount.String())
	}
	cents := rounded.Sub(integer).Shift(2).IntPart()

	words := IntegerToWords(integer.IntPart())
	if cents > 0 {
		words += fmt.Sprintf(" con %02d/100", cents)
	}
	return words, nil
}

// AmountInWordsLine compone la línea "Son: <monto en letras> <moneda>" del bloque de totales.
func AmountInWordsLine(amount decimal.Decimal, currency string) (string, error) {
	words, err := AmountToWords(amount)
	if err != nil {
		return "", err
	}
	if currency == "" {
		return "Son: " + words, nil
	}
	return "Son: " + words + " " + currency, nil
}

// IntegerToWords convierte un entero en [0, 999.999.999] a letras.
func IntegerToWords(n int64) string {
	if n == 0 {
		return "cero"
	}
	var parts []string

	if millions := n / 1_000_000; millions > 0 {
		if millions == 1 {
			parts = append(parts, "un millón")
		} else {
			parts = append(parts, apocope(hundredsToWords(millions))+" millones")
		}
	}
	if thousands := (n / 1000) % 1000; thousands > 0 {
		if thousands == 1 {
			parts = append(parts, "mil")
		} else {
			parts = append(parts, apocope(hundredsToWords(thousands))+" mil")
		}
	}
	if rest := n % 1000; rest > 0 {
		parts = append(parts, hundredsToWords(rest))
	}
	return strings.Join(parts, " ")
}

// hundredsToWords convierte un valor en [1, 999].
func hundredsToWords(n int64) string {
	if n == 100 {
		return "cien"
	}
	h, r := n/100, n%100
	switch {
	case h == 0:
		return tensToWords(r)
	case r == 0:
		return hundredWords[h]
	}
	return hundredWords[h] + " " + tensToWords(r)
}

// tensToWords convierte un valor en [1, 99].
func tensToWords(n int64) string {
	switch {
	case n < 10:
		return unitWords[n]
	case n < 20:
		return teenWords[n-10]
	case n < 30:
		return twentyWords[n-20]
	}
	t, u := n/10, n%10
	if u == 0 {
		return tenWords[t]
	}
	return tenWords[t] + " y " + unitWords[u]
}

// apocope acorta "uno" a "un" delante de "mil" y "millones" (veintiún mil, treinta y un mil).
func apocope(s string) string {
	switch {
	case strings.HasSuffix(s, "veintiuno"):
		return strings.TrimSuffix(s, "veintiuno") + "veintiún"
	case strings.HasSuffix(s, "uno"):
		return strings.TrimSuffix(s, "o")
	}
	return s
}
