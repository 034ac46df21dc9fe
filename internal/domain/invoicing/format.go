package invoicing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// moneyPrinter agrupa miles con coma, como se imprimen los montos en RD$.
var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// MonthName devuelve el nombre del mes en español (1 = Enero). Fuera de rango devuelve el número.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", month)
	}
	return monthNames[month-1]
}

// PeriodLabel devuelve "Octubre 2026".
func PeriodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

// LineDescription es la descripción de la línea de cuota de un período.
func LineDescription(month, year int) string {
	return "Cuota de mantenimiento - " + PeriodLabel(month, year)
}

// FormatMoney formatea un monto como "$1,234.56" (redondeo a 2 decimales).
func FormatMoney(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	integer := r.Truncate(0)
	cents := r.Sub(integer).Shift(2).IntPart()
	return sign + "$" + moneyPrinter.Sprintf("%d", integer.IntPart()) + fmt.Sprintf(".%02d", cents)
}
