// Package dgi contiene catálogos y validaciones de la Dirección General de
// Impuestos Internos (República Dominicana): RNC, cédula y NCF.
package dgi

import "fmt"

// Tipos de comprobante fiscal (serie B, Norma General 06-2018).
const (
	NCFCreditoFiscal   = "B01" // Factura de Crédito Fiscal
	NCFConsumo         = "B02" // Factura de Consumo
	NCFNotaDebito      = "B03" // Nota de Débito
	NCFNotaCredito     = "B04" // Nota de Crédito
	NCFRegimenEspecial = "B14" // Régimen Especial
	NCFGubernamental   = "B15" // Gubernamental
	ncfSequenceDigits  = 8
	ncfLength          = 3 + ncfSequenceDigits
	MaxNCFSequence     = 99999999
)

// NCFTypeNames descripción de cada serie admitida.
var NCFTypeNames = map[string]string{
	NCFCreditoFiscal:   "Factura de Crédito Fiscal",
	NCFConsumo:         "Factura de Consumo",
	NCFNotaDebito:      "Nota de Débito",
	NCFNotaCredito:     "Nota de Crédito",
	NCFRegimenEspecial: "Régimen Especial",
	NCFGubernamental:   "Gubernamental",
}

// ValidateSeries verifica que la serie de NCF esté en el catálogo.
func ValidateSeries(series string) error {
	if _, ok := NCFTypeNames[series]; !ok {
		return fmt.Errorf("dgi: serie de NCF desconocida %q", series)
	}
	return nil
}

// ValidateNCF verifica que el NCF sea serie conocida + 8 dígitos.
func ValidateNCF(ncf string) error {
	if len(ncf) != ncfLength {
		return fmt.Errorf("dgi: el NCF debe tener %d caracteres, se recibieron %d", ncfLength, len(ncf))
	}
	if err := ValidateSeries(ncf[:3]); err != nil {
		return err
	}
	if n := len(extractDigits(ncf[3:])); n != ncfSequenceDigits {
		return fmt.Errorf("dgi: la secuencia del NCF debe tener %d dígitos", ncfSequenceDigits)
	}
	return nil
}
