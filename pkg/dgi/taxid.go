package dgi

import (
	"fmt"
	"unicode"
)

// pesos del dígito verificador del RNC (8 primeros dígitos, módulo 11).
var rncWeights = [8]int{7, 9, 8, 6, 5, 4, 3, 2}

// ValidateRNC valida un RNC de 9 dígitos (con o sin guiones, ej: "1-31-12345-7").
func ValidateRNC(rnc string) error {
	digits := extractDigits(rnc)
	if len(digits) != 9 {
		return fmt.Errorf("dgi: el RNC debe tener 9 dígitos, se encontraron %d", len(digits))
	}
	expected := rncCheckDigit(digits[:8])
	if digits[8] != expected {
		return fmt.Errorf("dgi: dígito verificador del RNC inválido: esperado %c, recibido %c", expected, digits[8])
	}
	return nil
}

// ComputeRNCCheckDigit calcula el dígito verificador para los 8 primeros dígitos del RNC.
func ComputeRNCCheckDigit(rnc string) (byte, error) {
	digits := extractDigits(rnc)
	if len(digits) < 8 {
		return 0, fmt.Errorf("dgi: se requieren al menos 8 dígitos, se encontraron %d", len(digits))
	}
	return rncCheckDigit(digits[:8]), nil
}

func rncCheckDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * rncWeights[i]
	}
	switch r := sum % 11; r {
	case 0:
		return '2'
	case 1:
		return '1'
	default:
		return byte('0' + (11 - r))
	}
}

// ValidateCedula valida una cédula de 11 dígitos (ej: "001-1234567-3") con el algoritmo de Luhn.
func ValidateCedula(cedula string) error {
	digits := extractDigits(cedula)
	if len(digits) != 11 {
		return fmt.Errorf("dgi: la cédula debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:10] {
		v := int(d - '0')
		if i%2 == 1 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
	}
	expected := byte('0' + (10-sum%10)%10)
	if digits[10] != expected {
		return fmt.Errorf("dgi: dígito verificador de la cédula inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ValidateTaxID acepta un RNC (9 dígitos) o una cédula (11 dígitos), según la longitud.
func ValidateTaxID(id string) error {
	switch n := len(extractDigits(id)); n {
	case 9:
		return ValidateRNC(id)
	case 11:
		return ValidateCedula(id)
	default:
		return fmt.Errorf("dgi: identificación fiscal con %d dígitos; se espera RNC (9) o cédula (11)", n)
	}
}

// FormatRNC devuelve el RNC con el formato D-DD-DDDDD-D. Si no tiene 9 dígitos lo devuelve sin cambios.
func FormatRNC(rnc string) string {
	d := extractDigits(rnc)
	if len(d) != 9 {
		return rnc
	}
	return fmt.Sprintf("%s-%s-%s-%s", d[0:1], d[1:3], d[3:8], d[8:9])
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
