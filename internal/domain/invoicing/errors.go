package invoicing

import "errors"

var (
	// ErrInvalidInvoiceInput se devuelve cuando la factura no tiene líneas o algún monto es negativo.
	ErrInvalidInvoiceInput = errors.New("datos de factura inválidos")
	// ErrAmountOutOfRange se devuelve cuando un monto no puede expresarse en letras.
	ErrAmountOutOfRange = errors.New("monto fuera de rango para conversión a letras")
	// ErrSequenceExhausted se devuelve cuando el rango de secuencias autorizado se agotó.
	ErrSequenceExhausted = errors.New("secuencia fiscal agotada")
)
