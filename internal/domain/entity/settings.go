package entity

import "time"

// CompanySettings es el perfil fiscal del emisor (una sola fila).
type CompanySettings struct {
	Name      string
	TaxID     string // RNC, formato D-DD-DDDDD-D
	Address   string
	Phone     string
	Email     string
	Website   string
	UpdatedAt time.Time
}

// FiscalSettings es la configuración fiscal autorizada por la DGII: resolución,
// serie de NCF y rango de secuencias disponibles.
type FiscalSettings struct {
	ResolutionNumber string
	ValidUntil       time.Time
	NCFSeries        string // ej: "B01"
	CurrentSequence  int64  // última secuencia emitida
	MaxSequence      int64  // tope autorizado (inclusive)
	IsActive         bool
	UpdatedAt        time.Time
}

// Remaining devuelve cuántas secuencias quedan disponibles en el rango autorizado.
func (f *FiscalSettings) Remaining() int64 {
	if f.MaxSequence <= f.CurrentSequence {
		return 0
	}
	return f.MaxSequence - f.CurrentSequence
}
