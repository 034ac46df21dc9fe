package entity

import "time"

// Estados de un residente.
const (
	ResidentStatusActive   = "active"
	ResidentStatusInactive = "inactive"
)

// Resident representa al titular de un plan (residente/cliente) al que se le factura la cuota mensual.
type Resident struct {
	ID                 string
	FirstName          string
	LastName           string
	NationalID         string // Cédula dominicana (11 dígitos, con o sin guiones)
	RegistrationNumber string // Número de matrícula/registro interno
	Phone              string
	Address            string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName devuelve nombre y apellido separados por un espacio.
func (r *Resident) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}
