package entity

// Roles aceptados en el token JWT emitido por el proveedor de identidad.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)
