package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
)

// RolValido indica si el rol pertenece al enum cerrado.
func RolValido(rol string) bool {
	return rol == RolAdmin || rol == RolVendedor
}

// Usuario representa un usuario del sistema. Es la única entidad con borrado
// físico; ContrasenaHash nunca sale en respuestas de lectura.
type Usuario struct {
	ID             string
	Nombre         string
	Usuario        string // login, único
	ContrasenaHash string // bcrypt, nunca plano después de persistir
	Rol            string // admin, vendedor
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
