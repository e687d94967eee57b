package entity

import "time"

// Cliente representa un cliente del negocio. Documento es la clave única
// (entero). Baja lógica igual que Producto.
type Cliente struct {
	ID        string
	Nombre    string
	Documento int64 // único
	Telefono  string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
