package dto

import "time"

// CrearClienteRequest entrada para crear un cliente.
// Documento acepta número o cadena; el caso de uso lo coerciona a entero.
type CrearClienteRequest struct {
	Nombre    string `json:"nombre"`
	Documento Texto  `json:"documento"`
	Telefono  string `json:"telefono"`
}

// ActualizarClienteRequest entrada parcial para actualizar un cliente.
type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Documento *Texto  `json:"documento"`
	Telefono  *string `json:"telefono"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Documento int64     `json:"documento"`
	Telefono  string    `json:"telefono"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
