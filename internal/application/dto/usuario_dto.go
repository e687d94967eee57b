package dto

import "time"

// CrearUsuarioRequest entrada para crear un usuario.
type CrearUsuarioRequest struct {
	Nombre     string `json:"nombre"`
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"`
}

// ActualizarUsuarioRequest entrada parcial. Contrasena solo se re-hashea si viene.
type ActualizarUsuarioRequest struct {
	Nombre     *string `json:"nombre"`
	Usuario    *string `json:"usuario"`
	Contrasena *string `json:"contrasena"`
	Rol        *string `json:"rol"`
}

// UsuarioResponse salida de un usuario. El hash nunca se serializa.
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Usuario   string    `json:"usuario"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
