package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleVentaRequest una línea de producto en el payload de creación.
// Subtotal se calcula como cantidad × precio unitario cuando no viene.
type DetalleVentaRequest struct {
	ProductoID     string        `json:"producto_id"`
	Cantidad       int           `json:"cantidad"`
	PrecioUnitario MontoOpcional `json:"precio_unitario"`
	Subtotal       MontoOpcional `json:"subtotal"`
}

// CrearVentaRequest entrada para crear una venta con sus líneas.
// EsAdelanto decide el estado inicial junto con el monto del adelanto.
type CrearVentaRequest struct {
	ClienteID      string                `json:"cliente_id"`
	UsuarioID      string                `json:"usuario_id"`
	Total          MontoOpcional         `json:"total"`
	Adelanto       MontoOpcional         `json:"adelanto"`
	Diferencia     MontoOpcional         `json:"diferencia"`
	EsAdelanto     bool                  `json:"es_adelanto"`
	DireccionEnvio string                `json:"direccion_envio"`
	Transportista  string                `json:"transportista"`
	Detalles       []DetalleVentaRequest `json:"detalles"`
}

// ActualizarVentaRequest entrada parcial. La diferencia solo se recalcula
// cuando total o adelanto vienen en el payload.
type ActualizarVentaRequest struct {
	ClienteID      *string        `json:"cliente_id"`
	UsuarioID      *string        `json:"usuario_id"`
	Total          *MontoOpcional `json:"total"`
	Adelanto       *MontoOpcional `json:"adelanto"`
	DireccionEnvio *string        `json:"direccion_envio"`
	Transportista  *string        `json:"transportista"`
}

// PagarVentaRequest abono sobre una venta pendiente o parcial.
type PagarVentaRequest struct {
	Monto MontoOpcional `json:"monto"`
}

// AnularVentaRequest credenciales de administrador re-ingresadas para anular.
type AnularVentaRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

// DetalleVentaResponse salida de una línea de venta.
type DetalleVentaResponse struct {
	ID             string          `json:"id"`
	VentaID        string          `json:"venta_id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse salida de una venta con resumen de cliente/vendedor y líneas.
type VentaResponse struct {
	ID             string                 `json:"id"`
	ClienteID      string                 `json:"cliente_id"`
	ClienteNombre  string                 `json:"cliente_nombre,omitempty"`
	UsuarioID      string                 `json:"usuario_id"`
	UsuarioNombre  string                 `json:"usuario_nombre,omitempty"`
	Total          decimal.Decimal        `json:"total"`
	Adelanto       decimal.Decimal        `json:"adelanto"`
	Diferencia     decimal.Decimal        `json:"diferencia"`
	Estado         string                 `json:"estado"`
	DireccionEnvio string                 `json:"direccion_envio,omitempty"`
	Transportista  string                 `json:"transportista,omitempty"`
	Fecha          time.Time              `json:"fecha"`
	Detalles       []DetalleVentaResponse `json:"detalles"`
}
