package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetalleCotizacionRequest una línea de producto en una cotización.
type DetalleCotizacionRequest struct {
	ProductoID     string        `json:"producto_id"`
	Cantidad       int           `json:"cantidad"`
	PrecioUnitario MontoOpcional `json:"precio_unitario"`
	Subtotal       MontoOpcional `json:"subtotal"`
}

// CrearCotizacionRequest entrada para crear una cotización con sus líneas.
type CrearCotizacionRequest struct {
	ClienteID     string                     `json:"cliente_id"`
	NombreCliente string                     `json:"nombre_cliente"`
	UsuarioID     string                     `json:"usuario_id"`
	Total         MontoOpcional              `json:"total"`
	Observaciones string                     `json:"observaciones"`
	Detalles      []DetalleCotizacionRequest `json:"detalles"`
}

// ActualizarCotizacionRequest entrada parcial.
type ActualizarCotizacionRequest struct {
	ClienteID     *string        `json:"cliente_id"`
	NombreCliente *string        `json:"nombre_cliente"`
	Total         *MontoOpcional `json:"total"`
	Estado        *string        `json:"estado"`
	Observaciones *string        `json:"observaciones"`
}

// DetalleCotizacionResponse salida de una línea de cotización.
type DetalleCotizacionResponse struct {
	ID                  string          `json:"id"`
	CotizacionID        string          `json:"cotizacion_id"`
	ProductoID          string          `json:"producto_id"`
	ProductoDescripcion string          `json:"producto_descripcion,omitempty"`
	Cantidad            int             `json:"cantidad"`
	PrecioUnitario      decimal.Decimal `json:"precio_unitario"`
	Subtotal            decimal.Decimal `json:"subtotal"`
}

// CotizacionResponse salida de una cotización.
type CotizacionResponse struct {
	ID            string                      `json:"id"`
	ClienteID     string                      `json:"cliente_id,omitempty"`
	NombreCliente string                      `json:"nombre_cliente"`
	UsuarioID     string                      `json:"usuario_id"`
	UsuarioNombre string                      `json:"usuario_nombre,omitempty"`
	Total         decimal.Decimal             `json:"total"`
	Estado        string                      `json:"estado"`
	Observaciones string                      `json:"observaciones,omitempty"`
	Fecha         time.Time                   `json:"fecha"`
	Detalles      []DetalleCotizacionResponse `json:"detalles"`
}

// VentaPreparadaResponse payload de venta calculado desde una cotización.
// Se devuelve al convertir/preparar; la venta NO se persiste por esta vía.
type VentaPreparadaResponse struct {
	ClienteID  string                `json:"cliente_id,omitempty"`
	UsuarioID  string                `json:"usuario_id"`
	Total      decimal.Decimal       `json:"total"`
	Adelanto   decimal.Decimal       `json:"adelanto"`
	EsAdelanto bool                  `json:"es_adelanto"`
	Detalles   []DetalleVentaRequest `json:"detalles"`
}

// ResumenCotizacionesResponse conteos por estado para el dashboard.
type ResumenCotizacionesResponse struct {
	Total       int `json:"total"`
	Pendientes  int `json:"pendientes"`
	Aprobadas   int `json:"aprobadas"`
	Convertidas int `json:"convertidas"`
}
