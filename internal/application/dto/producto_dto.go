package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest entrada para crear un producto.
// Los precios aceptan número, cadena numérica o vacío (NULL).
type CrearProductoRequest struct {
	Codigo         string        `json:"codigo"`
	Descripcion    string        `json:"descripcion"`
	Stock          *int          `json:"stock"`
	PrecioCompra   MontoOpcional `json:"precio_compra"`
	PrecioEspecial MontoOpcional `json:"precio_especial"`
	PrecioMayoreo  MontoOpcional `json:"precio_mayoreo"`
	PrecioGeneral  MontoOpcional `json:"precio_general"`
}

// ActualizarProductoRequest entrada parcial para actualizar un producto.
// El stock no se actualiza por aquí: solo vía movimientos de almacén.
type ActualizarProductoRequest struct {
	Codigo         *string        `json:"codigo"`
	Descripcion    *string        `json:"descripcion"`
	PrecioCompra   *MontoOpcional `json:"precio_compra"`
	PrecioEspecial *MontoOpcional `json:"precio_especial"`
	PrecioMayoreo  *MontoOpcional `json:"precio_mayoreo"`
	PrecioGeneral  *MontoOpcional `json:"precio_general"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID             string           `json:"id"`
	Codigo         string           `json:"codigo"`
	Descripcion    string           `json:"descripcion"`
	Stock          int              `json:"stock"`
	PrecioCompra   *decimal.Decimal `json:"precio_compra"`
	PrecioEspecial *decimal.Decimal `json:"precio_especial"`
	PrecioMayoreo  *decimal.Decimal `json:"precio_mayoreo"`
	PrecioGeneral  *decimal.Decimal `json:"precio_general"`
	Activo         bool             `json:"activo"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
