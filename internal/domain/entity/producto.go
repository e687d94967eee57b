package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo. El stock solo se modifica
// aplicando movimientos de almacén; los precios son niveles opcionales (NULL
// cuando no se definen). La baja es lógica: Activo = false, nunca DELETE.
type Producto struct {
	ID             string
	Codigo         string // único, no vacío
	Descripcion    string
	Stock          int // nunca negativo
	PrecioCompra   *decimal.Decimal
	PrecioEspecial *decimal.Decimal
	PrecioMayoreo  *decimal.Decimal
	PrecioGeneral  *decimal.Decimal
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
