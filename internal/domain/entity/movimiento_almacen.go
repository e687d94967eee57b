package entity

import "time"

// Tipos de movimiento de almacén.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"
)

// MovimientoAlmacen es una entrada del libro de movimientos de stock.
// Append-only: nunca se actualiza ni se borra. Cantidad siempre > 0.
type MovimientoAlmacen struct {
	ID         string
	ProductoID string
	Tipo       string // ingreso, egreso
	Cantidad   int
	Fecha      time.Time

	// Datos del producto para listados (solo lectura, vía JOIN).
	ProductoCodigo      string
	ProductoDescripcion string
}
