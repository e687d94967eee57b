package entity

import "github.com/shopspring/decimal"

// DetalleVenta representa una línea de producto dentro de una venta.
// Su creación emite un movimiento de egreso por la misma cantidad.
type DetalleVenta struct {
	ID             string
	VentaID        string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal // cantidad × precio unitario cuando no viene en el payload
}
