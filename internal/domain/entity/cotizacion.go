package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización.
const (
	CotizacionPendiente  = "pendiente"
	CotizacionAprobada   = "aprobada"
	CotizacionConvertida = "convertida"
)

// Cotizacion es un borrador de venta sin compromiso: no toca stock ni crea
// ventas. Convertirla solo cambia el estado.
type Cotizacion struct {
	ID            string
	ClienteID     string // puede estar vacío (cliente ocasional)
	NombreCliente string
	UsuarioID     string
	Total         decimal.Decimal
	Estado        string // pendiente, aprobada, convertida
	Observaciones string
	Fecha         time.Time

	UsuarioNombre string // solo lectura, vía JOIN
}

// DetalleCotizacion una línea de producto dentro de una cotización.
type DetalleCotizacion struct {
	ID             string
	CotizacionID   string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal

	ProductoDescripcion string // solo lectura, vía JOIN
}
