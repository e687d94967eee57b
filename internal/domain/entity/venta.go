package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	VentaPendiente = "pendiente"
	VentaParcial   = "parcial"
	VentaPagada    = "pagada"
	VentaAnulada   = "anulada"
)

// Venta representa una transacción comprometida con un cliente y un vendedor.
// Invariante: Diferencia = max(0, Total - Adelanto).
type Venta struct {
	ID             string
	ClienteID      string
	UsuarioID      string // vendedor
	Total          decimal.Decimal
	Adelanto       decimal.Decimal
	Diferencia     decimal.Decimal
	Estado         string // pendiente, parcial, pagada, anulada
	DireccionEnvio string
	Transportista  string
	Fecha          time.Time

	// Resumen de cliente/vendedor para respuestas (solo lectura, vía JOIN).
	ClienteNombre string
	UsuarioNombre string
}

// CalcularDiferencia devuelve max(0, total - adelanto).
func CalcularDiferencia(total, adelanto decimal.Decimal) decimal.Decimal {
	diff := total.Sub(adelanto)
	if diff.IsNegative() {
		return decimal.Zero
	}
	return diff
}
