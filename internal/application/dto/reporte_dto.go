package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoVendidoDTO fila del reporte de productos más vendidos.
type ProductoVendidoDTO struct {
	ProductoID  string          `json:"producto_id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Unidades    int64           `json:"unidades"`
	Ingresos    decimal.Decimal `json:"ingresos"`
}

// VentasVendedorDTO fila del reporte de ventas por vendedor.
type VentasVendedorDTO struct {
	UsuarioID string          `json:"usuario_id"`
	Nombre    string          `json:"nombre"`
	Ventas    int64           `json:"ventas"`
	Total     decimal.Decimal `json:"total"`
}

// ClienteComprasDTO fila del reporte de clientes con más compras.
type ClienteComprasDTO struct {
	ClienteID string          `json:"cliente_id"`
	Nombre    string          `json:"nombre"`
	Compras   int64           `json:"compras"`
	Total     decimal.Decimal `json:"total"`
}

// GananciaPeriodoDTO fila de ganancias por día o mes.
type GananciaPeriodoDTO struct {
	Periodo time.Time       `json:"periodo"`
	Ventas  int64           `json:"ventas"`
	Total   decimal.Decimal `json:"total"`
}
