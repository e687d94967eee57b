package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductoVendidoRow producto con unidades e ingresos acumulados.
type ProductoVendidoRow struct {
	ProductoID  string
	Codigo      string
	Descripcion string
	Unidades    int64
	Ingresos    decimal.Decimal
}

// VentasVendedorRow ventas acumuladas por vendedor.
type VentasVendedorRow struct {
	UsuarioID string
	Nombre    string
	Ventas    int64
	Total     decimal.Decimal
}

// ClienteComprasRow compras acumuladas por cliente.
type ClienteComprasRow struct {
	ClienteID string
	Nombre    string
	Compras   int64
	Total     decimal.Decimal
}

// GananciaPeriodoRow total vendido en un período (día o mes).
type GananciaPeriodoRow struct {
	Periodo time.Time
	Ventas  int64
	Total   decimal.Decimal
}

// ReporteRepository consultas de solo lectura para los reportes agregados.
// Todas excluyen ventas anuladas.
type ReporteRepository interface {
	ProductosMasVendidos(ctx context.Context) ([]ProductoVendidoRow, error)
	VentasPorVendedor(ctx context.Context) ([]VentasVendedorRow, error)
	ClientesMasCompras(ctx context.Context) ([]ClienteComprasRow, error)
	GananciasDiarias(ctx context.Context) ([]GananciaPeriodoRow, error)
	GananciasMensuales(ctx context.Context) ([]GananciaPeriodoRow, error)
}
