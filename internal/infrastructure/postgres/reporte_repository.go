package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de solo lectura para los reportes agregados.
// Todas excluyen las ventas anuladas.
type ReporteRepo struct {
	pool *pgxpool.Pool
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(pool *pgxpool.Pool) *ReporteRepo {
	return &ReporteRepo{pool: pool}
}

// ProductosMasVendidos agrupa unidades e ingresos por producto, de mayor a menor.
func (r *ReporteRepo) ProductosMasVendidos(ctx context.Context) ([]repository.ProductoVendidoRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.codigo,
	    p.descripcion,
	    COALESCE(SUM(d.cantidad), 0)  AS unidades,
	    COALESCE(SUM(d.subtotal), 0)  AS ingresos
	FROM detalle_ventas d
	JOIN ventas    v ON v.id = d.venta_id
	JOIN productos p ON p.id = d.producto_id
	WHERE v.estado <> 'anulada'
	GROUP BY p.id, p.codigo, p.descripcion
	ORDER BY unidades DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reportes.ProductosMasVendidos: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductoVendidoRow
	for rows.Next() {
		var row repository.ProductoVendidoRow
		if err := rows.Scan(&row.ProductoID, &row.Codigo, &row.Descripcion, &row.Unidades, &row.Ingresos); err != nil {
			return nil, fmt.Errorf("reportes.ProductosMasVendidos scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// VentasPorVendedor agrupa número de ventas y total facturado por vendedor.
func (r *ReporteRepo) VentasPorVendedor(ctx context.Context) ([]repository.VentasVendedorRow, error) {
	const query = `
	SELECT
	    u.id,
	    u.nombre,
	    COUNT(v.id)                AS ventas,
	    COALESCE(SUM(v.total), 0)  AS total
	FROM ventas v
	JOIN usuarios u ON u.id = v.usuario_id
	WHERE v.estado <> 'anulada'
	GROUP BY u.id, u.nombre
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reportes.VentasPorVendedor: %w", err)
	}
	defer rows.Close()

	var results []repository.VentasVendedorRow
	for rows.Next() {
		var row repository.VentasVendedorRow
		if err := rows.Scan(&row.UsuarioID, &row.Nombre, &row.Ventas, &row.Total); err != nil {
			return nil, fmt.Errorf("reportes.VentasPorVendedor scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ClientesMasCompras agrupa número de compras y total gastado por cliente.
func (r *ReporteRepo) ClientesMasCompras(ctx context.Context) ([]repository.ClienteComprasRow, error) {
	const query = `
	SELECT
	    c.id,
	    c.nombre,
	    COUNT(v.id)                AS compras,
	    COALESCE(SUM(v.total), 0)  AS total
	FROM ventas v
	JOIN clientes c ON c.id = v.cliente_id
	WHERE v.estado <> 'anulada'
	GROUP BY c.id, c.nombre
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reportes.ClientesMasCompras: %w", err)
	}
	defer rows.Close()

	var results []repository.ClienteComprasRow
	for rows.Next() {
		var row repository.ClienteComprasRow
		if err := rows.Scan(&row.ClienteID, &row.Nombre, &row.Compras, &row.Total); err != nil {
			return nil, fmt.Errorf("reportes.ClientesMasCompras scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GananciasDiarias totales de venta agrupados por día.
func (r *ReporteRepo) GananciasDiarias(ctx context.Context) ([]repository.GananciaPeriodoRow, error) {
	return r.gananciasPor(ctx, "day", "reportes.GananciasDiarias")
}

// GananciasMensuales totales de venta agrupados por mes.
func (r *ReporteRepo) GananciasMensuales(ctx context.Context) ([]repository.GananciaPeriodoRow, error) {
	return r.gananciasPor(ctx, "month", "reportes.GananciasMensuales")
}

func (r *ReporteRepo) gananciasPor(ctx context.Context, trunc, op string) ([]repository.GananciaPeriodoRow, error) {
	query := fmt.Sprintf(`
	SELECT
	    date_trunc('%s', v.fecha)  AS periodo,
	    COUNT(v.id)                AS ventas,
	    COALESCE(SUM(v.total), 0)  AS total
	FROM ventas v
	WHERE v.estado <> 'anulada'
	GROUP BY periodo
	ORDER BY periodo DESC`, trunc)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var results []repository.GananciaPeriodoRow
	for rows.Next() {
		var row repository.GananciaPeriodoRow
		if err := rows.Scan(&row.Periodo, &row.Ventas, &row.Total); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
