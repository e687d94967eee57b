package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL.
// El libro es append-only: no hay UPDATE ni DELETE.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del libro de movimientos.
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de almacén.
func (r *MovimientoRepo) Create(m *entity.MovimientoAlmacen) error {
	query := `
		INSERT INTO movimientos_almacen (id, producto_id, tipo, cantidad, fecha)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.Tipo, m.Cantidad, m.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento con código y descripción del producto.
func (r *MovimientoRepo) GetByID(id string) (*entity.MovimientoAlmacen, error) {
	query := `
		SELECT m.id, m.producto_id, m.tipo, m.cantidad, m.fecha, p.codigo, p.descripcion
		FROM movimientos_almacen m
		JOIN productos p ON p.id = m.producto_id
		WHERE m.id = $1`
	var m entity.MovimientoAlmacen
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad, &m.Fecha,
		&m.ProductoCodigo, &m.ProductoDescripcion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// List devuelve todos los movimientos (más recientes primero) con datos del producto.
func (r *MovimientoRepo) List() ([]*entity.MovimientoAlmacen, error) {
	query := `
		SELECT m.id, m.producto_id, m.tipo, m.cantidad, m.fecha, p.codigo, p.descripcion
		FROM movimientos_almacen m
		JOIN productos p ON p.id = m.producto_id
		ORDER BY m.fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoAlmacen
	for rows.Next() {
		var m entity.MovimientoAlmacen
		if err := rows.Scan(
			&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad, &m.Fecha,
			&m.ProductoCodigo, &m.ProductoDescripcion,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
