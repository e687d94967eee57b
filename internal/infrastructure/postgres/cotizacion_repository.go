package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.CotizacionRepository = (*CotizacionRepo)(nil)

// CotizacionRepo implementación del puerto CotizacionRepository sobre PostgreSQL.
type CotizacionRepo struct {
	q Querier
}

// NewCotizacionRepository construye el adaptador de persistencia para cotizaciones.
func NewCotizacionRepository(q Querier) *CotizacionRepo {
	return &CotizacionRepo{q: q}
}

// Create persiste la cabecera de la cotización.
func (r *CotizacionRepo) Create(c *entity.Cotizacion) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO cotizaciones (id, cliente_id, nombre_cliente, usuario_id, total, estado, observaciones, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, nullIfEmpty(c.ClienteID), c.NombreCliente, c.UsuarioID,
		c.Total, c.Estado, c.Observaciones, c.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert cotizacion: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización con el nombre del vendedor.
func (r *CotizacionRepo) GetByID(id string) (*entity.Cotizacion, error) {
	query := `
		SELECT c.id, COALESCE(c.cliente_id::text, ''), c.nombre_cliente, c.usuario_id,
		       c.total, c.estado, c.observaciones, c.fecha, u.nombre
		FROM cotizaciones c
		JOIN usuarios u ON u.id = c.usuario_id
		WHERE c.id = $1`
	var c entity.Cotizacion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ClienteID, &c.NombreCliente, &c.UsuarioID,
		&c.Total, &c.Estado, &c.Observaciones, &c.Fecha, &c.UsuarioNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cotizacion: %w", err)
	}
	return &c, nil
}

// Update actualiza la cabecera de la cotización.
func (r *CotizacionRepo) Update(c *entity.Cotizacion) error {
	query := `
		UPDATE cotizaciones
		SET cliente_id = $2, nombre_cliente = $3, total = $4, estado = $5, observaciones = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, nullIfEmpty(c.ClienteID), c.NombreCliente, c.Total, c.Estado, c.Observaciones,
	)
	if err != nil {
		return fmt.Errorf("update cotizacion: %w", err)
	}
	return nil
}

// List devuelve todas las cotizaciones (más recientes primero).
func (r *CotizacionRepo) List() ([]*entity.Cotizacion, error) {
	query := `
		SELECT c.id, COALESCE(c.cliente_id::text, ''), c.nombre_cliente, c.usuario_id,
		       c.total, c.estado, c.observaciones, c.fecha, u.nombre
		FROM cotizaciones c
		JOIN usuarios u ON u.id = c.usuario_id
		ORDER BY c.fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cotizacion
	for rows.Next() {
		var c entity.Cotizacion
		if err := rows.Scan(
			&c.ID, &c.ClienteID, &c.NombreCliente, &c.UsuarioID,
			&c.Total, &c.Estado, &c.Observaciones, &c.Fecha, &c.UsuarioNombre,
		); err != nil {
			return nil, fmt.Errorf("scan cotizacion: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete borra la cotización y sus líneas (ON DELETE CASCADE).
func (r *CotizacionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM cotizaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cotizacion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado("cotización no encontrada")
	}
	return nil
}

// CreateDetalle persiste una línea de la cotización.
func (r *CotizacionRepo) CreateDetalle(d *entity.DetalleCotizacion) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO detalle_cotizaciones (id, cotizacion_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.CotizacionID, d.ProductoID, d.Cantidad, d.PrecioUnitario, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle cotizacion: %w", err)
	}
	return nil
}

// GetDetalles devuelve las líneas de una cotización con descripción del producto.
func (r *CotizacionRepo) GetDetalles(cotizacionID string) ([]*entity.DetalleCotizacion, error) {
	query := `
		SELECT d.id, d.cotizacion_id, d.producto_id, d.cantidad, d.precio_unitario, d.subtotal, p.descripcion
		FROM detalle_cotizaciones d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.cotizacion_id = $1 ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, cotizacionID)
	if err != nil {
		return nil, fmt.Errorf("list detalle cotizaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleCotizacion
	for rows.Next() {
		var d entity.DetalleCotizacion
		if err := rows.Scan(&d.ID, &d.CotizacionID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal, &d.ProductoDescripcion); err != nil {
			return nil, fmt.Errorf("scan detalle cotizacion: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Resumen cuenta cotizaciones por estado.
func (r *CotizacionRepo) Resumen() (*repository.ResumenCotizaciones, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE estado = 'pendiente'),
		       COUNT(*) FILTER (WHERE estado = 'aprobada'),
		       COUNT(*) FILTER (WHERE estado = 'convertida')
		FROM cotizaciones`
	var res repository.ResumenCotizaciones
	err := r.q.QueryRow(context.Background(), query).Scan(
		&res.Total, &res.Pendientes, &res.Aprobadas, &res.Convertidas,
	)
	if err != nil {
		return nil, fmt.Errorf("resumen cotizaciones: %w", err)
	}
	return &res, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
