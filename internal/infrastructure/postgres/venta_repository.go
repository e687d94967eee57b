package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas.
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *VentaRepo) Create(v *entity.Venta) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ventas (id, cliente_id, usuario_id, total, adelanto, diferencia, estado, direccion_envio, transportista, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ClienteID, v.UsuarioID, v.Total, v.Adelanto, v.Diferencia,
		v.Estado, v.DireccionEnvio, v.Transportista, v.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con resumen de cliente y vendedor.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `
		SELECT v.id, v.cliente_id, v.usuario_id, v.total, v.adelanto, v.diferencia,
		       v.estado, v.direccion_envio, v.transportista, v.fecha,
		       c.nombre, u.nombre
		FROM ventas v
		JOIN clientes c ON c.id = v.cliente_id
		JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.UsuarioID, &v.Total, &v.Adelanto, &v.Diferencia,
		&v.Estado, &v.DireccionEnvio, &v.Transportista, &v.Fecha,
		&v.ClienteNombre, &v.UsuarioNombre,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// Update actualiza la cabecera de la venta.
func (r *VentaRepo) Update(v *entity.Venta) error {
	query := `
		UPDATE ventas
		SET cliente_id = $2, usuario_id = $3, total = $4, adelanto = $5, diferencia = $6,
		    estado = $7, direccion_envio = $8, transportista = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ClienteID, v.UsuarioID, v.Total, v.Adelanto, v.Diferencia,
		v.Estado, v.DireccionEnvio, v.Transportista,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// List devuelve todas las ventas (más recientes primero) con resumen de cliente y vendedor.
func (r *VentaRepo) List() ([]*entity.Venta, error) {
	query := `
		SELECT v.id, v.cliente_id, v.usuario_id, v.total, v.adelanto, v.diferencia,
		       v.estado, v.direccion_envio, v.transportista, v.fecha,
		       c.nombre, u.nombre
		FROM ventas v
		JOIN clientes c ON c.id = v.cliente_id
		JOIN usuarios u ON u.id = v.usuario_id
		ORDER BY v.fecha DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(
			&v.ID, &v.ClienteID, &v.UsuarioID, &v.Total, &v.Adelanto, &v.Diferencia,
			&v.Estado, &v.DireccionEnvio, &v.Transportista, &v.Fecha,
			&v.ClienteNombre, &v.UsuarioNombre,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// CreateDetalle persiste una línea de la venta.
func (r *VentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO detalle_ventas (id, venta_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.VentaID, d.ProductoID, d.Cantidad, d.PrecioUnitario, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// GetDetalles devuelve todas las líneas de una venta.
func (r *VentaRepo) GetDetalles(ventaID string) ([]*entity.DetalleVenta, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, subtotal
		FROM detalle_ventas WHERE venta_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list detalle ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
