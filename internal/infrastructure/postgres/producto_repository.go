package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, codigo, descripcion, stock, precio_compra, precio_especial, precio_mayoreo, precio_general, activo, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Descripcion, p.Stock,
		p.PrecioCompra, p.PrecioEspecial, p.PrecioMayoreo, p.PrecioGeneral,
		p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado("el código del producto ya existe")
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetByCodigo obtiene un producto por código. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByCodigo(codigo string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE codigo = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, codigo), "get producto by codigo")
}

// Update actualiza un producto existente. El stock no se toca aquí: solo vía AjustarStock.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET codigo = $2, descripcion = $3, precio_compra = $4, precio_especial = $5,
		    precio_mayoreo = $6, precio_general = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Codigo, p.Descripcion,
		p.PrecioCompra, p.PrecioEspecial, p.PrecioMayoreo, p.PrecioGeneral,
		p.Activo, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado("el código del producto ya existe")
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// List devuelve todos los productos ordenados por descripción ascendente.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ORDER BY descripcion ASC`
	return r.scanMany(query)
}

// Search busca por subcadena (case-insensitive) en descripción o código.
// Mantiene el orden por descripción; el tope lo decide el caso de uso.
func (r *ProductoRepo) Search(termino string, limit int) ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumns + `
		FROM productos
		WHERE descripcion ILIKE '%' || $1 || '%' OR codigo ILIKE '%' || $1 || '%'
		ORDER BY descripcion ASC
		LIMIT $2`
	return r.scanMany(query, termino, limit)
}

// Desactivar baja lógica: solo cambia activo, el resto de campos queda intacto.
func (r *ProductoRepo) Desactivar(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado("producto no encontrado")
	}
	return nil
}

// AjustarStock aplica un delta al stock (positivo ingreso, negativo egreso).
// El check stock >= 0 de la tabla rechaza egresos que dejen stock negativo.
func (r *ProductoRepo) AjustarStock(id string, delta int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock + $2, updated_at = now() WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("ajustar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado("producto no encontrado")
	}
	return nil
}

func (r *ProductoRepo) scanOne(row pgx.Row, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Codigo, &p.Descripcion, &p.Stock,
		&p.PrecioCompra, &p.PrecioEspecial, &p.PrecioMayoreo, &p.PrecioGeneral,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductoRepo) scanMany(query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Codigo, &p.Descripcion, &p.Stock,
			&p.PrecioCompra, &p.PrecioEspecial, &p.PrecioMayoreo, &p.PrecioGeneral,
			&p.Activo, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
