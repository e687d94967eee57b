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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, documento, telefono, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Documento, c.Telefono, c.Activo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado("el documento del cliente ya está registrado")
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, documento, telefono, activo, created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Documento, &c.Telefono, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByDocumento obtiene un cliente por documento. Devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByDocumento(documento int64) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, documento, telefono, activo, created_at, updated_at
		FROM clientes WHERE documento = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, documento).Scan(
		&c.ID, &c.Nombre, &c.Documento, &c.Telefono, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by documento: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, documento = $3, telefono = $4, activo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.Documento, c.Telefono, c.Activo, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado("el documento del cliente ya está registrado")
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List devuelve todos los clientes ordenados por nombre.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, documento, telefono, activo, created_at, updated_at
		FROM clientes ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Documento, &c.Telefono, &c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Desactivar baja lógica del cliente.
func (r *ClienteRepo) Desactivar(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado("cliente no encontrado")
	}
	return nil
}
