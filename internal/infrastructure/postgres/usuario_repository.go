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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, usuario, contrasena_hash, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Usuario, u.ContrasenaHash, u.Rol, u.Activo, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado("el nombre de usuario ya existe")
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, usuario, contrasena_hash, rol, activo, created_at, updated_at
		FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario")
}

// GetByLogin obtiene un usuario por su login. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByLogin(login string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, usuario, contrasena_hash, rol, activo, created_at, updated_at
		FROM usuarios WHERE usuario = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, login), "get usuario by login")
}

// Update actualiza un usuario.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, usuario = $3, contrasena_hash = $4, rol = $5, activo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nombre, u.Usuario, u.ContrasenaHash, u.Rol, u.Activo, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado("el nombre de usuario ya existe")
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List devuelve todos los usuarios ordenados por nombre.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `
		SELECT id, nombre, usuario, contrasena_hash, rol, activo, created_at, updated_at
		FROM usuarios ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Usuario, &u.ContrasenaHash, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete borra físicamente un usuario (la única entidad con borrado duro).
func (r *UsuarioRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoEncontrado("usuario no encontrado")
	}
	return nil
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Usuario, &u.ContrasenaHash, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}
