package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
// Delete es físico: Usuario es la única entidad con borrado duro.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByLogin(login string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List() ([]*entity.Usuario, error)
	Delete(id string) error
}
