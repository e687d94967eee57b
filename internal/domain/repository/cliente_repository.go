package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByDocumento(documento int64) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	List() ([]*entity.Cliente, error)
	Desactivar(id string) error
}
