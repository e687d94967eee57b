package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Las búsquedas devuelven (nil, nil) cuando no existe la fila.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByCodigo(codigo string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	List() ([]*entity.Producto, error)
	Search(termino string, limit int) ([]*entity.Producto, error)
	Desactivar(id string) error
	AjustarStock(id string, delta int) error
}
