package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// MovimientoRepository define el puerto para el libro de movimientos de
// almacén. Solo altas y lecturas: el libro es append-only.
type MovimientoRepository interface {
	Create(mov *entity.MovimientoAlmacen) error
	GetByID(id string) (*entity.MovimientoAlmacen, error)
	List() ([]*entity.MovimientoAlmacen, error)
}
