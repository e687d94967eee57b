package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// VentaRepository define el puerto de persistencia para Venta y sus líneas.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	Update(venta *entity.Venta) error
	List() ([]*entity.Venta, error)
	CreateDetalle(detalle *entity.DetalleVenta) error
	GetDetalles(ventaID string) ([]*entity.DetalleVenta, error)
}
