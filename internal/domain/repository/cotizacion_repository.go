package repository

import "github.com/tu-usuario/ventas-api/internal/domain/entity"

// ResumenCotizaciones agrega conteos y totales por estado.
type ResumenCotizaciones struct {
	Total       int
	Pendientes  int
	Aprobadas   int
	Convertidas int
}

// CotizacionRepository define el puerto de persistencia para Cotizacion.
type CotizacionRepository interface {
	Create(cot *entity.Cotizacion) error
	GetByID(id string) (*entity.Cotizacion, error)
	Update(cot *entity.Cotizacion) error
	List() ([]*entity.Cotizacion, error)
	Delete(id string) error
	CreateDetalle(detalle *entity.DetalleCotizacion) error
	GetDetalles(cotizacionID string) ([]*entity.DetalleCotizacion, error)
	Resumen() (*ResumenCotizaciones, error)
}
