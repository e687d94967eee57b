package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

// AlmacenUseCase libro de movimientos de almacén. Registrar un movimiento es
// la única vía para modificar el stock de un producto.
type AlmacenUseCase struct {
	movimientos repository.MovimientoRepository
	productos   repository.ProductoRepository
	log         *logger.Logger
}

// NewAlmacenUseCase construye el caso de uso.
func NewAlmacenUseCase(movimientos repository.MovimientoRepository, productos repository.ProductoRepository, log *logger.Logger) *AlmacenUseCase {
	return &AlmacenUseCase{movimientos: movimientos, productos: productos, log: log}
}

// Registrar valida y registra un movimiento, y ajusta el stock del producto.
// El ajuste ocurre después del alta del movimiento; si falla, el movimiento
// queda en el libro y el error se devuelve al llamador.
func (uc *AlmacenUseCase) Registrar(in dto.CrearMovimientoRequest) (*dto.MovimientoResponse, error) {
	if strings.TrimSpace(in.ProductoID) == "" {
		return nil, domain.ErrValidacion("el producto del movimiento es obligatorio")
	}
	if in.Tipo != entity.MovimientoIngreso && in.Tipo != entity.MovimientoEgreso {
		return nil, domain.ErrValidacion("tipo de movimiento inválido: debe ser ingreso o egreso")
	}
	if in.Cantidad <= 0 {
		return nil, domain.ErrValidacion("la cantidad debe ser mayor que cero")
	}
	producto, err := uc.productos.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNoEncontrado("producto no encontrado")
	}
	delta := in.Cantidad
	if in.Tipo == entity.MovimientoEgreso {
		if producto.Stock < in.Cantidad {
			return nil, domain.ErrConflicto("stock insuficiente para el egreso")
		}
		delta = -in.Cantidad
	}
	mov := &entity.MovimientoAlmacen{
		ID:         uuid.New().String(),
		ProductoID: in.ProductoID,
		Tipo:       in.Tipo,
		Cantidad:   in.Cantidad,
		Fecha:      time.Now(),
	}
	if err := uc.movimientos.Create(mov); err != nil {
		return nil, err
	}
	if err := uc.productos.AjustarStock(in.ProductoID, delta); err != nil {
		uc.log.Error().Err(err).Str("movimiento_id", mov.ID).Str("producto_id", in.ProductoID).
			Msg("movimiento registrado pero el ajuste de stock falló")
		return nil, err
	}
	mov.ProductoCodigo = producto.Codigo
	mov.ProductoDescripcion = producto.Descripcion
	return toMovimientoResponse(mov), nil
}

// GetByID obtiene un movimiento por ID.
func (uc *AlmacenUseCase) GetByID(id string) (*dto.MovimientoResponse, error) {
	mov, err := uc.movimientos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNoEncontrado("movimiento no encontrado")
	}
	return toMovimientoResponse(mov), nil
}

// List lista el libro completo, del movimiento más reciente al más antiguo.
func (uc *AlmacenUseCase) List() ([]dto.MovimientoResponse, error) {
	list, err := uc.movimientos.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovimientoResponse(m))
	}
	return items, nil
}

func toMovimientoResponse(m *entity.MovimientoAlmacen) *dto.MovimientoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimientoResponse{
		ID:                  m.ID,
		ProductoID:          m.ProductoID,
		ProductoCodigo:      m.ProductoCodigo,
		ProductoDescripcion: m.ProductoDescripcion,
		Tipo:                m.Tipo,
		Cantidad:            m.Cantidad,
		Fecha:               m.Fecha,
	}
}
