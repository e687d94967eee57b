package cotizacion

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// UseCase gestiona cotizaciones: borradores de venta sin compromiso. No tocan
// stock ni crean ventas. "Convertir" cambia el estado y calcula el payload de
// la venta equivalente, pero NO persiste ninguna venta por esta vía.
type UseCase struct {
	repo repository.CotizacionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CotizacionRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una cotización con sus líneas. A diferencia de las ventas, una
// línea que falla aborta la operación: aquí no hay efectos sobre el almacén.
func (uc *UseCase) Create(in dto.CrearCotizacionRequest) (*dto.CotizacionResponse, error) {
	if strings.TrimSpace(in.NombreCliente) == "" && strings.TrimSpace(in.ClienteID) == "" {
		return nil, domain.ErrValidacion("la cotización necesita un cliente o un nombre de cliente")
	}
	if strings.TrimSpace(in.UsuarioID) == "" {
		return nil, domain.ErrValidacion("el vendedor de la cotización es obligatorio")
	}
	cot := &entity.Cotizacion{
		ID:            uuid.New().String(),
		ClienteID:     in.ClienteID,
		NombreCliente: in.NombreCliente,
		UsuarioID:     in.UsuarioID,
		Total:         in.Total.ODecimal(),
		Estado:        entity.CotizacionPendiente,
		Observaciones: in.Observaciones,
		Fecha:         time.Now(),
	}
	if err := uc.repo.Create(cot); err != nil {
		return nil, err
	}
	detalles := make([]dto.DetalleCotizacionResponse, 0, len(in.Detalles))
	for _, d := range in.Detalles {
		det, err := uc.crearDetalle(cot.ID, d)
		if err != nil {
			return nil, err
		}
		detalles = append(detalles, *toDetalleResponse(det))
	}
	resp := toCotizacionResponse(cot)
	resp.Detalles = detalles
	return resp, nil
}

func (uc *UseCase) crearDetalle(cotizacionID string, in dto.DetalleCotizacionRequest) (*entity.DetalleCotizacion, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrValidacion("la cantidad de la línea debe ser mayor que cero")
	}
	precio := in.PrecioUnitario.ODecimal()
	subtotal := in.Subtotal.ODecimal()
	if in.Subtotal.Valor == nil {
		subtotal = precio.Mul(decimal.NewFromInt(int64(in.Cantidad)))
	}
	det := &entity.DetalleCotizacion{
		ID:             uuid.New().String(),
		CotizacionID:   cotizacionID,
		ProductoID:     in.ProductoID,
		Cantidad:       in.Cantidad,
		PrecioUnitario: precio,
		Subtotal:       subtotal,
	}
	if err := uc.repo.CreateDetalle(det); err != nil {
		return nil, err
	}
	return det, nil
}

// AgregarDetalle agrega una línea a una cotización existente.
func (uc *UseCase) AgregarDetalle(cotizacionID string, in dto.DetalleCotizacionRequest) (*dto.DetalleCotizacionResponse, error) {
	cot, err := uc.repo.GetByID(cotizacionID)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNoEncontrado("cotización no encontrada")
	}
	det, err := uc.crearDetalle(cotizacionID, in)
	if err != nil {
		return nil, err
	}
	return toDetalleResponse(det), nil
}

// GetDetalles lista las líneas de una cotización.
func (uc *UseCase) GetDetalles(cotizacionID string) ([]dto.DetalleCotizacionResponse, error) {
	cot, err := uc.repo.GetByID(cotizacionID)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNoEncontrado("cotización no encontrada")
	}
	detalles, err := uc.repo.GetDetalles(cotizacionID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DetalleCotizacionResponse, 0, len(detalles))
	for _, d := range detalles {
		items = append(items, *toDetalleResponse(d))
	}
	return items, nil
}

// GetByID obtiene una cotización con sus líneas.
func (uc *UseCase) GetByID(id string) (*dto.CotizacionResponse, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNoEncontrado("cotización no encontrada")
	}
	resp := toCotizacionResponse(cot)
	detalles, err := uc.repo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, *toDetalleResponse(d))
	}
	return resp, nil
}

// List lista todas las cotizaciones sin sus líneas.
func (uc *UseCase) List() ([]dto.CotizacionResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CotizacionResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCotizacionResponse(c))
	}
	return items, nil
}

// Update actualiza campos de la cotización.
func (uc *UseCase) Update(id string, in dto.ActualizarCotizacionRequest) (*dto.CotizacionResponse, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNoEncontrado("cotización no encontrada")
	}
	if in.ClienteID != nil {
		cot.ClienteID = *in.ClienteID
	}
	if in.NombreCliente != nil {
		cot.NombreCliente = *in.NombreCliente
	}
	if in.Total != nil {
		cot.Total = in.Total.ODecimal()
	}
	if in.Estado != nil {
		if !estadoValido(*in.Estado) {
			return nil, domain.ErrValidacion("estado de cotización inválido")
		}
		cot.Estado = *in.Estado
	}
	if in.Observaciones != nil {
		cot.Observaciones = *in.Observaciones
	}
	if err := uc.repo.Update(cot); err != nil {
		return nil, err
	}
	return toCotizacionResponse(cot), nil
}

// Delete elimina la cotización y sus líneas.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// PrepararVenta calcula el payload de venta equivalente a la cotización sin
// modificar nada.
func (uc *UseCase) PrepararVenta(id string) (*dto.VentaPreparadaResponse, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNoEncontrado("cotización no encontrada")
	}
	return uc.armarVenta(cot)
}

// ConvertirVenta marca la cotización como convertida y devuelve el payload de
// venta calculado. La venta en sí NO se crea: el llamador decide qué hacer
// con el payload.
func (uc *UseCase) ConvertirVenta(id string) (*dto.VentaPreparadaResponse, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cot == nil {
		return nil, domain.ErrNoEncontrado("cotización no encontrada")
	}
	if cot.Estado == entity.CotizacionConvertida {
		return nil, domain.ErrConflicto("la cotización ya fue convertida")
	}
	payload, err := uc.armarVenta(cot)
	if err != nil {
		return nil, err
	}
	cot.Estado = entity.CotizacionConvertida
	if err := uc.repo.Update(cot); err != nil {
		return nil, err
	}
	return payload, nil
}

func (uc *UseCase) armarVenta(cot *entity.Cotizacion) (*dto.VentaPreparadaResponse, error) {
	detalles, err := uc.repo.GetDetalles(cot.ID)
	if err != nil {
		return nil, err
	}
	lineas := make([]dto.DetalleVentaRequest, 0, len(detalles))
	for _, d := range detalles {
		precio := d.PrecioUnitario
		subtotal := d.Subtotal
		lineas = append(lineas, dto.DetalleVentaRequest{
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: dto.MontoOpcional{Valor: &precio},
			Subtotal:       dto.MontoOpcional{Valor: &subtotal},
		})
	}
	return &dto.VentaPreparadaResponse{
		ClienteID:  cot.ClienteID,
		UsuarioID:  cot.UsuarioID,
		Total:      cot.Total,
		Adelanto:   decimal.Zero,
		EsAdelanto: true,
		Detalles:   lineas,
	}, nil
}

// ParaPDF devuelve la cotización y sus líneas como entidades, para el
// generador de PDF.
func (uc *UseCase) ParaPDF(id string) (*entity.Cotizacion, []*entity.DetalleCotizacion, error) {
	cot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if cot == nil {
		return nil, nil, domain.ErrNoEncontrado("cotización no encontrada")
	}
	detalles, err := uc.repo.GetDetalles(id)
	if err != nil {
		return nil, nil, err
	}
	return cot, detalles, nil
}

// Resumen conteos por estado para el dashboard.
func (uc *UseCase) Resumen() (*dto.ResumenCotizacionesResponse, error) {
	res, err := uc.repo.Resumen()
	if err != nil {
		return nil, err
	}
	return &dto.ResumenCotizacionesResponse{
		Total:       res.Total,
		Pendientes:  res.Pendientes,
		Aprobadas:   res.Aprobadas,
		Convertidas: res.Convertidas,
	}, nil
}

func estadoValido(estado string) bool {
	switch estado {
	case entity.CotizacionPendiente, entity.CotizacionAprobada, entity.CotizacionConvertida:
		return true
	}
	return false
}

func toCotizacionResponse(c *entity.Cotizacion) *dto.CotizacionResponse {
	if c == nil {
		return nil
	}
	return &dto.CotizacionResponse{
		ID:            c.ID,
		ClienteID:     c.ClienteID,
		NombreCliente: c.NombreCliente,
		UsuarioID:     c.UsuarioID,
		UsuarioNombre: c.UsuarioNombre,
		Total:         c.Total,
		Estado:        c.Estado,
		Observaciones: c.Observaciones,
		Fecha:         c.Fecha,
		Detalles:      []dto.DetalleCotizacionResponse{},
	}
}

func toDetalleResponse(d *entity.DetalleCotizacion) *dto.DetalleCotizacionResponse {
	if d == nil {
		return nil
	}
	return &dto.DetalleCotizacionResponse{
		ID:                  d.ID,
		CotizacionID:        d.CotizacionID,
		ProductoID:          d.ProductoID,
		ProductoDescripcion: d.ProductoDescripcion,
		Cantidad:            d.Cantidad,
		PrecioUnitario:      d.PrecioUnitario,
		Subtotal:            d.Subtotal,
	}
}
