package venta

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// UseCase gestiona el ciclo de vida de las ventas: creación con líneas,
// abonos y anulación. Los escritos venta/línea/movimiento no van en una
// transacción: una línea que falla se registra en el log y la venta persiste.
type UseCase struct {
	ventas      repository.VentaRepository
	productos   repository.ProductoRepository
	movimientos repository.MovimientoRepository
	usuarios    repository.UsuarioRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	ventas repository.VentaRepository,
	productos repository.ProductoRepository,
	movimientos repository.MovimientoRepository,
	usuarios repository.UsuarioRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		ventas:      ventas,
		productos:   productos,
		movimientos: movimientos,
		usuarios:    usuarios,
		log:         log,
	}
}

// estadoInicial deriva el estado al crear. Sin marca de adelanto la venta
// nace pagada; con marca, el monto del adelanto decide pendiente o parcial.
func estadoInicial(esAdelanto bool, adelanto decimal.Decimal) string {
	if !esAdelanto {
		return entity.VentaPagada
	}
	if adelanto.IsZero() {
		return entity.VentaPendiente
	}
	return entity.VentaParcial
}

// Create crea la venta y delega cada línea. Las líneas que fallan se loguean
// y se omiten; la venta ya persistida se devuelve igual.
func (uc *UseCase) Create(in dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	if strings.TrimSpace(in.ClienteID) == "" {
		return nil, domain.ErrValidacion("el cliente de la venta es obligatorio")
	}
	if strings.TrimSpace(in.UsuarioID) == "" {
		return nil, domain.ErrValidacion("el vendedor de la venta es obligatorio")
	}
	if in.Total.Valor == nil {
		return nil, domain.ErrValidacion("el total de la venta es obligatorio")
	}
	total := in.Total.ODecimal()
	adelanto := in.Adelanto.ODecimal()
	diferencia := entity.CalcularDiferencia(total, adelanto)
	if in.Diferencia.Valor != nil {
		diferencia = *in.Diferencia.Valor
	}

	venta := &entity.Venta{
		ID:             uuid.New().String(),
		ClienteID:      in.ClienteID,
		UsuarioID:      in.UsuarioID,
		Total:          total,
		Adelanto:       adelanto,
		Diferencia:     diferencia,
		Estado:         estadoInicial(in.EsAdelanto, adelanto),
		DireccionEnvio: in.DireccionEnvio,
		Transportista:  in.Transportista,
		Fecha:          time.Now(),
	}
	if err := uc.ventas.Create(venta); err != nil {
		return nil, err
	}

	detalles := make([]dto.DetalleVentaResponse, 0, len(in.Detalles))
	for _, d := range in.Detalles {
		det, err := uc.crearDetalle(venta.ID, d)
		if err != nil {
			uc.log.Error().Err(err).Str("venta_id", venta.ID).Str("producto_id", d.ProductoID).
				Msg("línea de venta no registrada")
			continue
		}
		detalles = append(detalles, *toDetalleResponse(det))
	}

	resp := toVentaResponse(venta)
	resp.Detalles = detalles
	return resp, nil
}

// crearDetalle persiste una línea y emite el egreso de almacén asociado.
func (uc *UseCase) crearDetalle(ventaID string, in dto.DetalleVentaRequest) (*entity.DetalleVenta, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrValidacion("la cantidad de la línea debe ser mayor que cero")
	}
	precio := in.PrecioUnitario.ODecimal()
	subtotal := in.Subtotal.ODecimal()
	if in.Subtotal.Valor == nil {
		subtotal = precio.Mul(decimal.NewFromInt(int64(in.Cantidad)))
	}
	det := &entity.DetalleVenta{
		ID:             uuid.New().String(),
		VentaID:        ventaID,
		ProductoID:     in.ProductoID,
		Cantidad:       in.Cantidad,
		PrecioUnitario: precio,
		Subtotal:       subtotal,
	}
	if err := uc.ventas.CreateDetalle(det); err != nil {
		return nil, err
	}
	mov := &entity.MovimientoAlmacen{
		ID:         uuid.New().String(),
		ProductoID: in.ProductoID,
		Tipo:       entity.MovimientoEgreso,
		Cantidad:   in.Cantidad,
		Fecha:      time.Now(),
	}
	if err := uc.movimientos.Create(mov); err != nil {
		uc.log.Error().Err(err).Str("venta_id", ventaID).Str("producto_id", in.ProductoID).
			Msg("egreso de almacén no registrado para la línea")
		return det, nil
	}
	if err := uc.productos.AjustarStock(in.ProductoID, -in.Cantidad); err != nil {
		uc.log.Error().Err(err).Str("venta_id", ventaID).Str("producto_id", in.ProductoID).
			Msg("ajuste de stock fallido para la línea")
	}
	return det, nil
}

// GetByID obtiene la venta con sus líneas. Si las líneas no se pueden leer
// se devuelve la venta con la lista vacía, no un error.
func (uc *UseCase) GetByID(id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado("venta no encontrada")
	}
	resp := toVentaResponse(venta)
	detalles, err := uc.ventas.GetDetalles(id)
	if err != nil {
		uc.log.Warn().Err(err).Str("venta_id", id).Msg("no se pudieron leer las líneas de la venta")
		return resp, nil
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, *toDetalleResponse(d))
	}
	return resp, nil
}

// List lista todas las ventas sin sus líneas.
func (uc *UseCase) List() ([]dto.VentaResponse, error) {
	list, err := uc.ventas.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVentaResponse(v))
	}
	return items, nil
}

// Update actualiza la cabecera. La diferencia solo se recalcula cuando el
// payload trae total o adelanto.
func (uc *UseCase) Update(id string, in dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado("venta no encontrada")
	}
	if in.ClienteID != nil {
		venta.ClienteID = *in.ClienteID
	}
	if in.UsuarioID != nil {
		venta.UsuarioID = *in.UsuarioID
	}
	recalcular := false
	if in.Total != nil {
		venta.Total = in.Total.ODecimal()
		recalcular = true
	}
	if in.Adelanto != nil {
		venta.Adelanto = in.Adelanto.ODecimal()
		recalcular = true
	}
	if recalcular {
		venta.Diferencia = entity.CalcularDiferencia(venta.Total, venta.Adelanto)
	}
	if in.DireccionEnvio != nil {
		venta.DireccionEnvio = *in.DireccionEnvio
	}
	if in.Transportista != nil {
		venta.Transportista = *in.Transportista
	}
	if err := uc.ventas.Update(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// Pagar registra un abono. Solo desde pendiente o parcial. El adelanto nuevo
// se recorta al total. Si el abono no cubre el restante, el estado queda en
// pendiente aunque haya pago parcial acumulado.
func (uc *UseCase) Pagar(id string, in dto.PagarVentaRequest) (*dto.VentaResponse, error) {
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado("venta no encontrada")
	}
	if venta.Estado != entity.VentaPendiente && venta.Estado != entity.VentaParcial {
		return nil, domain.ErrConflicto("la venta no admite pagos en su estado actual")
	}
	monto := in.Monto.ODecimal()
	if !monto.IsPositive() {
		return nil, domain.ErrValidacion("el monto del pago debe ser mayor que cero")
	}
	nuevoAdelanto := venta.Adelanto.Add(monto)
	if nuevoAdelanto.GreaterThan(venta.Total) {
		nuevoAdelanto = venta.Total
	}
	venta.Adelanto = nuevoAdelanto
	venta.Diferencia = entity.CalcularDiferencia(venta.Total, nuevoAdelanto)
	if nuevoAdelanto.GreaterThanOrEqual(venta.Total) {
		venta.Estado = entity.VentaPagada
	} else {
		venta.Estado = entity.VentaPendiente
	}
	if err := uc.ventas.Update(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

// Anular anula la venta previa re-autenticación de un administrador con sus
// credenciales en el cuerpo. No hay guarda de estado: una venta pagada
// también se puede anular.
func (uc *UseCase) Anular(id string, in dto.AnularVentaRequest) (*dto.VentaResponse, error) {
	usuario, err := uc.usuarios.GetByLogin(in.Usuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrAutenticacion("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrAutenticacion("credenciales inválidas")
	}
	if usuario.Rol != entity.RolAdmin {
		return nil, domain.ErrAutorizacion("solo un administrador puede anular ventas")
	}
	venta, err := uc.ventas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNoEncontrado("venta no encontrada")
	}
	venta.Estado = entity.VentaAnulada
	if err := uc.ventas.Update(venta); err != nil {
		return nil, err
	}
	return toVentaResponse(venta), nil
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	return &dto.VentaResponse{
		ID:             v.ID,
		ClienteID:      v.ClienteID,
		ClienteNombre:  v.ClienteNombre,
		UsuarioID:      v.UsuarioID,
		UsuarioNombre:  v.UsuarioNombre,
		Total:          v.Total,
		Adelanto:       v.Adelanto,
		Diferencia:     v.Diferencia,
		Estado:         v.Estado,
		DireccionEnvio: v.DireccionEnvio,
		Transportista:  v.Transportista,
		Fecha:          v.Fecha,
		Detalles:       []dto.DetalleVentaResponse{},
	}
}

func toDetalleResponse(d *entity.DetalleVenta) *dto.DetalleVentaResponse {
	if d == nil {
		return nil
	}
	return &dto.DetalleVentaResponse{
		ID:             d.ID,
		VentaID:        d.VentaID,
		ProductoID:     d.ProductoID,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Subtotal:       d.Subtotal,
	}
}
