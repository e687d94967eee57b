package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

const busquedaLimiteDefault = 50

// ProductoUseCase casos de uso CRUD del catálogo. El stock no se toca por
// aquí: solo los movimientos de almacén lo modifican.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto activo. El código debe ser único y no vacío.
func (uc *ProductoUseCase) Create(in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	codigo := strings.TrimSpace(in.Codigo)
	if codigo == "" {
		return nil, domain.ErrValidacion("el código del producto es obligatorio")
	}
	if strings.TrimSpace(in.Descripcion) == "" {
		return nil, domain.ErrValidacion("la descripción del producto es obligatoria")
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return nil, domain.ErrValidacion("el stock inicial no puede ser negativo")
	}
	existente, err := uc.repo.GetByCodigo(codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado("el código del producto ya existe")
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:             uuid.New().String(),
		Codigo:         codigo,
		Descripcion:    in.Descripcion,
		Stock:          stock,
		PrecioCompra:   in.PrecioCompra.Valor,
		PrecioEspecial: in.PrecioEspecial.Valor,
		PrecioMayoreo:  in.PrecioMayoreo.Valor,
		PrecioGeneral:  in.PrecioGeneral.Valor,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNoEncontrado("producto no encontrado")
	}
	return toProductoResponse(producto), nil
}

// Update actualiza campos de un producto. El stock se ignora siempre.
func (uc *ProductoUseCase) Update(id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNoEncontrado("producto no encontrado")
	}
	if in.Codigo != nil {
		codigo := strings.TrimSpace(*in.Codigo)
		if codigo == "" {
			return nil, domain.ErrValidacion("el código del producto es obligatorio")
		}
		producto.Codigo = codigo
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.PrecioCompra != nil {
		producto.PrecioCompra = in.PrecioCompra.Valor
	}
	if in.PrecioEspecial != nil {
		producto.PrecioEspecial = in.PrecioEspecial.Valor
	}
	if in.PrecioMayoreo != nil {
		producto.PrecioMayoreo = in.PrecioMayoreo.Valor
	}
	if in.PrecioGeneral != nil {
		producto.PrecioGeneral = in.PrecioGeneral.Valor
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista todos los productos, activos e inactivos.
func (uc *ProductoUseCase) List() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Search busca por código o descripción. Con término vacío lista todo.
func (uc *ProductoUseCase) Search(termino string) ([]dto.ProductoResponse, error) {
	termino = strings.TrimSpace(termino)
	if termino == "" {
		return uc.List()
	}
	list, err := uc.repo.Search(termino, busquedaLimiteDefault)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Desactivar marca un producto como inactivo. Baja lógica, nunca DELETE.
func (uc *ProductoUseCase) Desactivar(id string) error {
	return uc.repo.Desactivar(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:             p.ID,
		Codigo:         p.Codigo,
		Descripcion:    p.Descripcion,
		Stock:          p.Stock,
		PrecioCompra:   p.PrecioCompra,
		PrecioEspecial: p.PrecioEspecial,
		PrecioMayoreo:  p.PrecioMayoreo,
		PrecioGeneral:  p.PrecioGeneral,
		Activo:         p.Activo,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
