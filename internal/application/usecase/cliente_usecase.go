package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD del registro de clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func parseDocumento(t dto.Texto) (int64, error) {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return 0, domain.ErrValidacion("el documento del cliente es obligatorio")
	}
	doc, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.ErrValidacion("el documento debe ser numérico")
	}
	return doc, nil
}

// Create crea un cliente activo. El documento es único.
func (uc *ClienteUseCase) Create(in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrValidacion("el nombre del cliente es obligatorio")
	}
	doc, err := parseDocumento(in.Documento)
	if err != nil {
		return nil, err
	}
	existente, err := uc.repo.GetByDocumento(doc)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado("el documento del cliente ya está registrado")
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Documento: doc,
		Telefono:  in.Telefono,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado("cliente no encontrado")
	}
	return toClienteResponse(cliente), nil
}

// Update actualiza campos de un cliente.
func (uc *ClienteUseCase) Update(id string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado("cliente no encontrado")
	}
	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			return nil, domain.ErrValidacion("el nombre del cliente es obligatorio")
		}
		cliente.Nombre = *in.Nombre
	}
	if in.Documento != nil {
		doc, err := parseDocumento(*in.Documento)
		if err != nil {
			return nil, err
		}
		cliente.Documento = doc
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista todos los clientes.
func (uc *ClienteUseCase) List() ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items, nil
}

// Desactivar marca un cliente como inactivo. Baja lógica, nunca DELETE.
func (uc *ClienteUseCase) Desactivar(id string) error {
	return uc.repo.Desactivar(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Documento: c.Documento,
		Telefono:  c.Telefono,
		Activo:    c.Activo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
