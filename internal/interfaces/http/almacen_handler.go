package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// AlmacenHandler maneja el libro de movimientos de almacén.
type AlmacenHandler struct {
	uc *usecase.AlmacenUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// List lista todos los movimientos, del más reciente al más antiguo.
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// GetByID obtiene un movimiento por ID.
func (h *AlmacenHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Create registra un movimiento y aplica el delta de stock al producto.
func (h *AlmacenHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Registrar(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreado(c, out)
}
