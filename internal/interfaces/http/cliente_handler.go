package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// ClienteHandler maneja las peticiones HTTP del registro de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List lista todos los clientes.
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// GetByID obtiene un cliente por ID.
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Create crea un cliente. El documento acepta número o cadena numérica.
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreado(c, out)
}

// Update actualiza campos de un cliente.
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete desactiva un cliente. Baja lógica.
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Desactivar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Respuesta{Success: true, Message: "cliente desactivado"})
}
