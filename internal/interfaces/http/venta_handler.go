package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/venta"
)

// VentaHandler maneja el ciclo de vida de las ventas.
type VentaHandler struct {
	uc *venta.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *venta.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// List lista todas las ventas sin líneas.
func (h *VentaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// GetByID obtiene una venta con sus líneas.
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Create crea una venta con sus líneas. Las líneas fallidas no abortan.
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreado(c, out)
}

// Update actualiza la cabecera de una venta.
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Pagar registra un abono sobre una venta pendiente o parcial.
func (h *VentaHandler) Pagar(c *fiber.Ctx) error {
	var in dto.PagarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Pagar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Anular anula una venta previa re-autenticación de un admin.
func (h *VentaHandler) Anular(c *fiber.Ctx) error {
	var in dto.AnularVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Anular(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}
