package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/cotizacion"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
)

// CotizacionPDFGenerator genera la versión imprimible de una cotización.
type CotizacionPDFGenerator interface {
	GenerateCotizacionPDF(ctx context.Context, cot *entity.Cotizacion, detalles []*entity.DetalleCotizacion) ([]byte, error)
}

// CotizacionHandler maneja las cotizaciones y su conversión a venta.
type CotizacionHandler struct {
	uc  *cotizacion.UseCase
	pdf CotizacionPDFGenerator
}

// NewCotizacionHandler construye el handler.
func NewCotizacionHandler(uc *cotizacion.UseCase, pdf CotizacionPDFGenerator) *CotizacionHandler {
	return &CotizacionHandler{uc: uc, pdf: pdf}
}

// List lista todas las cotizaciones sin líneas.
func (h *CotizacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// GetByID obtiene una cotización con sus líneas.
func (h *CotizacionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Create crea una cotización con sus líneas.
func (h *CotizacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreado(c, out)
}

// Update actualiza campos de una cotización.
func (h *CotizacionHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete elimina una cotización y sus líneas.
func (h *CotizacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Respuesta{Success: true, Message: "cotización eliminada"})
}

// GetDetalles lista las líneas de una cotización.
func (h *CotizacionHandler) GetDetalles(c *fiber.Ctx) error {
	out, err := h.uc.GetDetalles(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// AgregarDetalle agrega una línea a una cotización existente.
func (h *CotizacionHandler) AgregarDetalle(c *fiber.Ctx) error {
	var in dto.DetalleCotizacionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.AgregarDetalle(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreado(c, out)
}

// ConvertirVenta marca la cotización como convertida y devuelve el payload de
// venta calculado. No inserta ninguna venta.
func (h *CotizacionHandler) ConvertirVenta(c *fiber.Ctx) error {
	out, err := h.uc.ConvertirVenta(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// PrepararVenta devuelve el payload de venta calculado sin cambiar el estado.
func (h *CotizacionHandler) PrepararVenta(c *fiber.Ctx) error {
	out, err := h.uc.PrepararVenta(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Resumen conteos por estado para el dashboard.
func (h *CotizacionHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// PDF genera y descarga la versión imprimible de la cotización.
func (h *CotizacionHandler) PDF(c *fiber.Ctx) error {
	cot, detalles, err := h.uc.ParaPDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	bytes, err := h.pdf.GenerateCotizacionPDF(c.Context(), cot, detalles)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="cotizacion-%s.pdf"`, cot.ID))
	return c.Send(bytes)
}
