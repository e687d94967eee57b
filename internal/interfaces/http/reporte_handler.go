package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// ReporteHandler expone los reportes agregados de solo lectura.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// ProductosMasVendidos ranking de productos por unidades vendidas.
func (h *ReporteHandler) ProductosMasVendidos(c *fiber.Ctx) error {
	out, err := h.uc.ProductosMasVendidos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// VentasPorVendedor totales acumulados por vendedor.
func (h *ReporteHandler) VentasPorVendedor(c *fiber.Ctx) error {
	out, err := h.uc.VentasPorVendedor(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// ClientesMasCompras ranking de clientes por monto comprado.
func (h *ReporteHandler) ClientesMasCompras(c *fiber.Ctx) error {
	out, err := h.uc.ClientesMasCompras(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// GananciasDiarias totales por día.
func (h *ReporteHandler) GananciasDiarias(c *fiber.Ctx) error {
	out, err := h.uc.GananciasDiarias(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// GananciasMensuales totales por mes.
func (h *ReporteHandler) GananciasMensuales(c *fiber.Ctx) error {
	out, err := h.uc.GananciasMensuales(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}
