package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
)

// respondOK respuesta 200 con el sobre estándar.
func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

// respondCreado respuesta 201 con el sobre estándar.
func respondCreado(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// respondListado respuesta 200 de listado con count.
func respondListado(c *fiber.Ctx, data any, count int) error {
	return c.Status(fiber.StatusOK).JSON(dto.OKConteo(data, count))
}

// respondError mapea el Kind del error de dominio a un status HTTP en un
// único punto. Los errores no clasificados salen como 500 con mensaje
// genérico; el detalle queda solo en el log.
func respondError(c *fiber.Ctx, err error) error {
	switch domain.KindOf(err) {
	case domain.KindValidacion, domain.KindDuplicado, domain.KindConflicto:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo(err.Error()))
	case domain.KindNoEncontrado:
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo(err.Error()))
	case domain.KindAutenticacion:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo(err.Error()))
	case domain.KindAutorizacion:
		return c.Status(fiber.StatusForbidden).JSON(dto.Fallo(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("error interno del servidor"))
	}
}

// respondCuerpoInvalido respuesta 400 para cuerpos JSON que no parsean.
func respondCuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo de la petición inválido"))
}
