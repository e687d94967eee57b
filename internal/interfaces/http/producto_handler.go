package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Listar o buscar productos
// @Tags         products
// @Produce      json
// @Param        search  query  string  false  "Busca en código y descripción"
// @Success      200  {object}  dto.Respuesta
// @Router       /api/products [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	termino := c.Query("search")
	out, err := h.uc.Search(termino)
	if err != nil {
		return respondError(c, err)
	}
	return respondListado(c, out, len(out))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/products/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201  {object}  dto.Respuesta
// @Failure      400  {object}  dto.Respuesta
// @Router       /api/products [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreado(c, out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/products/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return respondCuerpoInvalido(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary      Desactivar producto (baja lógica)
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Respuesta
// @Failure      404  {object}  dto.Respuesta
// @Router       /api/products/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Desactivar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Respuesta{Success: true, Message: "producto desactivado"})
}
