package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/cotizacion"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/application/venta"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC   *usecase.ProductoUseCase
	ClienteUC    *usecase.ClienteUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	AlmacenUC    *usecase.AlmacenUseCase
	ReporteUC    *usecase.ReporteUseCase
	VentaUC      *venta.UseCase
	CotizacionUC *cotizacion.UseCase
	AuthUC       *auth.UseCase
	PDF          CotizacionPDFGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Products (público)
	products := api.Group("/products")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	products.Get("/", productoHandler.List)
	products.Get("/:id", productoHandler.GetByID)
	products.Post("/", productoHandler.Create)
	products.Put("/:id", productoHandler.Update)
	products.Delete("/:id", productoHandler.Delete)

	// Clients (público)
	clients := api.Group("/clients")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clients.Get("/", clienteHandler.List)
	clients.Get("/:id", clienteHandler.GetByID)
	clients.Post("/", clienteHandler.Create)
	clients.Put("/:id", clienteHandler.Update)
	clients.Delete("/:id", clienteHandler.Delete)

	// Almacén (público)
	almacen := api.Group("/almacen")
	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacen.Get("/", almacenHandler.List)
	almacen.Get("/:id", almacenHandler.GetByID)
	almacen.Post("/", almacenHandler.Create)

	// Reportes (público, solo lectura)
	reportes := api.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/productos-mas-vendidos", reporteHandler.ProductosMasVendidos)
	reportes.Get("/ventas-por-vendedor", reporteHandler.VentasPorVendedor)
	reportes.Get("/clientes-mas-compras", reporteHandler.ClientesMasCompras)
	reportes.Get("/ganancias-diarias", reporteHandler.GananciasDiarias)
	reportes.Get("/ganancias-mensuales", reporteHandler.GananciasMensuales)

	authRequired := AuthMiddleware(deps.JWTSecret)

	// Usuarios (solo admin)
	users := api.Group("/users", authRequired, RequireRole("admin"))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	users.Get("/", usuarioHandler.List)
	users.Get("/:id", usuarioHandler.GetByID)
	users.Post("/", usuarioHandler.Create)
	users.Put("/:id", usuarioHandler.Update)
	users.Delete("/:id", usuarioHandler.Delete)

	// Ventas: lectura pública, mutaciones con Bearer. Anular además
	// re-autentica al admin desde el cuerpo de la petición.
	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Post("/", authRequired, ventaHandler.Create)
	ventas.Put("/:id", authRequired, ventaHandler.Update)
	ventas.Put("/:id/pagar", authRequired, ventaHandler.Pagar)
	ventas.Put("/:id/anular", authRequired, ventaHandler.Anular)

	// Cotizaciones (protegido completo)
	cotizaciones := api.Group("/cotizaciones", authRequired)
	cotizacionHandler := NewCotizacionHandler(deps.CotizacionUC, deps.PDF)
	cotizaciones.Get("/", cotizacionHandler.List)
	cotizaciones.Get("/estadisticas/resumen", cotizacionHandler.Resumen)
	cotizaciones.Get("/:id", cotizacionHandler.GetByID)
	cotizaciones.Post("/", cotizacionHandler.Create)
	cotizaciones.Put("/:id", cotizacionHandler.Update)
	cotizaciones.Delete("/:id", cotizacionHandler.Delete)
	cotizaciones.Get("/:id/detalle", cotizacionHandler.GetDetalles)
	cotizaciones.Post("/:id/detalle", cotizacionHandler.AgregarDetalle)
	cotizaciones.Put("/:id/convertir-venta", cotizacionHandler.ConvertirVenta)
	cotizaciones.Get("/:id/preparar-venta", cotizacionHandler.PrepararVenta)
	cotizaciones.Get("/:id/pdf", cotizacionHandler.PDF)

	// Rutas no registradas: 404 con el sobre estándar.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("ruta no encontrada"))
	})
}
