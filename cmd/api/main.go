package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/application/cotizacion"
	"github.com/tu-usuario/ventas-api/internal/application/usecase"
	"github.com/tu-usuario/ventas-api/internal/application/venta"
	infrapdf "github.com/tu-usuario/ventas-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-api/internal/interfaces/http"
	"github.com/tu-usuario/ventas-api/pkg/config"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	cotizacionRepo := postgres.NewCotizacionRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)

	productoUC := usecase.NewProductoUseCase(productoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	almacenUC := usecase.NewAlmacenUseCase(movimientoRepo, productoRepo, log)
	reporteUC := usecase.NewReporteUseCase(reporteRepo)
	ventaUC := venta.NewUseCase(ventaRepo, productoRepo, movimientoRepo, usuarioRepo, log)
	cotizacionUC := cotizacion.NewUseCase(cotizacionRepo)
	authUC := auth.NewUseCase(usuarioRepo, cfg.JWT)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:   productoUC,
		ClienteUC:    clienteUC,
		UsuarioUC:    usuarioUC,
		AlmacenUC:    almacenUC,
		ReporteUC:    reporteUC,
		VentaUC:      ventaUC,
		CotizacionUC: cotizacionUC,
		AuthUC:       authUC,
		PDF:          pdfGenerator,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
