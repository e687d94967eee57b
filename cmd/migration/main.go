// Comando de migraciones: aplica los archivos SQL de migrations/ en orden.
//
//	go run ./cmd/migration            aplica todo lo pendiente
//	go run ./cmd/migration -down 1    revierte la última migración
package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tu-usuario/ventas-api/pkg/config"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

func main() {
	down := flag.Int("down", 0, "número de migraciones a revertir (0 = aplicar todo)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	m, err := migrate.New("file://migrations", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear instancia de migrate")
	}
	defer m.Close()

	if *down > 0 {
		if err := m.Steps(-*down); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("revertir migraciones")
		}
		log.Info().Int("pasos", *down).Msg("migraciones revertidas")
		return
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("sin migraciones pendientes")
			return
		}
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	version, dirty, _ := m.Version()
	log.Info().Str("version", fmt.Sprintf("%d", version)).Bool("dirty", dirty).
		Msg("migraciones aplicadas")
}
