// migrate aplica o revierte el esquema agr_* embebido.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down 1
//	go run ./cmd/migrate version
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jhoicas/agendarep-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agendarep-api/internal/migrate"
	"github.com/jhoicas/agendarep-api/pkg/config"
	"github.com/jhoicas/agendarep-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: migrate up | down N | version")
		os.Exit(2)
	}
	cfg := config.LoadUnvalidated()
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	switch os.Args[1] {
	case "up":
		err = migrate.Up(ctx, pool)
	case "down":
		n := 1
		if len(os.Args) > 2 {
			if n, err = strconv.Atoi(os.Args[2]); err != nil {
				log.Fatal().Str("pasos", os.Args[2]).Msg("down N: N debe ser un entero")
			}
		}
		err = migrate.Down(ctx, pool, n)
	case "version":
		var (
			v     uint
			dirty bool
		)
		v, dirty, err = migrate.Version(ctx, pool)
		if err == nil {
			log.Info().Uint("version", v).Bool("dirty", dirty).Msg("versión del esquema")
		}
	default:
		log.Fatal().Str("comando", os.Args[1]).Msg("comando desconocido")
	}
	if err != nil {
		log.Fatal().Err(err).Str("comando", os.Args[1]).Msg("migración fallida")
	}
	log.Info().Str("comando", os.Args[1]).Msg("migración completada")
}
