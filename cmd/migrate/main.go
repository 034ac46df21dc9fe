package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yonaiky/ResidentManagement-sub000/internal/infrastructure/postgres"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/config"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if len(os.Args) < 2 {
		fmt.Println("Uso: migrate [up|down|steps N|version]")
		os.Exit(1)
	}

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Component("migrate"))
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		if err := m.Up(); err != nil {
			log.Fatal().Err(err).Msg("migración up")
		}
		log.Info().Msg("migraciones aplicadas")

	case "down":
		if err := m.Down(); err != nil {
			log.Fatal().Err(err).Msg("migración down")
		}
		log.Info().Msg("migraciones revertidas")

	case "steps":
		if len(os.Args) < 3 {
			log.Fatal().Msg("steps requiere un número")
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("argumento de steps inválido")
		}
		if err := m.Steps(n); err != nil {
			log.Fatal().Err(err).Msg("migración steps")
		}
		log.Info().Int("steps", n).Msg("migraciones aplicadas")

	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatal().Err(err).Msg("leer versión")
		}
		fmt.Printf("versión: %d, sucia: %v\n", v, dirty)

	default:
		fmt.Printf("comando desconocido: %s\n", os.Args[1])
		os.Exit(1)
	}
}
