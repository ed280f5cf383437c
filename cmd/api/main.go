package main

import (
	"os"

	_ "controle_financeiro/docs"
	"controle_financeiro/internal/adapter/http/routes"
	"controle_financeiro/internal/config"
	"controle_financeiro/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Controle Financeiro API
// @version         1.0
// @description     CRUD of contas (bills) backed by PostgreSQL or DynamoDB.

// @host localhost:5000

// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.Setup("info", "json")
		l.Fatal().Err(err).Msg("invalid configuration")
	}

	l := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	if err := routes.Run(cfg); err != nil {
		l.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
