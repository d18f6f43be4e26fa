package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/ndelacroix/meetings-api/internal/config"
	"github.com/ndelacroix/meetings-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
	if err := srv.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
