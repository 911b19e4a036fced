package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/diariotrade/diario/cmd/diario/cmd"
	"github.com/diariotrade/diario/internal/logger"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init(logger.FromEnv()); err != nil {
		os.Exit(1)
	}
	defer logger.Shutdown(context.Background())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
