package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/sunflowers/shopfront/internal/buildinfo"
	"github.com/sunflowers/shopfront/internal/client/cli"
	"github.com/sunflowers/shopfront/internal/client/config"
	"github.com/sunflowers/shopfront/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
