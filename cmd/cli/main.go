package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ARKNravi/Gelatik/internal/buildinfo"
	"github.com/ARKNravi/Gelatik/internal/client/cli"
	"github.com/ARKNravi/Gelatik/internal/client/config"
	"github.com/ARKNravi/Gelatik/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
