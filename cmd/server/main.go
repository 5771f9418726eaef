package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/geoportal/internal/logging"
	"github.com/dmitrijs2005/geoportal/internal/server"
	"github.com/dmitrijs2005/geoportal/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.NewJSON(os.Stdout, cfg.Debug)

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		logger.Error(ctx, err.Error())
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
