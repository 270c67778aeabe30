package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aliaa11/userboard/internal/buildinfo"
	"github.com/aliaa11/userboard/internal/cli"
	"github.com/aliaa11/userboard/internal/config"
	"github.com/aliaa11/userboard/internal/logging"
)

func main() {

	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
