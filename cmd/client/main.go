package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jcruzdev/ipnavigator/internal/buildinfo"
	"github.com/jcruzdev/ipnavigator/internal/client/cli"
	"github.com/jcruzdev/ipnavigator/internal/client/config"
	"github.com/jcruzdev/ipnavigator/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
