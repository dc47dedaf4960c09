package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-posts/internal/adapter"
	"github.com/MKhiriev/go-posts/internal/client"
	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger(cfg.LogLevel)

	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return
	}

	api, err := adapter.NewHTTPPostsAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create posts adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
