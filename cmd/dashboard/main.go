package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/client"
	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/service"
	"github.com/MKhiriev/go-user-dashboard/internal/store"
	"github.com/MKhiriev/go-user-dashboard/internal/tui"
	"github.com/MKhiriev/go-user-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dashboard needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("user-dashboard", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	directory := adapter.NewHTTPUserDirectoryAdapter(cfg.Adapter, log)
	services := service.NewClientServices(storages, directory, cfg.Storage.HistorySize, buildInfo, log)
	ui := tui.New(services, cfg.Adapter.BaseURL, log)

	app, err := client.NewApp(ui, log, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
