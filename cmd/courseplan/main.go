package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/courseplan/internal/catalog"
	"github.com/alexanderramin/courseplan/internal/cli"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/db"
	"github.com/alexanderramin/courseplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open the catalog store written by "catalog import".
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.WithSession(service.NewLogUseCaseObserver(os.Stderr), service.NewSessionID())
	}

	deps := service.LoaderDeps{
		Timeout:  cfg.FetchTimeout(),
		Observer: observer,
	}
	load := func(ctx context.Context) (*catalog.Catalog, error) {
		return service.LoadCatalog(ctx, cfg.Catalog, deps)
	}

	app := &cli.App{
		Catalog:       service.NewCatalogService(load, uow, observer),
		Observer:      observer,
		Source:        cfg.Catalog,
		DBPath:        cfg.DBPath,
		Concentration: cfg.Concentration,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
