package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"log/slog"

	"github.com/mattn/go-isatty"

	"reelmatch/internal/config"
	"reelmatch/internal/extension"
	"reelmatch/internal/logging"
	"reelmatch/internal/reconcile"
	"reelmatch/internal/tmdb"
)

func newLogger(cfg *config.Config, writer io.Writer) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: writer,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func newCatalogClient(cfg *config.Config) (*tmdb.Client, error) {
	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(time.Duration(cfg.TMDB.RequestTimeout)*time.Second))
	if err != nil {
		return nil, fmt.Errorf("create catalog client: %w", err)
	}
	return client, nil
}

func newResolver(cfg *config.Config, client *tmdb.Client, logger *slog.Logger) *reconcile.Resolver {
	return reconcile.NewResolver(client, logger, reconcile.Options{
		MaxCandidates: cfg.Reconcile.MaxCandidates,
		FetchWorkers:  cfg.Reconcile.FetchWorkers,
	})
}

func newExtender(cfg *config.Config, client *tmdb.Client, logger *slog.Logger) *extension.Extender {
	return extension.NewExtender(client, logger, cfg.Reconcile.FetchWorkers)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
