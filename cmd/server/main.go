package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	log "github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salarycast/salarycast/infra/history"
	"github.com/salarycast/salarycast/internal/logging"
	"github.com/salarycast/salarycast/pkg/app"
	"github.com/salarycast/salarycast/pkg/config"
	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/model"
	"github.com/salarycast/salarycast/webapi"
)

// @title Salary Predictor API
// @version 1.0.0
// @description Salary prediction API documentation
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := logging.Setup(cfg.Log)

	artifact, err := model.Load(cfg.Model.Path)
	switch {
	case errors.Is(err, model.ErrArtifactMissing):
		return fmt.Errorf("model artifact %q not found, run the train command first: %w", cfg.Model.Path, err)
	case errors.Is(err, model.ErrArtifactMalformed):
		return fmt.Errorf("model artifact %q is unreadable, re-run the train command: %w", cfg.Model.Path, err)
	case err != nil:
		return fmt.Errorf("failed to load model artifact: %w", err)
	}
	logger.Info("model loaded",
		"path", cfg.Model.Path,
		"trained_at", artifact.TrainedAt,
		"metrics", artifact.Metrics.String(),
	)

	rates := currency.NewRegistry()
	if cfg.Currency.TablePath != "" {
		if err := rates.LoadFile(cfg.Currency.TablePath); err != nil {
			return fmt.Errorf("failed to load currency table: %w", err)
		}
		logger.Info("currency table loaded", "path", cfg.Currency.TablePath, "codes", rates.Count())
	}

	deps := &app.Deps{
		Predictor: artifact,
		Rates:     rates,
		Logger:    logger,
	}
	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer store.Close() //nolint: errcheck
		deps.History = store
		logger.Info("prediction history enabled", "path", cfg.History.Path)
	}

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, logger)
	}

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("serving metrics", "address", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}
