// Package app wires the application dependencies into the services the
// web layer consumes.
package app

import (
	"log/slog"

	"github.com/salarycast/salarycast/infra/history"
	"github.com/salarycast/salarycast/pkg/config"
	"github.com/salarycast/salarycast/pkg/currency"
	"github.com/salarycast/salarycast/pkg/model"
	"github.com/salarycast/salarycast/pkg/service/prediction"
)

// Deps contains the externally constructed dependencies. History may be
// nil when auditing is disabled.
type Deps struct {
	Predictor model.Predictor
	Rates     *currency.Registry
	History   *history.Store
	Logger    *slog.Logger
}

type App struct {
	Deps              *Deps
	Config            *config.App
	PredictionService *prediction.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
		PredictionService: prediction.New(
			deps.Predictor,
			deps.Rates,
			deps.History,
			cfg.Predict.Delay,
			deps.Logger,
		),
	}
}
