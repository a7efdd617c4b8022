// Package config holds the application configuration, loaded from the
// environment with optional .env overrides.
package config

import (
	"time"
)

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[salarycast]"`
}

// Model locates the trained pipeline artifact shared by both commands:
// cmd/train writes it, cmd/server refuses to start without it.
type Model struct {
	Path string `envconfig:"PATH" default:"salary_prediction_model.gob"`
}

type Dataset struct {
	Path      string  `envconfig:"PATH" default:"ds_salaries.csv"`
	TestSize  float64 `envconfig:"TEST_SIZE" default:"0.2"`
	Seed      int64   `envconfig:"SEED" default:"42"`
	TreeCount int     `envconfig:"TREE_COUNT" default:"100"`
}

// Currency optionally points at a JSON rate table overriding the built-in
// one, keeping rates injectable rather than hard-coded.
type Currency struct {
	TablePath string `envconfig:"TABLE_PATH"`
}

// Predict carries serving-side behavior knobs. Delay is the fixed pause
// applied before a result is shown.
type Predict struct {
	Delay time.Duration `envconfig:"DELAY" default:"1s"`
}

// History enables the sqlite audit log of served predictions. An empty
// path disables it.
type History struct {
	Path string `envconfig:"PATH"`
}

// Metrics configures the Prometheus scrape endpoint, served on its own
// listener. An empty address disables it.
type Metrics struct {
	Addr string `envconfig:"ADDR" default:":9090"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Model     *Model     `envconfig:"MODEL"`
	Dataset   *Dataset   `envconfig:"DATASET"`
	Currency  *Currency  `envconfig:"CURRENCY"`
	Predict   *Predict   `envconfig:"PREDICT"`
	History   *History   `envconfig:"HISTORY"`
	Metrics   *Metrics   `envconfig:"METRICS"`
	Auth      *Auth      `envconfig:"AUTH"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
