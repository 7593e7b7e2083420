// Package logs builds the process-wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"

	"dropzone/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New returns a logger writing to stdout. Records carry the service name and
// environment when configured.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level := slog.LevelInfo
	if raw := cfg.Env.Log.Level; raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", raw)
		}
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Env.Debug}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		logger = logger.With(slog.String("env", cfg.Env.Env))
	}

	return logger, nil
}
