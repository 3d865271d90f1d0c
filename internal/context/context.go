package context

import (
	"context"

	"github.com/pterodeploy/pteroctl/internal/config"
)

type contextKey int

const (
	configKey contextKey = iota
)

func ConfigFromContext(ctx context.Context) config.Config {
	cfg, _ := ctx.Value(configKey).(config.Config)

	return cfg
}

func contextWithConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// SetConfigContext loads the config file and stores it in the context so
// every action resolves credentials the same way.
func SetConfigContext(ctx context.Context, path string) (context.Context, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, err
	}

	return contextWithConfig(ctx, cfg), nil
}
