package config

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. APP_ENV=production selects the
// sampling JSON config, anything else the development console one.
func NewLogger(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}
