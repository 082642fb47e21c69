package utils

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	logOnce sync.Once
	sugar   *zap.SugaredLogger
)

// Log returns the process-wide sugared logger. APP_ENV=production gets the
// JSON encoder, everything else the dev console encoder.
func Log() *zap.SugaredLogger {
	logOnce.Do(func() {
		var cfg zap.Config
		switch strings.ToLower(os.Getenv("APP_ENV")) {
		case "prod", "production":
			cfg = zap.NewProductionConfig()
		default:
			cfg = zap.NewDevelopmentConfig()
		}
		logger, err := cfg.Build()
		if err != nil {
			logger = zap.NewNop()
		}
		sugar = logger.Sugar()
	})
	return sugar
}
