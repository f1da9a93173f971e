package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. APP_ENV=production selects the JSON
// production config; anything else gets the console development config.
func New(env string) (*zap.Logger, error) {
	switch strings.ToLower(env) {
	case "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}
