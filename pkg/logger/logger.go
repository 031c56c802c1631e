package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process-wide zap logger. Production encoding by default,
// human-readable development output when ENV=development.
func New() (*zap.Logger, error) {
	if os.Getenv("ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
