// Package logging provides structured logging with zap.
package logging

import "go.uber.org/zap"

// New creates a zap.Logger for the given environment.
func New(env string) *zap.Logger {
	if env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}
