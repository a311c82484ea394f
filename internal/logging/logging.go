// Package logging constructs the process-wide logger.
package logging

import (
	"go.uber.org/zap"
)

// New builds a sugared zap logger. Debug switches to the development
// encoder with debug-level output.
func New(debug bool) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
