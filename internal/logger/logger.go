// Package logger constructs the structured zap logger used by the server.
package logger

import "go.uber.org/zap"

// New returns a logger tuned for the given environment: JSON output at
// info level in production, console output with debug level otherwise.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
