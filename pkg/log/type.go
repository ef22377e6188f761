package log

import "go.uber.org/zap"

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // development, production
	Encoding     string // console, json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)
