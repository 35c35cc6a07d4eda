package sdk

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the minimal logging surface hubscan emits progress through.
type Logger interface {
	Infof(template string, args ...any)
}

type contextLoggerValueT string

const ContextLoggerValue = contextLoggerValueT("hubscan-logger")

// LoggerFrom returns the Logger attached to the context, or a production zap
// sugared logger when none was attached.
func LoggerFrom(ctx context.Context) Logger {
	value := ctx.Value(ContextLoggerValue)
	logger, ok := value.(Logger)
	if !ok {
		logger = zap.Must(zap.NewProduction()).Sugar()
	}

	return logger
}
