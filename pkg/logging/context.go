package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in the context, or the default
// logger if the context carries none. The server middleware stores its
// request-scoped logger with zerolog's WithContext.
func FromContext(ctx context.Context) zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return defaultLogger
	}
	return *logger
}
