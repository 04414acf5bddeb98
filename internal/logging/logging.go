// Package logging hands out the scoped loggers used across the module.
// Levels are controlled with the PION_LOG_TRACE, PION_LOG_DEBUG, PION_LOG_INFO,
// PION_LOG_WARN and PION_LOG_ERROR environment variables, e.g.
// PION_LOG_DEBUG=yuvtransform/video.
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}
