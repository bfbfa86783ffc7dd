package rest

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// makeLogger configures the process-wide logger from the LOG_FORMAT and
// LOG_LEVEL environment variables. JSON output is the default, as these logs
// are mostly consumed by aggregators.
func makeLogger() *logrus.Logger {
	logger := logrus.New()

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "trace":
		logger.SetLevel(logrus.TraceLevel)
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
