package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the global logrus logger. LOG_LEVEL selects the
// level (default info).
func InitLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
