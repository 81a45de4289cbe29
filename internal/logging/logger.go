package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared logrus instance for the service.
var Logger = logrus.New()

var once sync.Once

// InitLogger configures the shared logger: JSON formatting, rotation via
// lumberjack, and mirrored output to stdout. logDir may be empty to log to
// stdout only.
func InitLogger(logDir string) {
	once.Do(func() {
		Logger.SetFormatter(&logrus.JSONFormatter{})
		Logger.SetLevel(logrus.InfoLevel)

		if logDir == "" {
			Logger.SetOutput(os.Stdout)
			return
		}

		if err := os.MkdirAll(logDir, 0o700); err != nil {
			Logger.SetOutput(os.Stdout)
			Logger.Warnf("could not create log directory %s, logging to stdout: %v", logDir, err)
			return
		}

		rotated := &lumberjack.Logger{
			Filename:   logDir + "/capstone.log",
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		Logger.SetOutput(io.MultiWriter(os.Stdout, rotated))
	})
}
