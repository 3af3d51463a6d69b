package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Logger the global logger for this project
var Logger = logrus.New()

const (
	//DateFormat is project-standard date format.
	DateFormat = "2006-01-02"
	//TimeFormat is project-standard time format.
	TimeFormat = "15:04:05"
	//DateTimeFormat is project-standard datetime format.
	DateTimeFormat = "2006-01-02 15:04:05"
)

var logFile *os.File

func init() {
	Logger.SetFormatter(&prefixed.TextFormatter{
		TimestampFormat: DateTimeFormat,
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	Logger.SetOutput(os.Stderr)
	logrus.RegisterExitHandler(func() {
		if logFile != nil {
			logFile.Close()
		}
	})
}

// Configure sets the log level and, when logFilePath is not empty, tees
// log output into that file. An existing file is truncated.
func Configure(logLevel, logFilePath string) (e error) {
	if logLevel != "" {
		var lvl logrus.Level
		if lvl, e = logrus.ParseLevel(logLevel); e != nil {
			return errors.Wrapf(e, "invalid log level: %s", logLevel)
		}
		Logger.SetLevel(lvl)
	}
	if logFilePath == "" {
		return
	}
	if logFile != nil {
		logFile.Close()
	}
	if logFile, e = os.OpenFile(logFilePath, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0666); e != nil {
		return errors.Wrapf(e, "failed to open log file %s", logFilePath)
	}
	Logger.SetOutput(io.MultiWriter(os.Stderr, logFile))
	return
}
