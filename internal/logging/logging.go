package logging

import (
	"io"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var loggers map[Level]*log.Logger

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	loggers = map[Level]*log.Logger{
		LevelDebug:   log.New(io.Discard, "D ", flags),
		LevelInfo:    log.New(io.Discard, "I ", flags),
		LevelWarning: log.New(io.Discard, "W ", flags),
		LevelError:   log.New(io.Discard, "E ", flags),
	}

	SetLevel(LevelWarning)
}

// SetLevel enables output for all loggers at or above the given level
// and discards output from the others.
func SetLevel(l Level) {
	for lvl, logger := range loggers {
		if lvl >= l {
			logger.SetOutput(os.Stderr)
		} else {
			logger.SetOutput(io.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	loggers[LevelDebug].Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	loggers[LevelInfo].Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	loggers[LevelWarning].Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	loggers[LevelError].Printf(msg, v...)
}
