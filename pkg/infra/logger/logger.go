package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

const consoleHookBufferSize = 4096

// NewLogger builds the process logger. Output goes through the async
// console hook so the invocation path never blocks on stdout.
func NewLogger(logLevel string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(parseLevel(logLevel))
	l.SetOutput(io.Discard)
	l.AddHook(NewAsyncConsoleHook(consoleHookBufferSize))
	return l
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
