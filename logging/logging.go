package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	mu        sync.Mutex
	singleton *log.Logger
)

func getLogger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if singleton == nil {
		singleton = newLogger(os.Stderr, log.InfoLevel)
	}
	return singleton
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "snake 🐍",
	})
	l.SetLevel(level)
	return l
}

// Configure replaces the process logger. level is one of debug, info, warn,
// error; an empty level means info.
func Configure(w io.Writer, level string) error {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		if lvl, err = log.ParseLevel(level); err != nil {
			return err
		}
	}

	mu.Lock()
	singleton = newLogger(w, lvl)
	mu.Unlock()
	return nil
}

// With returns a child logger carrying the given key/value pairs.
func With(keyvals ...interface{}) *log.Logger {
	return getLogger().With(keyvals...)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}
