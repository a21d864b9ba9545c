package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Leveled logger used by the catalog service, backed by zerolog.
// Provides Debugf/Infof/Warnf/Errorf/Fatalf, structured With fields and Init(level).

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
	LevelFatal = zerolog.FatalLevel
)

// Fields are structured key/value pairs attached to a single entry.
type Fields map[string]interface{}

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stdout)
	level  = LevelInfo
	exit   = os.Exit
)

func newLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	case "fatal":
		level = LevelFatal
	default:
		level = LevelInfo
	}
}

// SetOutput redirects log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

func event(l Level) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	if l < level {
		return nil
	}
	return logger.WithLevel(l)
}

func Debugf(format string, v ...interface{}) { event(LevelDebug).Msgf(format, v...) }
func Infof(format string, v ...interface{})  { event(LevelInfo).Msgf(format, v...) }
func Warnf(format string, v ...interface{})  { event(LevelWarn).Msgf(format, v...) }
func Errorf(format string, v ...interface{}) { event(LevelError).Msgf(format, v...) }

// Fatalf always logs and then exits with status 1.
func Fatalf(format string, v ...interface{}) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.WithLevel(LevelFatal).Msgf(format, v...)
	exit(1)
}

// With logs msg at l with structured fields.
func With(l Level, msg string, f Fields) {
	e := event(l)
	if e == nil {
		return
	}
	if f != nil {
		e = e.Fields(map[string]interface{}(f))
	}
	e.Msg(msg)
}

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}
