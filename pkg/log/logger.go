package log

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DebugEnv enables debug-level trace output when set to a non-empty value.
// Normal runs keep the logger at info level; mntdf only emits debug events,
// so stderr stays reserved for user-facing diagnostics.
const DebugEnv = "MNTDF_DEBUG"

var Logger zerolog.Logger

func init() {
	// Console writer on stderr so trace output never mixes into the table
	// printed on stdout.
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	Logger = zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	if os.Getenv(DebugEnv) != "" {
		Logger = Logger.Level(zerolog.DebugLevel)
	}

	// Set global logger
	log.Logger = Logger
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Fatal logs a fatal message and exits.
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// SetDebugMode switches the logger to debug level.
func SetDebugMode() {
	Logger = Logger.Level(zerolog.DebugLevel)
	log.Logger = Logger
}
