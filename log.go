package nkdemo

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for the demo.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Logger returns the shared demo logger. Backends log through it so that
// -v affects the whole program.
func Logger() *slog.Logger {
	return demoLogger
}

var demoLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
