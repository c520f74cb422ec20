// Package reclog sets up the process-wide logger used for progress and
// diagnostic output. Results go to stdout directly; everything here is
// stderr-bound per the stdout/stderr separation the CLI requires.
package reclog

import (
	"os"

	"github.com/op/go-logging"
)

// Log is the package-level logger every other package writes through.
var Log = logging.MustGetLogger("")

var stderrFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s}%{color:reset} ▶ %{message}`,
)

// Setup wires Log to stderr at defaultLevel, unless the RECOVER_LOG_LEVEL
// environment variable requests a different level.
func Setup(prefix string, defaultLevel logging.Level) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, prefix, 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)

	switch os.Getenv("RECOVER_LOG_LEVEL") {
	case "CRITICAL":
		leveled.SetLevel(logging.CRITICAL, prefix)
	case "ERROR":
		leveled.SetLevel(logging.ERROR, prefix)
	case "WARNING":
		leveled.SetLevel(logging.WARNING, prefix)
	case "NOTICE":
		leveled.SetLevel(logging.NOTICE, prefix)
	case "INFO":
		leveled.SetLevel(logging.INFO, prefix)
	case "DEBUG":
		leveled.SetLevel(logging.DEBUG, prefix)
	default:
		leveled.SetLevel(defaultLevel, prefix)
	}

	logging.SetBackend(leveled)
	return Log
}
