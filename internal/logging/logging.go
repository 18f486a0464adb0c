// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/phanxgames/shapefall/internal/config"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
	"FATAL": zerolog.FatalLevel,
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to info and report false.
func ParseLevel(level string) (zerolog.Level, bool) {
	l, ok := logLevelMatches[strings.ToUpper(strings.TrimSpace(level))]
	if !ok {
		return zerolog.InfoLevel, false
	}
	return l, true
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

func isTerminalAttached() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && runtime.GOOS != "windows"
}

// Setup sets the global level and output from cfg. Logs go to the configured
// file if any, otherwise to stdout, pretty-printed when stdout is a terminal.
// The returned func closes the log file and is never nil.
func Setup(cfg config.Log) (func(), error) {
	level, ok := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return func() {}, fmt.Errorf("error opening log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		if !ok {
			log.Warn().Str("level", cfg.Level).Msg("unknown log level, using info")
		}
		return func() { _ = f.Close() }, nil
	}

	if isTerminalAttached() {
		log.Logger = log.Output(consoleWriter(os.Stdout))
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	if !ok {
		log.Warn().Str("level", cfg.Level).Msg("unknown log level, using info")
	}
	return func() {}, nil
}

// Enabled reports whether a specific logging level is enabled.
func Enabled(level zerolog.Level) bool {
	return level >= zerolog.GlobalLevel()
}
