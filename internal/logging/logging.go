// Package logging builds the logr.Logger used by the portfolio CLI.
// The sink is zap (through zapr); callers only see the logr interface and
// express detail through verbosity: logger.V(logging.DEBUG).Info(...).
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(). zapr maps V(n) to zap level -n.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// ErrUnknownLevel and ErrUnknownFormat reject bad logging settings.
var (
	ErrUnknownLevel  = errors.New("logging: unknown level")
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// Options selects level, encoding and destination.
type Options struct {
	// Level is one of "error", "info", "debug", "trace". Empty means "info".
	Level string
	// Format is "console" or "json". Empty means "console".
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel maps a level name to the zap level backing it.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return zapcore.ErrorLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "info", "":
		return zapcore.Level(-INFO), nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Format is the zap encoding of the log stream.
type Format string

const (
	Console Format = "console"
	JSON    Format = "json"
)

// ParseFormat maps "console" / "json" (case-insensitive, empty = console)
// to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Console, "":
		return Console, nil
	case JSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// New builds a zap-backed logr.Logger.
func New(opts Options) (logr.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	format, err := ParseFormat(opts.Format)
	if err != nil {
		return logr.Discard(), err
	}

	var enc zapcore.Encoder
	if format == JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(out), zap.NewAtomicLevelAt(lvl))

	return zapr.NewLogger(zap.New(core)), nil
}
