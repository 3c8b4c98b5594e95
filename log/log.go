// Package log builds the zap loggers used by the client and its commands.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/cosmos/btcutil/base58"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ConsoleEncoder writes human readable lines.
	ConsoleEncoder = "console"
	// JSONEncoder writes one json object per line.
	JSONEncoder = "json"
)

// where logs go by default.
var logWriter io.Writer = os.Stderr

func encoderFor(name string) (zapcore.Encoder, error) {
	switch name {
	case ConsoleEncoder, "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.RFC3339TimeEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case JSONEncoder:
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.RFC3339TimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unknown log encoder %q", name)
	}
}

// New creates a named logger writing to stderr.
func New(name, level, encoder string) (*zap.Logger, error) {
	return NewWithWriter(logWriter, name, level, encoder)
}

// NewWithWriter creates a named logger writing to w.
func NewWithWriter(w io.Writer, name, level, encoder string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	enc, err := encoderFor(encoder)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	return zap.New(core).Named(name), nil
}

// ZBase58 renders a byte slice the way addresses and transaction ids are shown to users.
func ZBase58(key string, b []byte) zap.Field {
	return zap.String(key, base58.Encode(b))
}
