// Package config contains seashell client configuration definitions.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/gulfstream/seashell/api/client"
	"github.com/gulfstream/seashell/blockwatch"
	"github.com/gulfstream/seashell/log"
	"github.com/gulfstream/seashell/sdk"
	"github.com/gulfstream/seashell/txs"
)

// EnvPrefix prefixes environment variables, e.g. SEASHELL_ENDPOINT.
const EnvPrefix = "SEASHELL"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines the configuration of the seashell client.
type Config struct {
	Endpoint         string        `mapstructure:"endpoint"`
	RequestTimeout   time.Duration `mapstructure:"request-timeout"`
	Retries          uint          `mapstructure:"retries"`
	RateLimit        float64       `mapstructure:"rate-limit"` // requests per second, zero means unlimited
	Gas              uint64        `mapstructure:"gas"`
	KeyFile          string        `mapstructure:"key-file"`
	PollInterval     time.Duration `mapstructure:"poll-interval"`
	HistoryCacheSize int           `mapstructure:"history-cache-size"`
	LogLevel         string        `mapstructure:"log-level"`
	LogEncoder       string        `mapstructure:"log-encoder"`
	MetricsPort      int           `mapstructure:"metrics-port"` // zero disables the metrics listener
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Endpoint:         client.DefaultEndpoint,
		RequestTimeout:   10 * time.Second,
		Retries:          3,
		Gas:              sdk.DefaultGas,
		PollInterval:     blockwatch.DefaultInterval,
		HistoryCacheSize: txs.DefaultCacheSize,
		LogLevel:         zapcore.InfoLevel.String(),
		LogEncoder:       log.ConsoleEncoder,
	}
}

// Validate checks values that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	var errs []error
	if c.Endpoint == "" {
		errs = append(errs, errors.New("endpoint is empty"))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll-interval must be positive, got %s", c.PollInterval))
	}
	if c.HistoryCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("history-cache-size must be positive, got %d", c.HistoryCacheSize))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}
	if c.LogEncoder != log.ConsoleEncoder && c.LogEncoder != log.JSONEncoder {
		errs = append(errs, fmt.Errorf("log-encoder must be %q or %q, got %q",
			log.ConsoleEncoder, log.JSONEncoder, c.LogEncoder))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate-limit must not be negative, got %v", c.RateLimit))
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		errs = append(errs, fmt.Errorf("metrics-port out of range: %d", c.MetricsPort))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Txs returns the txs.Service config.
func (c *Config) Txs() txs.Config {
	return txs.Config{Gas: c.Gas, CacheSize: c.HistoryCacheSize}
}

// Load merges, from lowest to highest priority, the defaults, the config file
// at path (skipped when empty), SEASHELL_* environment variables and the flags
// that were set on the command line. Flag names match the mapstructure keys.
func Load(fs afero.Fs, path string, flags *pflag.FlagSet) (Config, error) {
	conf := DefaultConfig()
	vip := viper.New()
	vip.SetFs(fs)
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	// keys must be known to viper for env vars to be picked up by Unmarshal
	defaults := map[string]any{}
	if err := mapstructure.Decode(conf, &defaults); err != nil {
		return conf, fmt.Errorf("collect defaults: %w", err)
	}
	for key, val := range defaults {
		vip.SetDefault(key, val)
	}

	if path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return conf, fmt.Errorf("read config file %s: %w", path, err)
		}
	}
	if flags != nil {
		if err := vip.BindPFlags(flags); err != nil {
			return conf, fmt.Errorf("bind flags: %w", err)
		}
	}

	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := vip.Unmarshal(&conf, viper.DecodeHook(hook)); err != nil {
		return conf, fmt.Errorf("unmarshal config: %w", err)
	}
	return conf, conf.Validate()
}

// AddFlags registers one flag per config key with the defaults from conf.
func AddFlags(flags *pflag.FlagSet, conf Config) {
	flags.String("endpoint", conf.Endpoint, "address of the node gRPC endpoint")
	flags.Duration("request-timeout", conf.RequestTimeout, "timeout of a single node request")
	flags.Uint("retries", conf.Retries, "retries of read requests while the node is unavailable")
	flags.Float64("rate-limit", conf.RateLimit, "maximum node requests per second, 0 for unlimited")
	flags.Uint64("gas", conf.Gas, "gas attached to submitted transactions")
	flags.String("key-file", conf.KeyFile, "hex encoded ed25519 private key")
	flags.Duration("poll-interval", conf.PollInterval, "interval between latest block polls")
	flags.Int("history-cache-size", conf.HistoryCacheSize, "number of decoded history entries kept in memory")
	flags.String("log-level", conf.LogLevel, "log level")
	flags.String("log-encoder", conf.LogEncoder, "log encoder, console or json")
	flags.Int("metrics-port", conf.MetricsPort, "port of the prometheus listener, 0 disables it")
}
