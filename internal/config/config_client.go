package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Defaults for the API client.
const (
	DefaultClientServerAddress  = "http://127.0.0.1:80"
	DefaultClientRequestTimeout = 10 * time.Second
	DefaultClientLogLevel       = "error"
)

// ClientConfig holds settings of the posts API client.
//
// Struct tags carry the env names read by caarlos0/env; flags override them.
type ClientConfig struct {
	// ServerAddress is the base URL of the posts server. A bare host:port
	// gets the http scheme.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds each outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogLevel is a zerolog level name. Client logs go to stderr.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig builds the client configuration from env and args and
// returns the positional arguments left after the flags.
//
// Priority: flags, then CLIENT_* environment variables, then defaults.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		LogLevel:       DefaultClientLogLevel,
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, nil, fmt.Errorf("error parsing client env: %w", err)
	}

	fs := flag.NewFlagSet("go-posts-client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddress, "s", cfg.ServerAddress, "Posts server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), cfg.validate()
}

func (c *ClientConfig) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidClientConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfig)
	}
	return nil
}
