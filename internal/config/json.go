package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
			AutoMigrate     bool     `json:"auto_migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		StaticDir      string   `json:"static_dir"`
		RateLimitRPS   float64  `json:"rate_limit_rps"`
		RateLimitBurst int      `json:"rate_limit_burst"`
	} `json:"server,omitempty"`

	Workers struct {
		BlockingPoolSize int      `json:"blocking_pool_size"`
		AcquireTimeout   Duration `json:"acquire_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
				AutoMigrate:     jsonCfg.Storage.DB.AutoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:      jsonCfg.Server.StaticDir,
			RateLimitRPS:   jsonCfg.Server.RateLimitRPS,
			RateLimitBurst: jsonCfg.Server.RateLimitBurst,
		},
		Workers: Workers{
			BlockingPoolSize: jsonCfg.Workers.BlockingPoolSize,
			AcquireTimeout:   time.Duration(jsonCfg.Workers.AcquireTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
