package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-static-dir directory served under /tests/static/
//	-rate-limit-rps per-client requests per second (0 disables)
//	-rate-limit-burst per-client burst size
//	-log-level zerolog level name
//	-d database DSN
//	-db-max-open-conns max open pooled connections
//	-db-max-idle-conns max idle pooled connections
//	-db-conn-max-lifetime max pooled connection lifetime
//	-migrate apply embedded migrations on startup
//	-blocking-pool-size storage calls allowed in flight
//	-acquire-timeout wait for a free dispatcher slot
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-posts", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout, connMaxLifetime, acquireTimeout time.Duration
	var staticDir, logLevel, databaseDSN, jsonConfigPath string
	var rateLimitRPS float64
	var rateLimitBurst, maxOpenConns, maxIdleConns, blockingPoolSize int
	var autoMigrate bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&staticDir, "static-dir", "", "Static files directory")
	fs.Float64Var(&rateLimitRPS, "rate-limit-rps", 0, "Per-client requests per second")
	fs.IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Per-client burst size")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.IntVar(&maxOpenConns, "db-max-open-conns", 0, "Max open DB connections")
	fs.IntVar(&maxIdleConns, "db-max-idle-conns", 0, "Max idle DB connections")
	fs.DurationVar(&connMaxLifetime, "db-conn-max-lifetime", 0, "Max DB connection lifetime")
	fs.BoolVar(&autoMigrate, "migrate", false, "Apply migrations on startup")
	fs.IntVar(&blockingPoolSize, "blocking-pool-size", 0, "Storage calls allowed in flight")
	fs.DurationVar(&acquireTimeout, "acquire-timeout", 0, "Wait for a free dispatcher slot")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:             databaseDSN,
				MaxOpenConns:    maxOpenConns,
				MaxIdleConns:    maxIdleConns,
				ConnMaxLifetime: connMaxLifetime,
				AutoMigrate:     autoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
			RateLimitRPS:   rateLimitRPS,
			RateLimitBurst: rateLimitBurst,
		},
		Workers: Workers{
			BlockingPoolSize: blockingPoolSize,
			AcquireTimeout:   acquireTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
