package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
// Parsing stops at the first non-flag argument.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address gRPC health endpoint address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-jwt-secret token signing key
//	-jwt-duration token duration (e.g., "20m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-probe-interval database health probe interval (e.g., "10s")
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var grpcAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var probeInterval time.Duration
	var logLevel string

	fs := flag.NewFlagSet("clinic", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&grpcAddress, "grpc-address", "", "gRPC health endpoint address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "jwt-secret", "", "Token signing key")
	fs.DurationVar(&tokenDuration, "jwt-duration", 0, "Token duration (e.g., 20m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Database health probe interval (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			GRPCAddress:    grpcAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			HealthProbeInterval: probeInterval,
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

// Set parses the input string of form [host]:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
