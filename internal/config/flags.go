package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-c/-config project configuration file path
//	-config-json JSON process configuration file path
//	-read-timeout request read timeout (e.g., "15s")
//	-write-timeout response write timeout (e.g., "15s")
//	-idle-timeout keep-alive idle timeout (e.g., "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-metrics-address metrics listener address in format [host]:[port]
//	-log-level log level (debug, info, warn, error)
//	-server-url base URL of a running server (client only)
//	-request-timeout client request timeout (e.g., "15s")
//	-name project name to look up (client only); the first positional
//	      argument is used when the flag is omitted
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("ks", flag.ContinueOnError)

	var metricsAddress NetAddress
	var configFile string
	var jsonConfigPath string
	var readTimeout, writeTimeout, idleTimeout, shutdownTimeout time.Duration
	var logLevel string
	var serverURL string
	var requestTimeout time.Duration
	var projectName string

	fs.StringVar(&configFile, "c", "", "Project configuration file path")
	fs.StringVar(&configFile, "config", "", "Project configuration file path (alias)")
	fs.StringVar(&jsonConfigPath, "config-json", "", "JSON process configuration file path")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Request read timeout (e.g., 15s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Response write timeout (e.g., 15s)")
	fs.DurationVar(&idleTimeout, "idle-timeout", 0, "Keep-alive idle timeout (e.g., 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.Var(&metricsAddress, "metrics-address", "Metrics listener address host:port")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&serverURL, "server-url", "", "Base URL of a running server")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.StringVar(&projectName, "name", "", "Project name to look up")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if projectName == "" && fs.NArg() > 0 {
		projectName = fs.Arg(0)
	}

	return &StructuredConfig{
		Projects: Projects{
			ConfigFile: configFile,
		},
		Server: Server{
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			IdleTimeout:     idleTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Metrics: Metrics{
			Address: metricsAddress.String(),
		},
		Log: Log{
			Level: logLevel,
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			ProjectName: projectName,
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

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Other hosts must be "localhost" or a
// valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
