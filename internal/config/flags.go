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

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-u base URL of the user directory endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d SQLite DSN of the endpoint history
//	-history-size number of recent base URLs offered
//	-log-file log file path
//	-a fixture server address in format [host]:[port]
//	-fixture-users size of the generated user directory
//	-fixture-broken-every every n-th generated user lacks an email object
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var baseURL string
	var requestTimeout time.Duration
	var databaseDSN string
	var historySize int
	var logFile string
	var fixtureUsers int
	var fixtureBrokenEvery int
	var jsonConfigPath string

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.StringVar(&baseURL, "u", "", "Base URL of the user directory endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Endpoint history SQLite DSN")
	fs.IntVar(&historySize, "history-size", 0, "Number of recent base URLs to offer")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.Var(&serverAddress, "a", "Fixture server net address host:port")
	fs.IntVar(&fixtureUsers, "fixture-users", 0, "Size of the generated user directory")
	fs.IntVar(&fixtureBrokenEvery, "fixture-broken-every", 0, "Every n-th generated user lacks authentication.email")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:          DB{DSN: databaseDSN},
			HistorySize: historySize,
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			FixtureUsers:       fixtureUsers,
			FixtureBrokenEvery: fixtureBrokenEvery,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(strings.TrimSpace(s))
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
