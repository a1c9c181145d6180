package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-server server address the client connects to, [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key observer token hash key
//	-compact-interval snapshot compaction interval (e.g., "10m")
//	-report-concurrency attempts scanned in parallel by exam reports
//	-exam exam id, -attempt attempt id, -user user id, -user-name full name
//	-exam-duration time allowed for the attempt (e.g., "90m")
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var compactInterval, examDuration time.Duration
	var reportConcurrency int
	var examID, attemptID, userID int64
	var userName, authToken string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&adapterAddress, "server", "Server address host:port for the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Observer token hash key")
	fs.DurationVar(&compactInterval, "compact-interval", 0, "Snapshot compaction interval (e.g., 10m)")
	fs.IntVar(&reportConcurrency, "report-concurrency", 0, "Attempts scanned in parallel by exam reports")
	fs.Int64Var(&examID, "exam", 0, "Exam id")
	fs.Int64Var(&attemptID, "attempt", 0, "Attempt id")
	fs.Int64Var(&userID, "user", 0, "User id")
	fs.StringVar(&userName, "user-name", "", "User full name")
	fs.StringVar(&authToken, "token", "", "Bearer token of the user taking the exam")
	fs.DurationVar(&examDuration, "exam-duration", 0, "Time allowed for the attempt (e.g., 90m)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errors.Join(ErrParsingFlags, err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
			Token:          authToken,
		},
		Workers: Workers{
			CompactInterval:   compactInterval,
			ReportConcurrency: reportConcurrency,
		},
		Exam: Exam{
			ExamID:    examID,
			AttemptID: attemptID,
			UserID:    userID,
			UserName:  userName,
			Duration:  examDuration,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is the empty string.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
