package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-engine database engine (postgres or sqlite)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-notifier-transport notification transport (http, smtp or empty)
//	-notifier-relay-url notification relay base URL
//	-notifier-workers number of fan-out dispatchers
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var databaseEngine string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var notifierTransport string
	var notifierRelayURL string
	var notifierWorkers int

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseEngine, "engine", "", "Database engine (postgres or sqlite)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&notifierTransport, "notifier-transport", "", "Notification transport (http, smtp or empty)")
	flag.StringVar(&notifierRelayURL, "notifier-relay-url", "", "Notification relay base URL")
	flag.IntVar(&notifierWorkers, "notifier-workers", 0, "Number of fan-out dispatchers")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				Engine: databaseEngine,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Notifier: Notifier{
			Transport: notifierTransport,
			RelayURL:  notifierRelayURL,
			Workers:   notifierWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}
}
