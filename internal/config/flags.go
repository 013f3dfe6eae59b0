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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token-hash-key HMAC key for API token keys
//	-session-sign-key session JWT signing key
//	-session-issuer session JWT issuer name
//	-session-duration session JWT lifetime (e.g., "24h")
//	-recaptcha-secret reCAPTCHA shared secret
//	-recaptcha-required require CAPTCHA on profile creation
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var tokenHashKey string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var recaptchaSecret string
	var recaptchaRequired bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&tokenHashKey, "token-hash-key", "", "HMAC key for API token keys")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session JWT signing key")
	flag.StringVar(&sessionIssuer, "session-issuer", "", "Session JWT issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session JWT lifetime (e.g., 24h)")
	flag.StringVar(&recaptchaSecret, "recaptcha-secret", "", "reCAPTCHA shared secret")
	flag.BoolVar(&recaptchaRequired, "recaptcha-required", false, "Require CAPTCHA on profile creation")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenHashKey:    tokenHashKey,
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
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
		Recaptcha: Recaptcha{
			Secret:   recaptchaSecret,
			Required: recaptchaRequired,
		},
		JSONFilePath: jsonConfigPath,
	}
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
