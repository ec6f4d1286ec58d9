package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	endpoint            string
	backendURL          string
	dsn                 string
	logLevel            string
	env                 string
	ordersPollInterval  time.Duration
	canteenPollInterval time.Duration
	requestTimeout      time.Duration
	corsOrigins         []string
}

func NewConfig() (Config, error) {
	return parseConfig(flag.CommandLine, os.Args[1:], os.Getenv)
}

// parseConfig читает флаги, затем переопределяет их переменными окружения.
func parseConfig(fs *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	var config Config

	fs.StringVar(&config.endpoint, "a", "localhost:8090", "address and port to run console")
	fs.StringVar(&config.backendURL, "b", "http://localhost:10000/api", "base URL of canteen backend")
	fs.StringVar(&config.dsn, "d", "", "data source name for transition journal database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if address := getenv("RUN_ADDRESS"); address != "" {
		config.endpoint = address
	}

	if backendURL := getenv("CANTEEN_API_URL"); backendURL != "" {
		config.backendURL = backendURL
	}

	if d := getenv("DATABASE_URI"); d != "" {
		config.dsn = d
	}

	if l := getenv("LOG_LEVEL"); l != "" {
		config.logLevel = l
	} else {
		config.logLevel = "error"
	}

	if e := getenv("ENV"); e != "" {
		config.env = e
	} else {
		config.env = "production"
	}

	var err error

	if config.ordersPollInterval, err = durationFromEnv(getenv, "ORDERS_POLL_INTERVAL", 30*time.Second); err != nil {
		return Config{}, err
	}

	if config.canteenPollInterval, err = durationFromEnv(getenv, "CANTEEN_POLL_INTERVAL", 15*time.Second); err != nil {
		return Config{}, err
	}

	if config.requestTimeout, err = durationFromEnv(getenv, "REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	for _, origin := range strings.Split(getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			config.corsOrigins = append(config.corsOrigins, origin)
		}
	}

	return config, nil
}

func durationFromEnv(getenv func(string) string, name string, fallback time.Duration) (time.Duration, error) {
	value := getenv(name)
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	if d <= 0 {
		return 0, fmt.Errorf("%s должен быть положительным", name)
	}

	return d, nil
}
