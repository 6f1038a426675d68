package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAddress = "0.0.0.0"
	defaultPort    = 8080
)

// Config is read from the environment once at startup and passed down
// by value; nothing else in the service touches os.Getenv.
type Config struct {
	APIURL  string
	APIKey  string
	HFToken string
	Address string
	Port    int

	SourceDataset    string
	SourceWorkspace  string
	ResultsDataset   string
	ResultsWorkspace string

	TargetRecords int
}

func Load() (Config, error) {
	cfg := Config{
		APIURL:           os.Getenv("ARGILLA_API_URL"),
		APIKey:           os.Getenv("ARGILLA_API_KEY"),
		HFToken:          os.Getenv("HF_TOKEN"),
		SourceDataset:    os.Getenv("SOURCE_DATASET"),
		SourceWorkspace:  os.Getenv("SOURCE_WORKSPACE"),
		ResultsDataset:   os.Getenv("RESULTS_DATASET"),
		ResultsWorkspace: os.Getenv("RESULTS_WORKSPACE"),
	}

	if missing := missingKeys(); len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	target, err := strconv.Atoi(os.Getenv("TARGET_RECORDS"))
	if err != nil {
		return Config{}, fmt.Errorf("TARGET_RECORDS must be an integer: %w", err)
	}
	if target <= 0 {
		return Config{}, fmt.Errorf("TARGET_RECORDS must be positive, got %d", target)
	}
	cfg.TargetRecords = target

	cfg.Address = normalizeAddress(os.Getenv("APP_ADDRESS"))
	cfg.Port, err = normalizePort(os.Getenv("APP_PORT"))
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var requiredKeys = []string{
	"ARGILLA_API_URL",
	"ARGILLA_API_KEY",
	"HF_TOKEN",
	"SOURCE_DATASET",
	"SOURCE_WORKSPACE",
	"RESULTS_DATASET",
	"RESULTS_WORKSPACE",
	"TARGET_RECORDS",
}

func missingKeys() []string {
	var missing []string
	for _, key := range requiredKeys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func normalizeAddress(address string) string {
	if address == "" {
		return defaultAddress
	}
	return address
}

func normalizePort(portStr string) (int, error) {
	if portStr == "" {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("APP_PORT must be an integer: %w", err)
	}
	return port, nil
}
