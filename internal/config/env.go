package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if b := strings.TrimSpace(p); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func parseShutdownTimeout() (time.Duration, error) {
	return parsePositiveDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
}

func parsePositiveDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}

func parseBatchSize() (int, error) {
	s := os.Getenv("BATCH_SIZE")
	if s == "" {
		return 50, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("BATCH_SIZE is not a valid integer: %w", err)
	}
	if n < 1 || n > 1000 {
		return 0, fmt.Errorf("BATCH_SIZE must be between 1 and 1000, got %d", n)
	}
	return n, nil
}
