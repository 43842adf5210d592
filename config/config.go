// Package config loads service configuration from the environment.
package config

import "os"

// Config carries the service settings. AWS credentials are not listed here:
// the sts client falls back to the sdk's default credential chain, and
// explicit keys can be supplied through the standard AWS_* variables it reads.
type Config struct {
	ListenAddr  string
	Region      string
	STSEndpoint string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		Region:      getEnv("AWS_REGION", ""),
		STSEndpoint: getEnv("STS_ENDPOINT", ""),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
