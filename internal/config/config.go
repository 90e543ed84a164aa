package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	DataPath string
	CORS     CORSConfig
	Metrics  MetricsConfig
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string
}

// Enabled reports whether any origin is configured.
func (c CORSConfig) Enabled() bool {
	return len(c.AllowedOrigins) > 0
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file is applied first when present; real environment variables win.
func Load() Config {
	_ = loadDotEnv(envOrDefault(envDotEnvFile, defaultDotEnvFile))

	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		DataPath: envOrDefault(envDataPath, defaultDataPath),
		CORS: CORSConfig{
			AllowedOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		},
		Metrics: loadMetrics(),
	}
}

// loadDotEnv applies path to the process environment. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
