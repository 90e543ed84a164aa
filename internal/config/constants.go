package config

const (
	envDotEnvFile   = "ENV_FILE"
	envPort         = "PORT"
	envDataPath     = "DATA_PATH"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDotEnvFile  = ".env"
	defaultPort        = "4000"
	defaultDataPath    = "data/soccer_small.json"
	defaultCORSOrigins = "http://localhost:3000"
	defaultMetricsPort = "9090"
	defaultServiceName = "soccer-data-service"
)
