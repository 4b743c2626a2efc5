package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogLevel        string
	LogFormat       string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) and then
// environment variables, which take precedence.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	fc := fileConfig{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			log.Printf("config: ignoring %s: %v", path, err)
		} else {
			fc = loaded
		}
	}

	return Config{
		Port:            getEnv("PORT", firstNonEmpty(fc.Server.Port, "8080")),
		Env:             normalizeEnv(getEnv("ENV", firstNonEmpty(fc.Env, "dev"))),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", firstNonEmpty(strings.Join(fc.Server.CORSAllowOrigins, ","), "http://localhost:5173"))),
		LogLevel:        getEnv("LOG_LEVEL", firstNonEmpty(fc.Log.Level, "info")),
		LogFormat:       normalizeLogFormat(getEnv("LOG_FORMAT", firstNonEmpty(fc.Log.Format, "json"))),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", orFloat(fc.RateLimit.RPS, 20)),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", orInt(fc.RateLimit.Burst, 40)),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", orDuration(fc.Server.ShutdownTimeout, 10*time.Second)),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: %s invalid int: %v", key, err)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s invalid number: %v", key, err)
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config: %s invalid duration: %v", key, err)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeLogFormat(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "console", "text":
		return "console"
	default:
		return "json"
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func orInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

func orFloat(v, def float64) float64 {
	if v != 0 {
		return v
	}
	return def
}

func orDuration(v, def time.Duration) time.Duration {
	if v != 0 {
		return v
	}
	return def
}
