package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("GENERATOR_SEED", "")
	t.Setenv("GENERATOR_SEASON", "")
	t.Setenv("GENERATOR_WORKERS", "")
	t.Setenv("TRUST_PROXY_HEADERS", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("unexpected StoreDriver: %q", cfg.StoreDriver)
	}
	if cfg.GeneratorSeed != DefaultGeneratorSeed {
		t.Fatalf("unexpected GeneratorSeed: %d", cfg.GeneratorSeed)
	}
	if cfg.GeneratorSeason != "2024/25" {
		t.Fatalf("unexpected GeneratorSeason: %q", cfg.GeneratorSeason)
	}
	if cfg.GeneratorWorkers != 8 {
		t.Fatalf("unexpected GeneratorWorkers: %d", cfg.GeneratorWorkers)
	}
	if cfg.ServiceName != "transfer-market-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.TrustProxyHeaders {
		t.Fatalf("expected proxy headers to be untrusted by default")
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected PyroscopeAppName to default to ServiceName, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_StoreDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported STORE_DRIVER")
	}

	t.Setenv("STORE_DRIVER", "Postgres")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StorePostgres {
		t.Fatalf("unexpected StoreDriver: %q", cfg.StoreDriver)
	}
}

func TestLoad_GeneratorParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GENERATOR_SEED", "-42")
	t.Setenv("GENERATOR_SEASON", "2025/26")
	t.Setenv("GENERATOR_WORKERS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.GeneratorSeed != -42 {
		t.Fatalf("unexpected GeneratorSeed: %d", cfg.GeneratorSeed)
	}
	if cfg.GeneratorSeason != "2025/26" {
		t.Fatalf("unexpected GeneratorSeason: %q", cfg.GeneratorSeason)
	}
	if cfg.GeneratorWorkers != 3 {
		t.Fatalf("unexpected GeneratorWorkers: %d", cfg.GeneratorWorkers)
	}

	t.Setenv("GENERATOR_SEED", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid GENERATOR_SEED")
	}

	t.Setenv("GENERATOR_SEED", "1")
	t.Setenv("GENERATOR_WORKERS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for GENERATOR_WORKERS=0")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_CORSAndRateLimitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATE_LIMIT_REQUESTS", "30")
	t.Setenv("RATE_LIMIT_WINDOW", "10s")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected CORSAllowedOrigins: %#v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitRequests != 30 {
		t.Fatalf("unexpected RateLimitRequests: %d", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow != 10*time.Second {
		t.Fatalf("unexpected RateLimitWindow: %s", cfg.RateLimitWindow)
	}
	if !cfg.TrustProxyHeaders {
		t.Fatalf("expected TrustProxyHeaders to be enabled")
	}

	t.Setenv("TRUST_PROXY_HEADERS", "sometimes")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for TRUST_PROXY_HEADERS=sometimes")
	}
	t.Setenv("TRUST_PROXY_HEADERS", "false")

	t.Setenv("RATE_LIMIT_WINDOW", "0s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for RATE_LIMIT_WINDOW=0s")
	}
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CacheEnabled {
		t.Fatalf("expected CacheEnabled=false")
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
}

func TestLoad_StoreCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_CIRCUIT_ENABLED", "false")
	t.Setenv("STORE_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("STORE_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreCircuitEnabled {
		t.Fatalf("expected store circuit to be disabled")
	}
	if cfg.StoreCircuitFailureCount != 3 || cfg.StoreCircuitOpenTimeout != 30*time.Second {
		t.Fatalf("unexpected store circuit config: %d %s", cfg.StoreCircuitFailureCount, cfg.StoreCircuitOpenTimeout)
	}
	if cfg.StoreCircuitHalfOpenMaxReq != 2 {
		t.Fatalf("unexpected StoreCircuitHalfOpenMaxReq: %d", cfg.StoreCircuitHalfOpenMaxReq)
	}

	t.Setenv("STORE_CIRCUIT_FAILURE_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero STORE_CIRCUIT_FAILURE_COUNT")
	}
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Setenv("SWAGGER_ENABLED", "")
	t.Setenv("APP_ENV", EnvDev)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.SwaggerEnabled {
		t.Fatalf("expected swagger enabled in dev")
	}

	t.Setenv("APP_ENV", EnvProd)
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger disabled in prod")
	}
}

func TestLoad_LogLevel(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "WARNING")
	t.Setenv("APP_LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("unexpected LogFormat: %q", cfg.LogFormat)
	}
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("APP_SERVICE_NAME=from-file\nGENERATOR_SEASON=2030/31\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("APP_SERVICE_NAME", "from-env")
	t.Setenv("GENERATOR_SEASON", "")
	os.Unsetenv("GENERATOR_SEASON")

	LoadDotEnv(path)
	LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))

	if got := os.Getenv("APP_SERVICE_NAME"); got != "from-env" {
		t.Fatalf("APP_SERVICE_NAME = %q, want from-env", got)
	}
	if got := os.Getenv("GENERATOR_SEASON"); got != "2030/31" {
		t.Fatalf("GENERATOR_SEASON = %q, want 2030/31", got)
	}
}
