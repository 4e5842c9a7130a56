package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/jadwal-pertandingan/external/feeds"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
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
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `x-other=1, uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	for _, key := range []string{
		"APP_SERVICE_NAME", "APP_TIMEZONE", "SCHEDULE_FEED_URL", "SCHEDULE_FEED_DELIMITER",
		"LIVE_FEED_URL", "FEED_TIMEOUT", "FEED_MAX_RETRIES", "FEED_CIRCUIT_ENABLED",
		"APP_READ_TIMEOUT", "APP_WRITE_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "jadwal-pertandingan" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
	if cfg.Timezone == nil || cfg.Timezone.String() != "Asia/Jakarta" {
		t.Fatalf("unexpected timezone: %v", cfg.Timezone)
	}
	if cfg.ScheduleFeedURL != feeds.DefaultScheduleURL {
		t.Fatalf("unexpected schedule feed url: %q", cfg.ScheduleFeedURL)
	}
	if cfg.LiveFeedURL != feeds.DefaultLiveURL {
		t.Fatalf("unexpected live feed url: %q", cfg.LiveFeedURL)
	}
	if cfg.ScheduleFeedDelimiter != ',' {
		t.Fatalf("unexpected delimiter: %q", cfg.ScheduleFeedDelimiter)
	}
	if cfg.FeedTimeout != 10*time.Second {
		t.Fatalf("unexpected feed timeout: %s", cfg.FeedTimeout)
	}
	if cfg.FeedMaxRetries != 0 {
		t.Fatalf("expected no feed retries by default, got %d", cfg.FeedMaxRetries)
	}
	if !cfg.FeedCircuit.Enabled || cfg.FeedCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected feed circuit defaults: %+v", cfg.FeedCircuit)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected http timeouts: read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
}

func TestLoad_TimezoneValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown APP_TIMEZONE")
	}
}

func TestLoad_ScheduleFeedDelimiter(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	tests := []struct {
		name    string
		raw     string
		want    rune
		wantErr bool
	}{
		{name: "semicolon", raw: ";", want: ';'},
		{name: "escaped tab", raw: `\t`, want: '\t'},
		{name: "pipe", raw: "|", want: '|'},
		{name: "two characters", raw: ";;", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCHEDULE_FEED_DELIMITER", tt.raw)
			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for delimiter %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			if cfg.ScheduleFeedDelimiter != tt.want {
				t.Fatalf("unexpected delimiter: got %q want %q", cfg.ScheduleFeedDelimiter, tt.want)
			}
		})
	}
}

func TestLoad_FeedConfigValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative retries", key: "FEED_MAX_RETRIES", value: "-1"},
		{name: "zero timeout", key: "FEED_TIMEOUT", value: "0s"},
		{name: "bad circuit flag", key: "FEED_CIRCUIT_ENABLED", value: "maybe"},
		{name: "zero failure count", key: "FEED_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "bad open timeout", key: "FEED_CIRCUIT_OPEN_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
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

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "jadwal-pertandingan-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "jadwal-pertandingan-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_BACKEND", "")
		t.Setenv("CACHE_SCHEDULE_TTL", "")
		t.Setenv("CACHE_LIVE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheBackend != CacheBackendMemory {
			t.Fatalf("unexpected default cache backend: %q", cfg.CacheBackend)
		}
		if cfg.CacheScheduleTTL != 60*time.Second {
			t.Fatalf("unexpected default schedule ttl: %s", cfg.CacheScheduleTTL)
		}
		if cfg.CacheLiveTTL != 30*time.Second {
			t.Fatalf("unexpected default live ttl: %s", cfg.CacheLiveTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_LIVE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_LIVE_TTL")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "memcached")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown CACHE_BACKEND")
		}
	})

	t.Run("redis backend", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "Redis")
		t.Setenv("REDIS_ADDR", "cache.internal:6380")
		t.Setenv("REDIS_DB", "3")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheBackend != CacheBackendRedis {
			t.Fatalf("unexpected cache backend: %q", cfg.CacheBackend)
		}
		if cfg.RedisAddr != "cache.internal:6380" || cfg.RedisDB != 3 {
			t.Fatalf("unexpected redis settings: addr=%q db=%d", cfg.RedisAddr, cfg.RedisDB)
		}
	})
}

func TestLoadDotEnv(t *testing.T) {
	const key = "JADWAL_DOTENV_PROBE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Fatalf("expected nil error for missing file, got %v", err)
		}
	})

	t.Run("seeds unset variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
			t.Fatalf("write env file: %v", err)
		}
		_ = os.Unsetenv(key)

		if err := LoadDotEnv(path); err != nil {
			t.Fatalf("load dotenv: %v", err)
		}
		if got := os.Getenv(key); got != "from-file" {
			t.Fatalf("unexpected %s: %q", key, got)
		}
	})
}
