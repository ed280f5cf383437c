package config

import (
	"testing"
	"time"
)

var configEnvKeys = []string{
	"PORT", "STORAGE_DRIVER", "SCHEMA_MODE", "SCHEMA_RETRY_INTERVAL", "DB_QUERY_TIMEOUT",
	"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DB", "DB_MAX_CONNS",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT", "CONTAS_TABLE",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUST_XFF",
	"REQUEST_STATS_ENABLED", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REQUEST_STATS_PREFIX", "REQUEST_STATS_TTL",
	"TELEMETRY_ENABLED", "LOG_LEVEL", "LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %q", cfg.Port)
	}
	if cfg.StorageDriver != StorageDriverPostgres || cfg.SchemaMode != SchemaModeRecreate {
		t.Fatalf("unexpected driver/mode: %q/%q", cfg.StorageDriver, cfg.SchemaMode)
	}
	if cfg.SchemaRetryInterval != 5*time.Second {
		t.Fatalf("expected 5s retry interval, got %s", cfg.SchemaRetryInterval)
	}
	pg := cfg.Postgres
	if pg.User != "postgres" || pg.Password != "password" || pg.Host != "db" || pg.Port != "5432" || pg.Database != "contas" {
		t.Fatalf("unexpected postgres defaults: %+v", pg)
	}
	if got := pg.URL(); got != "postgres://postgres:password@db:5432/contas" {
		t.Fatalf("unexpected url: %s", got)
	}
	if cfg.RateLimit.Enabled || cfg.RequestStats.Enabled || cfg.TelemetryEnabled {
		t.Fatalf("optional features must be disabled by default: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("STORAGE_DRIVER", "DynamoDB")
	t.Setenv("SCHEMA_MODE", "preserve")
	t.Setenv("POSTGRES_PASSWORD", "p@ss:word")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8081" || cfg.StorageDriver != StorageDriverDynamoDB || cfg.SchemaMode != SchemaModePreserve {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.RateLimit.RPS != 0.5 || cfg.RateLimit.Burst != 20 {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
	if got := cfg.Postgres.URL(); got != "postgres://postgres:p%40ss%3Aword@db:5432/contas" {
		t.Fatalf("password must be escaped, got %s", got)
	}
}

func TestLoad_PoolSize(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_CONNS", "2147483647")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Postgres.MaxConns != 2147483647 {
		t.Fatalf("expected max int32 pool size, got %d", cfg.Postgres.MaxConns)
	}
}

func TestParseSchemaMode(t *testing.T) {
	cases := map[string]SchemaMode{"recreate": SchemaModeRecreate, "preserve": SchemaModePreserve, " Preserve ": SchemaModePreserve}
	for in, want := range cases {
		if got, err := ParseSchemaMode(in); err != nil || got != want {
			t.Fatalf("ParseSchemaMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseSchemaMode("drop"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":     {"STORAGE_DRIVER": "mysql"},
		"unknown mode":       {"SCHEMA_MODE": "truncate"},
		"non numeric port":   {"PORT": "http"},
		"rate limit rps":     {"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_RPS": "-1"},
		"zero pool size":     {"DB_MAX_CONNS": "0"},
		"pool size overflow": {"DB_MAX_CONNS": "4294967306"},
		"pool size garbage":  {"DB_MAX_CONNS": "ten"},
		"zero retry backoff": {"SCHEMA_RETRY_INTERVAL": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
