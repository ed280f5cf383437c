package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverDynamoDB = "dynamodb"
)

// SchemaMode selects what startup does with an existing contas table.
type SchemaMode string

const (
	// SchemaModeRecreate drops the table and creates it empty on every start.
	SchemaModeRecreate SchemaMode = "recreate"
	// SchemaModePreserve only creates the table when it does not exist yet.
	SchemaModePreserve SchemaMode = "preserve"
)

func ParseSchemaMode(s string) (SchemaMode, error) {
	switch m := SchemaMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SchemaModeRecreate, SchemaModePreserve:
		return m, nil
	default:
		return "", fmt.Errorf("SCHEMA_MODE must be %q or %q, got %q", SchemaModeRecreate, SchemaModePreserve, s)
	}
}

type Config struct {
	Port                string
	StorageDriver       string
	SchemaMode          SchemaMode
	SchemaRetryInterval time.Duration
	QueryTimeout        time.Duration

	Postgres     PostgresConfig
	DynamoDB     DynamoDBConfig
	RateLimit    RateLimitConfig
	RequestStats RequestStatsConfig

	TelemetryEnabled bool
	LogLevel         string
	LogFormat        string
}

type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
	MaxConns int32
}

// URL builds the connection string understood by pgxpool.ParseConfig.
func (p PostgresConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + p.Database,
	}
	return u.String()
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	TableName       string
}

type RateLimitConfig struct {
	Enabled  bool
	RPS      float64
	Burst    int
	TrustXFF bool
}

type RequestStatsConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Prefix        string
	TTL           time.Duration
}

// Load reads the service configuration from the environment.
//
// The database defaults match the docker compose setup: user postgres,
// host db, database contas, password "password", port 5432; the API listens
// on 5000.
func Load() (Config, error) {
	schemaMode, err := ParseSchemaMode(getenvDefault("SCHEMA_MODE", string(SchemaModeRecreate)))
	if err != nil {
		return Config{}, err
	}
	maxConns, err := getenvInt32Default("DB_MAX_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("DB_MAX_CONNS: %w", err)
	}

	cfg := Config{
		Port:                getenvDefault("PORT", "5000"),
		StorageDriver:       strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDriverPostgres)),
		SchemaMode:          schemaMode,
		SchemaRetryInterval: getenvDurationDefault("SCHEMA_RETRY_INTERVAL", 5*time.Second),
		QueryTimeout:        getenvDurationDefault("DB_QUERY_TIMEOUT", 5*time.Second),
		Postgres: PostgresConfig{
			User:     getenvDefault("POSTGRES_USER", "postgres"),
			Password: getenvDefault("POSTGRES_PASSWORD", "password"),
			Host:     getenvDefault("POSTGRES_HOST", "db"),
			Port:     getenvDefault("POSTGRES_PORT", "5432"),
			Database: getenvDefault("POSTGRES_DB", "contas"),
			MaxConns: maxConns,
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			TableName:       getenvDefault("CONTAS_TABLE", "contas"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  getenvBoolDefault("RATE_LIMIT_ENABLED", false),
			RPS:      getenvFloatDefault("RATE_LIMIT_RPS", 10),
			Burst:    getenvIntDefault("RATE_LIMIT_BURST", 20),
			TrustXFF: getenvBoolDefault("TRUST_XFF", false),
		},
		RequestStats: RequestStatsConfig{
			Enabled:       getenvBoolDefault("REQUEST_STATS_ENABLED", false),
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       getenvIntDefault("REDIS_DB", 0),
			Prefix:        getenvDefault("REQUEST_STATS_PREFIX", "contas:stats"),
			TTL:           getenvDurationDefault("REQUEST_STATS_TTL", 24*time.Hour),
		},
		TelemetryEnabled: getenvBoolDefault("TELEMETRY_ENABLED", false),
		LogLevel:         getenvDefault("LOG_LEVEL", "info"),
		LogFormat:        getenvDefault("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverDynamoDB:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverDynamoDB, c.StorageDriver)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %w", err)
	}
	if c.SchemaRetryInterval <= 0 {
		return errors.New("SCHEMA_RETRY_INTERVAL must be > 0")
	}
	if c.QueryTimeout <= 0 {
		return errors.New("DB_QUERY_TIMEOUT must be > 0")
	}
	if c.Postgres.MaxConns <= 0 {
		return errors.New("DB_MAX_CONNS must be > 0")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return errors.New("RATE_LIMIT_RPS must be > 0")
		}
		if c.RateLimit.Burst <= 0 {
			return errors.New("RATE_LIMIT_BURST must be > 0")
		}
	}
	return nil
}

func getenvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getenvInt32Default fails instead of truncating values that do not fit int32.
func getenvInt32Default(k string, def int32) (int32, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(i), nil
}

func getenvFloatDefault(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBoolDefault(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getenvDurationDefault(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
