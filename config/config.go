package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverRedis    = "redis"
)

type Config struct {
	Service  ServiceConfig
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Tracing  TracingConfig
}

type ServiceConfig struct {
	Name    string
	Version string
}

type ServerConfig struct {
	Port            string
	Mode            string // gin mode: debug, release, test
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig selects which store backs the users and events collections.
type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MongoConfig struct {
	URI      string
	Database string
}

type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

var AppConfig *Config

// LoadConfig 讀取 .env（若存在）後再讀取環境變數，環境變數優先
func LoadConfig() *Config {
	_ = godotenv.Load()

	AppConfig = &Config{
		Service:  GetServiceConfig(),
		Server:   GetServerConfig(),
		Storage:  StorageConfig{Driver: getEnv("STORAGE_DRIVER", DriverPostgres)},
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Mongo:    GetMongoConfig(),
		Tracing:  GetTracingConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5433"), // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 5,
	}

	testRedisConfig := RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnv("TEST_REDIS_PORT", "6380"), // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	testMongoConfig := MongoConfig{
		URI:      getEnv("TEST_MONGO_URI", "mongodb://localhost:27018"),
		Database: "lineup_test",
	}

	return &Config{
		Service: ServiceConfig{Name: "lineup-test", Version: "test"},
		Server: ServerConfig{
			Port:            "0",
			Mode:            "test",
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Storage:  StorageConfig{Driver: DriverPostgres},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Mongo:    testMongoConfig,
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverMongo, DriverRedis:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of %s, %s, %s, got %q",
			DriverPostgres, DriverMongo, DriverRedis, c.Storage.Driver)
	}

	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.Server.Port)
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.Server.RequestTimeout)
	}

	if c.Tracing.Enabled {
		if c.Tracing.Endpoint == "" {
			return fmt.Errorf("OTEL_COLLECTOR_ENDPOINT is required when tracing is enabled")
		}
		if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
			return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %.2f", c.Tracing.SampleRate)
		}
	}

	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func GetServiceConfig() ServiceConfig {
	return ServiceConfig{
		Name:    getEnv("SERVICE_NAME", "lineup"),
		Version: getEnv("VERSION", "dev"),
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnv("PORT", "3000"),
		Mode:            getEnv("GIN_MODE", "release"),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "musicfest"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvInt("DB_POOL_MAX_CONNECTIONS", 25)),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func GetMongoConfig() MongoConfig {
	return MongoConfig{
		URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGO_DATABASE", "MusicFestDB"),
	}
}

func GetTracingConfig() TracingConfig {
	return TracingConfig{
		Enabled:    getEnvBool("TRACING_ENABLED", false),
		Endpoint:   getEnv("OTEL_COLLECTOR_ENDPOINT", "localhost:4318"),
		SampleRate: getEnvFloat("OTEL_SAMPLE_RATE", 1.0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("15s") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
