package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// ConfigPathEnv names the directory searched for an optional config.yaml
	ConfigPathEnv = "FLEETTRACK_CONFIG_PATH"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Fleet    FleetConfig
	Security SecurityConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SQLitePath      string
	AutoMigrate     bool
	SeedOnStart     bool
}

// FleetConfig controls the record store and list paging
type FleetConfig struct {
	FixturePath     string
	DefaultPageSize int
	MaxPageSize     int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type LogConfig struct {
	Level string
}

// Load reads configuration from a .env file, an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() *Config {
	_ = godotenv.Load()
	return LoadFrom(os.Getenv(ConfigPathEnv))
}

// LoadFrom builds the configuration using configPath as the config.yaml directory.
// Keys in the file use the environment variable names in lower case.
func LoadFrom(configPath string) *Config {
	src := newSource(configPath)

	config := &Config{
		Server: ServerConfig{
			Port:            src.getEnv("SERVER_PORT", "8080"),
			Host:            src.getEnv("SERVER_HOST", "localhost"),
			Environment:     src.getEnv("APP_ENV", "development"),
			ReadTimeout:     src.getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    src.getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: src.getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(src.getEnv("DB_DRIVER", DriverSQLite)),
			Host:            src.getEnv("DB_HOST", "localhost"),
			Port:            src.getEnv("DB_PORT", "5432"),
			User:            src.getEnv("DB_USER", "fleet_user"),
			Password:        src.getEnv("DB_PASSWORD", "fleet_password"),
			Name:            src.getEnv("DB_NAME", "fleettrack"),
			SSLMode:         src.getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  src.getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    src.getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: src.getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			SQLitePath:      src.getEnv("DB_SQLITE_PATH", "file::memory:?cache=shared"),
			AutoMigrate:     src.getBoolEnv("AUTO_MIGRATE", false),
			SeedOnStart:     src.getBoolEnv("SEED_DATABASE", true),
		},
		Fleet: FleetConfig{
			FixturePath:     src.getEnv("FLEET_FIXTURE_PATH", ""),
			DefaultPageSize: src.getIntEnv("FLEET_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     src.getIntEnv("FLEET_MAX_PAGE_SIZE", 1000),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: src.getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     src.getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Log: LogConfig{
			Level: src.getEnv("LOG_LEVEL", "info"),
		},
	}

	config.Server.CORSAllowOrigins = parseOrigins(src.getEnv("CORS_ALLOW_ORIGINS", "*"))

	return config
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// source resolves keys against the environment first, then config.yaml
type source struct {
	v *viper.Viper
}

func newSource(configPath string) *source {
	v := viper.New()
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configPath)
		// a missing file falls back to defaults and env vars
		_ = v.ReadInConfig()
	}

	return &source{v: v}
}

func (s *source) getEnv(key, defaultValue string) string {
	if value := s.v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func (s *source) getIntEnv(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(s.v.GetString(key))
	if err != nil {
		return defaultValue
	}
	return intVal
}

func (s *source) getBoolEnv(key string, defaultValue bool) bool {
	switch strings.ToLower(s.v.GetString(key)) {
	case "1", "t", "true", "yes":
		return true
	case "0", "f", "false", "no":
		return false
	default:
		return defaultValue
	}
}

func (s *source) getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := s.v.GetString(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseOrigins(raw string) []string {
	origins := strings.Split(raw, ",")
	result := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			result = append(result, origin)
		}
	}
	if len(result) == 0 {
		return []string{"*"}
	}
	return result
}
