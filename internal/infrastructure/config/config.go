package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageTypePostgres = "postgres"
	StorageTypeMemory   = "memory"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Prometheus Prometheus
	Storage    Storage
}

type HTTPServer struct {
	Address         string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
	MaxConns       int32
	MigrateOnStart bool
}

// DSN escapes credentials so passwords may contain URL delimiters.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.DbName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type Prometheus struct {
	Address string
	Port    int
}

type Storage struct {
	Type string
}

func MustLoad() *Config {
	cfg, err := Load("./config")
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

// Load reads config.yaml from dir. A missing file is not an error: defaults
// and environment variables (DATABASE_PASSWORD, HTTP_SERVER_PORT, ...) still apply.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:         v.GetString("http_server.address"),
			Port:            v.GetInt("http_server.port"),
			ReadTimeout:     v.GetDuration("http_server.read_timeout"),
			WriteTimeout:    v.GetDuration("http_server.write_timeout"),
			ShutdownTimeout: v.GetDuration("http_server.shutdown_timeout"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			MigrationsPath: v.GetString("database.migrations_path"),
			MaxConns:       v.GetInt32("database.max_conns"),
			MigrateOnStart: v.GetBool("database.migrate_on_start"),
		},
		Prometheus: Prometheus{
			Address: v.GetString("prometheus.address"),
			Port:    v.GetInt("prometheus.port"),
		},
		Storage: Storage{
			Type: v.GetString("storage.type"),
		},
	}

	if cfg.Storage.Type != StorageTypePostgres && cfg.Storage.Type != StorageTypeMemory {
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)
	v.SetDefault("http_server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "likeme")
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.migrate_on_start", false)

	v.SetDefault("prometheus.address", "0.0.0.0")
	v.SetDefault("prometheus.port", 9103)

	v.SetDefault("storage.type", StorageTypePostgres)
}
