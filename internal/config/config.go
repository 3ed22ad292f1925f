package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"SESSION_TTL" env:"SESSION_TTL" env-default:"12h"`
}

type ScanConfig struct {
	DedupeWindow time.Duration `yaml:"DEDUPE_WINDOW" env:"SCAN_DEDUPE_WINDOW" env-default:"3s"`
}

type UPIConfig struct {
	PayeeVPA  string `yaml:"PAYEE_VPA" env:"UPI_PAYEE_VPA" env-required:"true"`
	PayeeName string `yaml:"PAYEE_NAME" env:"UPI_PAYEE_NAME" env-required:"true"`
}

type AdminConfig struct {
	Username     string        `yaml:"ADMIN_USERNAME" env:"ADMIN_USERNAME" env-required:"true"`
	PasswordHash string        `yaml:"ADMIN_PASSWORD_HASH" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	JWTKey       string        `yaml:"ADMIN_JWT_KEY" env:"ADMIN_JWT_KEY" env-required:"true"`
	TokenTTL     time.Duration `yaml:"ADMIN_TOKEN_TTL" env:"ADMIN_TOKEN_TTL" env-default:"24h"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type TracingConfig struct {
	Endpoint string `yaml:"OTLP_ENDPOINT" env:"OTLP_ENDPOINT" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database      `yaml:"database"`
	RedisConnect RedisConnect  `yaml:"redis"`
	Session      SessionConfig `yaml:"session"`
	Scan         ScanConfig    `yaml:"scan"`
	UPI          UPIConfig     `yaml:"upi"`
	Admin        AdminConfig   `yaml:"admin"`
	RateConfig   RateConfig    `yaml:"rateConfig"`
	Tracing      TracingConfig `yaml:"tracing"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)

	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg

}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d",
		r.Username, r.Password, r.Host, r.Port, r.DB)
}
