package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the complete service configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Minio    MinioConfig    `toml:"minio"`
	Auth     AuthConfig     `toml:"auth"`
	Orders   OrdersConfig   `toml:"orders"`
	Alerts   AlertsConfig   `toml:"alerts"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
	Bucket    string `toml:"bucket"`
}

// AuthConfig contains JWT and refresh token settings
type AuthConfig struct {
	JWTSecret         string `toml:"jwt_secret"`
	AccessTTLSeconds  int    `toml:"access_ttl_seconds"`
	RefreshTTLSeconds int    `toml:"refresh_ttl_seconds"`
}

// OrdersConfig contains order lifecycle settings
type OrdersConfig struct {
	// PrepTimeMinutes feeds the estimated end time on checkout.
	PrepTimeMinutes int `toml:"prep_time_minutes"`
	CartTTLMinutes  int `toml:"cart_ttl_minutes"`
}

// AlertsConfig contains low-stock scan settings
type AlertsConfig struct {
	IntervalMinutes int `toml:"interval_minutes"`
}

// Load reads the TOML config file if present, then applies environment
// overrides and defaults. A missing file is not an error so the service
// can run from environment variables alone.
func Load(filename string) (*Config, error) {
	config := &Config{}
	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			if _, err := toml.DecodeFile(filename, config); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	applyEnvOverrides(config)
	applyDefaults(config)

	if config.Database.URL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or [database] url)")
	}

	return config, nil
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Redis.DB = db
		}
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		c.Minio.Endpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		c.Minio.AccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		c.Minio.SecretKey = v
	}
	if v := os.Getenv("MINIO_USE_SSL"); v == "true" {
		c.Minio.UseSSL = true
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Minio.Endpoint == "" {
		c.Minio.Endpoint = "localhost:9000"
	}
	if c.Minio.AccessKey == "" {
		c.Minio.AccessKey = "minioadmin"
	}
	if c.Minio.SecretKey == "" {
		c.Minio.SecretKey = "minioadmin"
	}
	if c.Minio.Bucket == "" {
		c.Minio.Bucket = "ukitchen"
	}
	if c.Auth.AccessTTLSeconds == 0 {
		c.Auth.AccessTTLSeconds = 3600
	}
	if c.Auth.RefreshTTLSeconds == 0 {
		c.Auth.RefreshTTLSeconds = 7 * 24 * 3600
	}
	if c.Orders.PrepTimeMinutes == 0 {
		c.Orders.PrepTimeMinutes = 30
	}
	if c.Orders.CartTTLMinutes == 0 {
		c.Orders.CartTTLMinutes = 120
	}
	if c.Alerts.IntervalMinutes == 0 {
		c.Alerts.IntervalMinutes = 60
	}
}
