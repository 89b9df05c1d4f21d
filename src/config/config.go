// Package config loads the TOML configuration file and exposes typed
// sections to the rest of the application.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Mode    string `toml:"mode"` // "dev" or "release"
}

type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	Db       int    `toml:"db"`
}

type LogConfig struct {
	LogPath    string `toml:"logPath"`
	FileName   string `toml:"fileName"`
	MaxSize    int    `toml:"maxSize"`
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"`
	Level      string `toml:"level"`
}

type JWTConfig struct {
	Secret      string `toml:"secret"`
	ExpiryHours int    `toml:"expiryHours"`
}

type Config struct {
	MainConfig  MainConfig  `toml:"main"`
	MongoConfig MongoConfig `toml:"mongo"`
	RedisConfig RedisConfig `toml:"redis"`
	LogConfig   LogConfig   `toml:"log"`
	JWTConfig   JWTConfig   `toml:"jwt"`
}

var (
	conf *Config
	once sync.Once
)

// GetConfig loads the configuration exactly once. The file path can be
// overridden with TRAILMATES_CONFIG; secrets can be overridden from the
// environment so the TOML file never has to hold production credentials.
func GetConfig() *Config {
	once.Do(func() {
		conf = &Config{}

		path := os.Getenv("TRAILMATES_CONFIG")
		candidates := []string{path, "config.toml", "configs/config.toml"}

		var loaded bool
		for _, p := range candidates {
			if p == "" {
				continue
			}
			if _, err := toml.DecodeFile(p, conf); err == nil {
				loaded = true
				break
			}
		}
		if !loaded {
			fmt.Fprintln(os.Stderr, "config: no config.toml found, using defaults")
		}

		applyDefaults(conf)
		applyEnvOverrides(conf)
	})
	return conf
}

func applyDefaults(c *Config) {
	if c.MainConfig.AppName == "" {
		c.MainConfig.AppName = "trailmates"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 3000
	}
	if c.MainConfig.Mode == "" {
		c.MainConfig.Mode = "dev"
	}
	if c.MongoConfig.URI == "" {
		c.MongoConfig.URI = "mongodb://localhost:27017"
	}
	if c.MongoConfig.Database == "" {
		c.MongoConfig.Database = "trailmates"
	}
	if c.RedisConfig.Addr == "" {
		c.RedisConfig.Addr = "localhost:6379"
	}
	if c.JWTConfig.ExpiryHours == 0 {
		c.JWTConfig.ExpiryHours = 24
	}
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.MongoConfig.URI = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.RedisConfig.Addr = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTConfig.Secret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		fmt.Sscanf(v, "%d", &c.MainConfig.Port)
	}
}
