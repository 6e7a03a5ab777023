// Package config loads the application configuration from a yaml file with
// environment variable overrides (prefix ROSTERD_, dots replaced by
// underscores, e.g. ROSTERD_SERVER_ADDR).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// BackendFile stores each collection in a flat JSON file.
	BackendFile = "file"
	// BackendRedis stores each collection as a whole document in a redis key.
	BackendRedis = "redis"
	// BackendInMemory keeps documents in process memory only; data does not
	// survive a restart. Intended for tests and local experiments.
	BackendInMemory = "inmemory"
)

type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"corsOrigins"`
}

type StorageConfig struct {
	Backend    string      `mapstructure:"backend"`
	UsersFile  string      `mapstructure:"usersFile"`
	GroupsFile string      `mapstructure:"groupsFile"`
	Redis      RedisConfig `mapstructure:"redis"`
	Cache      CacheConfig `mapstructure:"cache"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Database int32  `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// CacheConfig controls the optional read-through document cache. The cache
// is coherent only because the process is the sole writer of its documents;
// leave it disabled if anything else touches the files.
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttlSeconds"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the configuration from the given file. An empty path falls back
// to rosterd.yaml in the working directory or /etc/rosterd; a missing config
// file is not an error in that case, defaults and environment apply.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":3000")
	v.SetDefault("server.corsOrigins", []string{"http://localhost:4200"})
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.usersFile", "users.json")
	v.SetDefault("storage.groupsFile", "groups.json")
	v.SetDefault("storage.redis.host", "localhost")
	v.SetDefault("storage.redis.port", "6379")
	v.SetDefault("storage.cache.enabled", false)
	v.SetDefault("storage.cache.ttlSeconds", 30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix("rosterd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rosterd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/rosterd")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendRedis, BackendInMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendFile {
		if c.Storage.UsersFile == "" || c.Storage.GroupsFile == "" {
			return errors.New("file backend requires storage.usersFile and storage.groupsFile")
		}
	}
	return nil
}
