// Package redis stores each collection document whole in a single redis key.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

// Config holds all required info for initializing the redis driver
type Config struct {
	Host     string
	Port     string
	Database int32
	Username string
	Password string
}

// Store holds the handler for the redis client; individual documents are
// obtained from it with Document.
type Store struct {
	client redis.UniversalClient
}

// NewStore inits a Store instance and verifies connectivity with a ping.
func NewStore(config *Config) (*Store, error) {
	if config == nil {
		config = getDefaultConfig()
	}

	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	options := &redis.UniversalOptions{
		Addrs:    []string{addr},
		Username: config.Username,
		Password: config.Password,
		DB:       int(config.Database),
	}

	redisClient := redis.NewUniversalClient(options)

	// Enable OpenTelemetry instrumentation
	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		return nil, fmt.Errorf("failed to instrument redis: %w", err)
	}
	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		return nil, fmt.Errorf("failed to instrument redis metrics: %w", err)
	}

	s := Store{
		client: redisClient,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := s.client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	return &s, nil
}

func getDefaultConfig() *Config {
	return &Config{
		Username: "",
		Host:     "localhost",
		Port:     "6379",
		Database: 0,
		Password: "",
	}
}

// Document returns the document stored under the given key.
func (s *Store) Document(key string) *Document {
	return &Document{client: s.client, key: key}
}

// Disconnect closes the connection to the redis server.
func (s *Store) Disconnect() error {
	return s.client.Close()
}

// Document is one whole-read/whole-write slot backed by a redis string key.
type Document struct {
	client redis.UniversalClient
	key    string
}

func (d *Document) Read(ctx context.Context) ([]byte, error) {
	data, err := d.client.Get(ctx, d.key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", d.key, err)
	}
	return data, nil
}

func (d *Document) Write(ctx context.Context, data []byte) error {
	if err := d.client.Set(ctx, d.key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing key %q: %w", d.key, err)
	}
	return nil
}
