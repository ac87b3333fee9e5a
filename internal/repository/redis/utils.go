package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type ValkeyConfig struct {
	Address    string        `envconfig:"VALKEY_ADDRESS" default:""`
	Password   string        `envconfig:"VALKEY_PASSWORD" default:""`
	Expiration time.Duration `envconfig:"VALKEY_EXPIRATION" default:"720h"` // 30 days
	LockTTL    time.Duration `envconfig:"VALKEY_LOCK_TTL" default:"15m"`
}

func NewValkeyConfigFromEnv() (*ValkeyConfig, error) {
	config := &ValkeyConfig{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to parse valkey config: %w", err)
	}
	return config, nil
}

func (c *ValkeyConfig) Enabled() bool {
	return c.Address != ""
}

func NewRedisClient(ctx context.Context, logger *logrus.Logger, config *ValkeyConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Address,
		Password: config.Password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not ping redis compatible server at %s: %w", config.Address, err)
	}
	logger.WithFields(logrus.Fields{
		"addr": config.Address,
	}).Info("connected to redis compatible server")
	return client, nil
}

// NewRedisClientFromEnv returns a nil client when no server is configured
func NewRedisClientFromEnv(ctx context.Context, logger *logrus.Logger) (*redis.Client, *ValkeyConfig, error) {
	config, err := NewValkeyConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}
	if !config.Enabled() {
		logger.Info("VALKEY_ADDRESS not set, sync runs will not be recorded nor locked")
		return nil, config, nil
	}
	client, err := NewRedisClient(ctx, logger, config)
	if err != nil {
		return nil, nil, err
	}
	return client, config, nil
}
