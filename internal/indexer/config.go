package indexer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	mongodb_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/mongodb"
)

type IndexerConfig struct {
	Collections       []string `envconfig:"MONGO_COLLECTIONS_TO_INDEX"`
	IntervalSeconds   int      `envconfig:"MONGO_INDEXER_INTERVAL_SECONDS" default:"30"`
	UpdatedAtField    string   `envconfig:"MONGO_UPDATED_AT_FIELD" default:"updatedAt"`
	ExcludeAttributes []string `envconfig:"MONGO_EXCLUDE_ATTRIBUTES"`
	BatchSize         int      `envconfig:"MONGO_INDEXER_BATCH_SIZE" default:"10000"`
}

func NewIndexerConfigFromEnv() (*IndexerConfig, error) {
	config := &IndexerConfig{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("invalid indexer configuration: %w", err)
	}
	config.Collections = trimAll(config.Collections)
	config.ExcludeAttributes = trimAll(config.ExcludeAttributes)
	config.UpdatedAtField = strings.TrimSpace(config.UpdatedAtField)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *IndexerConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

func (c *IndexerConfig) Validate() error {
	if c.UpdatedAtField == "" {
		return errors.New("MONGO_UPDATED_AT_FIELD must not be empty")
	}
	if c.BatchSize <= 0 || c.BatchSize > mongodb_repo.MaxPageSize {
		return fmt.Errorf("MONGO_INDEXER_BATCH_SIZE must be between 1 and %d, got %d", mongodb_repo.MaxPageSize, c.BatchSize)
	}
	return nil
}

// ValidateService checks what the continuous service needs on top of a single run
func (c *IndexerConfig) ValidateService() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Collections) == 0 {
		return errors.New("MONGO_COLLECTIONS_TO_INDEX must list at least one collection")
	}
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("MONGO_INDEXER_INTERVAL_SECONDS must be positive, got %d", c.IntervalSeconds)
	}
	return nil
}

func trimAll(values []string) []string {
	trimmed := []string{}
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			trimmed = append(trimmed, value)
		}
	}
	return trimmed
}
