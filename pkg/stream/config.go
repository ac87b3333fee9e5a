package stream

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const DefaultSyncEventsTopic = "mongodb-sync-events"

type KafkaConfig struct {
	BootstrapServer  string `envconfig:"KAFKA_BOOTSTRAP_SERVER" default:""`
	ClientID         string `envconfig:"KAFKA_CLIENT_ID" default:""`
	ClientSecret     string `envconfig:"KAFKA_CLIENT_SECRET" default:""`
	DestinationTopic string `envconfig:"KAFKA_SYNC_EVENTS_TOPIC" default:"mongodb-sync-events"`
}

func NewKafkaConfigFromEnv() (*KafkaConfig, error) {
	config := &KafkaConfig{}
	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *KafkaConfig) Enabled() bool {
	return c.BootstrapServer != ""
}

func (c *KafkaConfig) Brokers() []string {
	brokers := []string{}
	for _, broker := range strings.Split(c.BootstrapServer, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

// getMechanism returns nil when no credentials are configured
func getMechanism(config *KafkaConfig) (sasl.Mechanism, error) {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, nil
	}
	return &plain.Mechanism{
		Username: config.ClientID,
		Password: config.ClientSecret,
	}, nil
}
