package stream

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/sirupsen/logrus"
)

const (
	WriteTimeout time.Duration = 5 * time.Second
)

//go:generate mockgen -source=writer.go -package=stream -destination=mock_writer.go

// mocking kafka-go producer for testing
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventStreamWriter interface {
	Write(ctx context.Context, key []byte, value interface{}) error
	Close()
}

type KafkaWriter struct {
	producer Producer
	logger   *logrus.Logger
	topic    string
}

func (w *KafkaWriter) Write(ctx context.Context, key []byte, value interface{}) error {
	encodedValue, err := json.Marshal(value)
	if err != nil {
		w.logger.WithError(err).Error("failed to encode json")
		return err
	}
	msg := kafka.Message{
		Key:   key,
		Value: encodedValue,
	}
	w.logger.WithFields(logrus.Fields{
		"key":   string(key),
		"topic": w.topic,
	}).Debug("sending notification")
	return w.producer.WriteMessages(ctx, msg)
}

func (w *KafkaWriter) Close() {
	if err := w.producer.Close(); err != nil {
		w.logger.WithError(err).Warn("failed to close kafka producer")
	}
}

func newProducer(config *KafkaConfig) (Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers()...),
		Topic:        config.DestinationTopic,
		Balancer:     &kafka.ReferenceHash{},
		Compression:  compress.Gzip,
		Async:        false,
		WriteTimeout: WriteTimeout,
	}
	mechanism, err := getMechanism(config)
	if err != nil {
		return nil, err
	}
	if mechanism != nil {
		writer.Transport = &kafka.Transport{
			SASL: mechanism,
			// let config pick default root CA, but define it to force TLS
			TLS: &tls.Config{},
		}
	}
	return writer, nil
}

func NewWriter(logger *logrus.Logger, config *KafkaConfig) (*KafkaWriter, error) {
	p, err := newProducer(config)
	if err != nil {
		return nil, err
	}
	return &KafkaWriter{
		producer: p,
		logger:   logger,
		topic:    config.DestinationTopic,
	}, nil
}

// NewWriterFromEnv returns a nil writer when no bootstrap server is configured
func NewWriterFromEnv(logger *logrus.Logger) (EventStreamWriter, error) {
	config, err := NewKafkaConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if !config.Enabled() {
		logger.Info("KAFKA_BOOTSTRAP_SERVER not set, sync notifications are disabled")
		return nil, nil
	}
	writer, err := NewWriter(logger, config)
	if err != nil {
		return nil, err
	}
	return writer, nil
}
