package opensearch

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	opensearch "github.com/opensearch-project/opensearch-go"
	"github.com/sirupsen/logrus"
)

type OpensearchConfig struct {
	Address            string `envconfig:"OPENSEARCH_ADDRESS" required:"true"`
	Username           string `envconfig:"OPENSEARCH_USERNAME" default:""`
	Password           string `envconfig:"OPENSEARCH_PASSWORD" default:""`
	InsecureSkipVerify bool   `envconfig:"OPENSEARCH_INSECURE_SKIP_VERIFY" default:"false"`
	IndexPrefix        string `envconfig:"OPENSEARCH_INDEX_PREFIX" default:"mongodb-"`
}

func NewOpensearchConfigFromEnv() (*OpensearchConfig, error) {
	config := &OpensearchConfig{}
	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *OpensearchConfig) Addresses() []string {
	addresses := []string{}
	for _, address := range strings.Split(c.Address, ",") {
		if address = strings.TrimSpace(address); address != "" {
			addresses = append(addresses, address)
		}
	}
	return addresses
}

func NewOpensearchClient(logger *logrus.Logger, config *OpensearchConfig) (*opensearch.Client, error) {
	return newOpensearchClient(logger, config, &http.Transport{
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: time.Second * 90,
		DialContext:           (&net.Dialer{Timeout: time.Second}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify, // local environments only
			MinVersion:         tls.VersionTLS12,
		},
	})
}

func newOpensearchClient(logger *logrus.Logger, config *OpensearchConfig, transport http.RoundTripper) (*opensearch.Client, error) {
	addresses := config.Addresses()
	cfg := opensearch.Config{
		Addresses: addresses,
		Username:  config.Username,
		Password:  config.Password,
		Transport: transport,
	}

	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize opensearch client: %w", err)
	}
	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get info from opensearch server: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, newResponseError("info", res)
	}
	logger.WithFields(logrus.Fields{
		"addresses": addresses,
	}).Info("connected to opensearch")
	return client, nil
}

func NewOpensearchClientFromEnv(logger *logrus.Logger) (*opensearch.Client, *OpensearchConfig, error) {
	config, err := NewOpensearchConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}
	client, err := NewOpensearchClient(logger, config)
	if err != nil {
		return nil, nil, err
	}
	return client, config, nil
}

// escapePathKey makes key usable as a single gjson/sjson path component
func escapePathKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
