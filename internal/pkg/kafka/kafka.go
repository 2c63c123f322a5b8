// Package kafka wraps the segmentio client with the store's broker
// conventions.
package kafka

import (
	"context"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Client carries the broker list parsed from configuration. An empty list
// disables publishing, which is the local-development default.
type Client struct {
	Brokers []string
}

// NewClient parses a comma-separated broker list.
func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

// Enabled reports whether any brokers are configured.
func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

// NewWriter builds a writer for the topic. Messages are keyed, so the hash
// balancer keeps one aggregate's events on one partition.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// Publish writes one pre-serialized message.
func Publish(ctx context.Context, writer *kafka.Writer, key string, value []byte) error {
	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
	})
}
