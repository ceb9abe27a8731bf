// Package kafka publishes settled config notifications to a Kafka topic
package kafka

import (
	"context"
	"encoding/json"
	"time"

	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/logger"

	"github.com/IBM/sarama"
)

// Config configures the producer
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
	Retries  int
	Timeout  time.Duration

	// Acks is none, leader or all, blank means all
	Acks string
	// Compression is none, gzip, snappy, lz4 or zstd, blank means none
	Compression string
}

// Publisher sends JSON messages keyed by an entity id
// messages with the same key land on the same partition so per-key order holds
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// newSyncProducer is the sarama seam swapped by tests
var newSyncProducer = sarama.NewSyncProducer

// NewPublisher dials the brokers and returns a ready publisher
func NewPublisher(cfg Config, log *logger.Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, perr.InvalidArgf("kafka: no brokers configured")
	}
	if cfg.Topic == "" {
		return nil, perr.InvalidArgf("kafka: empty topic")
	}
	p, err := newSyncProducer(cfg.Brokers, saramaConfig(cfg))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "kafka: connect producer")
	}
	return NewWithProducer(p, cfg.Topic, log), nil
}

// NewWithProducer wraps an existing producer
func NewWithProducer(p sarama.SyncProducer, topic string, log *logger.Logger) *Publisher {
	if log == nil {
		log = logger.Named("kafka")
	}
	return &Publisher{producer: p, topic: topic, log: log}
}

func saramaConfig(cfg Config) *sarama.Config {
	sc := sarama.NewConfig()
	if cfg.ClientID != "" {
		sc.ClientID = cfg.ClientID
	}
	switch cfg.Acks {
	case "none":
		sc.Producer.RequiredAcks = sarama.NoResponse
	case "leader":
		sc.Producer.RequiredAcks = sarama.WaitForLocal
	default:
		sc.Producer.RequiredAcks = sarama.WaitForAll
	}
	switch cfg.Compression {
	case "gzip":
		sc.Producer.Compression = sarama.CompressionGZIP
	case "snappy":
		sc.Producer.Compression = sarama.CompressionSnappy
	case "lz4":
		sc.Producer.Compression = sarama.CompressionLZ4
	case "zstd":
		sc.Producer.Compression = sarama.CompressionZSTD
		sc.Version = sarama.V2_1_0_0
	}
	sc.Producer.Return.Successes = true
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	if cfg.Retries > 0 {
		sc.Producer.Retry.Max = cfg.Retries
	}
	if cfg.Timeout > 0 {
		sc.Producer.Timeout = cfg.Timeout
	}
	return sc
}

// Publish encodes v as JSON and sends it under key
func (p *Publisher) Publish(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "kafka: encode message")
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(data),
		Timestamp: time.Now(),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "kafka: send message")
	}

	p.log.Debug().
		Str("topic", p.topic).
		Str("key", key).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("kafka message sent")
	return nil
}

// Topic returns the destination topic
func (p *Publisher) Topic() string { return p.topic }

// Close flushes and closes the producer
func (p *Publisher) Close() error { return p.producer.Close() }
