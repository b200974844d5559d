package queue

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrProducerClosed = errors.New("kafka producer not ready")

type Producer struct {
	writer  *kafka.Writer
	timeout time.Duration
	log     *zap.Logger
}

// NewProducer returns a synchronous writer. The topic is chosen per message.
func NewProducer(broker string, sec Security, log *zap.Logger) *Producer {
	transport := &kafka.Transport{
		SASL: sec.mechanism(),
		TLS:  sec.tlsConfig(),
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(broker),
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireAll,
			Async:                  false,
			AllowAutoTopicCreation: true,
			Transport:              transport,
			WriteTimeout:           10 * time.Second,
		},
		timeout: 5 * time.Second,
		log:     log.Named("kafka.producer"),
	}
}

func (p *Producer) Produce(ctx context.Context, topic string, key, value []byte) error {
	if p == nil || p.writer == nil {
		return ErrProducerClosed
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return err
	}
	p.log.Debug("published", zap.String("topic", topic), zap.ByteString("key", key))
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
