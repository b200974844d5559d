package queue

import (
	"context"
	"errors"
	"time"

	"github.com/SundayYogurt/social_user_service/internal/interfaces"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type KafkaConsumer struct {
	Reader  *kafka.Reader
	Handler interfaces.ConsumerHandler
	log     *zap.Logger
}

func NewKafkaConsumer(broker, topic, groupID string, sec Security, handler interfaces.ConsumerHandler, log *zap.Logger) *KafkaConsumer {
	dialer := &kafka.Dialer{
		Timeout:       10 * time.Second,
		DualStack:     true,
		TLS:           sec.tlsConfig(),
		SASLMechanism: sec.mechanism(),
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6, //10MB
		Dialer:   dialer,
	})

	return &KafkaConsumer{
		Reader:  reader,
		Handler: handler,
		log:     log.Named("kafka.consumer").With(zap.String("topic", topic)),
	}
}

// Listen reads until ctx is cancelled. Handler failures are logged and the
// message is committed anyway; the handlers are idempotent.
func (kc *KafkaConsumer) Listen(ctx context.Context) {
	for {
		msg, err := kc.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			kc.log.Warn("read failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		kc.log.Debug("received", zap.ByteString("key", msg.Key), zap.Int64("offset", msg.Offset))

		if err := kc.Handler.HandleMessage(ctx, msg.Key, msg.Value); err != nil {
			kc.log.Error("handler failed", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
	}
}

func (kc *KafkaConsumer) Close() error {
	return kc.Reader.Close()
}
