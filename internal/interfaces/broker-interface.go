package interfaces

import "context"

type ConsumerHandler interface {
	HandleMessage(ctx context.Context, key, value []byte) error
}

// ProducerHandler publishes to a topic. Callers treat it as fire-and-forget.
type ProducerHandler interface {
	Produce(ctx context.Context, topic string, key, value []byte) error
}
