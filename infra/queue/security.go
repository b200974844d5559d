package queue

import (
	"crypto/tls"

	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// Security carries the optional SASL/PLAIN credentials and TLS switch used
// by managed brokers. A zero value talks plaintext to a local broker.
type Security struct {
	Username string
	Password string
	TLS      bool
}

func (s Security) mechanism() sasl.Mechanism {
	if s.Username == "" {
		return nil
	}
	return plain.Mechanism{Username: s.Username, Password: s.Password}
}

func (s Security) tlsConfig() *tls.Config {
	if !s.TLS {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}
