package producer

import (
	"matching-srv/internal/matching"
	pkgKafka "matching-srv/pkg/kafka"
	"matching-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates the match result publisher.
func New(l log.Logger, producer pkgKafka.IProducer) matching.Publisher {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
