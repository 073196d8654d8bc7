package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProducer_DisabledWithoutBrokers(t *testing.T) {
	p := NewProducer(ProducerConfig{Brokers: []string{" ", ""}, Topic: "hr.applications"})
	assert.Nil(t, p)
	assert.NoError(t, p.Publish(context.Background(), EventApplicationSubmitted, "k", nil))
	assert.NoError(t, p.Close())
	assert.IsType(t, Noop{}, OrNoop(p))
}

func TestNewProducer_ConfiguresSASL(t *testing.T) {
	p := NewProducer(ProducerConfig{
		Brokers:  []string{"localhost:9092"},
		Topic:    "hr.applications",
		Username: "u",
		Password: "p",
	})
	if assert.NotNil(t, p) {
		assert.Equal(t, "hr.applications", p.writer.Topic)
		assert.NotNil(t, p.writer.Transport)
		assert.Same(t, p, OrNoop(p))
		assert.NoError(t, p.Close())
	}
}
