// Package events publishes declaration decisions so surrounding services
// can observe and react to them.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	streamName     = "BAOSAM_EVENTS"
	defaultSubject = "baosam.declarations"
)

// DeclarationEvent is the wire form of a declare decision.
type DeclarationEvent struct {
	GameID         string    `json:"game_id"`
	PlayerID       string    `json:"player_id"`
	Declared       bool      `json:"declared"`
	Reason         string    `json:"reason"`
	WinProbability float64   `json:"win_probability"`
	NumCombos      int       `json:"num_combos"`
	NumCards       int       `json:"num_cards"`
	At             time.Time `json:"at"`
}

// Publisher publishes declaration events over NATS JetStream.
type Publisher struct {
	nc      *nats.Conn
	js      nats.JetStreamContext
	subject string
}

// NewPublisher connects to NATS and ensures the event stream exists.
// An empty subject uses the default.
func NewPublisher(natsURL, subject string) (*Publisher, error) {
	if subject == "" {
		subject = defaultSubject
	}

	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	if _, err := js.StreamInfo(streamName); err != nil {
		_, err = js.AddStream(&nats.StreamConfig{
			Name:     streamName,
			Subjects: []string{subject},
			Storage:  nats.FileStorage,
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("create stream: %w", err)
		}
	}

	return &Publisher{nc: nc, js: js, subject: subject}, nil
}

// Publish sends one declaration event. Timestamps default to now.
func (p *Publisher) Publish(event DeclarationEvent) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err := p.js.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Subscribe registers a durable consumer over the declaration stream.
func (p *Publisher) Subscribe(consumerName string, handler func(DeclarationEvent)) (*nats.Subscription, error) {
	return p.js.Subscribe(p.subject, func(msg *nats.Msg) {
		var event DeclarationEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			msg.Nak()
			return
		}
		handler(event)
		msg.Ack()
	}, nats.Durable(consumerName), nats.ManualAck())
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
