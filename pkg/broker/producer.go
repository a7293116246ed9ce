package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

type Producer struct {
	l             *slog.Logger
	w             *kafka.Writer
	requestsTopic string
	billingTopic  string
}

func NewProducer(l *slog.Logger, brokers []string, requestsTopic, billingTopic string) *Producer {
	l = l.WithGroup("kafka")

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:             l,
		w:             w,
		requestsTopic: requestsTopic,
		billingTopic:  billingTopic,
	}
}

type RequestSubmittedEvent struct {
	Event    string    `json:"event"`
	CardID   uuid.UUID `json:"card_id"`
	ClientID uuid.UUID `json:"client_id"`
	Title    string    `json:"title"`
}

func (p *Producer) SendRequestSubmitted(ctx context.Context, cardID, clientID uuid.UUID, title string) {
	p.send(ctx, p.requestsTopic, cardID.String(), RequestSubmittedEvent{
		Event:    EventRequestSubmitted,
		CardID:   cardID,
		ClientID: clientID,
		Title:    title,
	})
}

type RequestDecidedEvent struct {
	Event  string               `json:"event"`
	CardID uuid.UUID            `json:"card_id"`
	Status entity.RequestStatus `json:"status"`
}

func (p *Producer) SendRequestDecided(ctx context.Context, cardID uuid.UUID, status entity.RequestStatus) {
	p.send(ctx, p.requestsTopic, cardID.String(), RequestDecidedEvent{
		Event:  EventRequestDecided,
		CardID: cardID,
		Status: status,
	})
}

type ClientBlockedEvent struct {
	Event    string    `json:"event"`
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

func (p *Producer) SendClientBlocked(ctx context.Context, clientID uuid.UUID, name string) {
	p.send(ctx, p.billingTopic, clientID.String(), ClientBlockedEvent{
		Event:    EventClientBlocked,
		ClientID: clientID,
		Name:     name,
	})
}

type PaymentRegisteredEvent struct {
	Event    string    `json:"event"`
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
	PaidAt   time.Time `json:"paid_at"`
}

func (p *Producer) SendPaymentRegistered(ctx context.Context, clientID uuid.UUID, name string) {
	p.send(ctx, p.billingTopic, clientID.String(), PaymentRegisteredEvent{
		Event:    EventPaymentRegistered,
		ClientID: clientID,
		Name:     name,
		PaidAt:   time.Now(),
	})
}

func (p *Producer) send(ctx context.Context, topic, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// Noop satisfies the producer contract when Kafka is disabled.
type Noop struct{}

func (Noop) SendRequestSubmitted(context.Context, uuid.UUID, uuid.UUID, string)  {}
func (Noop) SendRequestDecided(context.Context, uuid.UUID, entity.RequestStatus) {}
func (Noop) SendClientBlocked(context.Context, uuid.UUID, string)                {}
func (Noop) SendPaymentRegistered(context.Context, uuid.UUID, string)            {}
