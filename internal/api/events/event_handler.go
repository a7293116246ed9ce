package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/pkg/broker"
)

type Service interface {
	NotifyByPermission(ctx context.Context, permission, title, body string) error
	NotifyRequestDecided(ctx context.Context, cardID uuid.UUID, status entity.RequestStatus) error
	FinanceEmails(ctx context.Context) ([]string, error)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

type EventHandler struct {
	s      Service
	mailer Mailer
}

func NewEventHandler(s Service, mailer Mailer) *EventHandler {
	return &EventHandler{s: s, mailer: mailer}
}

type requestEvent struct {
	Event    string               `json:"event"`
	CardID   uuid.UUID            `json:"card_id"`
	ClientID uuid.UUID            `json:"client_id"`
	Title    string               `json:"title"`
	Status   entity.RequestStatus `json:"status"`
}

func (h *EventHandler) OnRequestEvent(ctx context.Context, msg kafka.Message) error {
	var event requestEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	switch event.Event {
	case broker.EventRequestSubmitted:
		err = h.s.NotifyByPermission(ctx, entity.PermissionApproveRequests,
			"New client request", event.Title)
		if err != nil {
			return fmt.Errorf("notify approvers: %w", err)
		}

		emails, err := h.s.FinanceEmails(ctx)
		if err != nil {
			return fmt.Errorf("list finance emails: %w", err)
		}

		err = h.mailer.SendMessage("New client request",
			fmt.Sprintf("A new request is waiting for a decision: %s", event.Title), emails)
		if err != nil {
			return fmt.Errorf("send mail: %w", err)
		}

	case broker.EventRequestDecided:
		err = h.s.NotifyRequestDecided(ctx, event.CardID, event.Status)
		if err != nil {
			return fmt.Errorf("notify author: %w", err)
		}
	}

	return nil
}

type billingEvent struct {
	Event    string    `json:"event"`
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

func (h *EventHandler) OnBillingEvent(ctx context.Context, msg kafka.Message) error {
	var event billingEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	switch event.Event {
	case broker.EventClientBlocked:
		err = h.s.NotifyByPermission(ctx, entity.PermissionManageClients,
			"Client blocked for delinquency", event.Name)
		if err != nil {
			return fmt.Errorf("notify managers: %w", err)
		}

	case broker.EventPaymentRegistered:
		err = h.s.NotifyByPermission(ctx, entity.PermissionViewFinance,
			"Payment registered", event.Name)
		if err != nil {
			return fmt.Errorf("notify finance: %w", err)
		}
	}

	return nil
}
