package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

// Notify appends an in-app notification for a single user. Called by
// the event consumer, not exposed over HTTP.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, title, body string) error {
	_, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	return s.notifRepo.Create(ctx, entity.SystemNotification{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	})
}

// NotifyByPermission fans a notification out to every active user
// whose role carries the permission.
func (s *Service) NotifyByPermission(ctx context.Context, permission, title, body string) error {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if !user.IsActive || !entity.HasPermission(user.Role, permission) {
			continue
		}

		err = s.Notify(ctx, user.ID, title, body)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) ListNotifications(ctx context.Context) ([]entity.SystemNotification, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.notifRepo.ListByUser(ctx, user.ID)
}

func (s *Service) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	notifications, err := s.notifRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	for _, n := range notifications {
		if n.ID == id {
			return s.notifRepo.MarkRead(ctx, id)
		}
	}

	return entity.ErrNotificationNotFound
}

// NotifyRequestDecided tells the request's author how the decision
// went. Driven by the event consumer, so there is no acting user in
// the context here.
func (s *Service) NotifyRequestDecided(ctx context.Context, cardID uuid.UUID, status entity.RequestStatus) error {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}

	var title string

	switch status {
	case entity.RequestStatusAccepted:
		title = "Your request was accepted"
	case entity.RequestStatusRejected:
		title = "Your request was rejected"
	case entity.RequestStatusNegotiation:
		title = "Your request moved to negotiation"
	default:
		title = "Your request was updated"
	}

	return s.Notify(ctx, card.CreatedBy, title, card.Title)
}

// FinanceEmails returns the addresses of active users who can approve
// requests, for the mail fan-out done by the event consumer.
func (s *Service) FinanceEmails(ctx context.Context) ([]string, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	emails := make([]string, 0)

	for _, user := range users {
		if user.IsActive && entity.HasPermission(user.Role, entity.PermissionApproveRequests) {
			emails = append(emails, user.Email)
		}
	}

	return emails, nil
}
