package repository

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

type NotificationRepository struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]entity.SystemNotification
	order         []uuid.UUID
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		notifications: make(map[uuid.UUID]entity.SystemNotification),
	}
}

func (r *NotificationRepository) Create(_ context.Context, n entity.SystemNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications[n.ID] = n
	r.order = append(r.order, n.ID)

	return nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return entity.ErrNotificationNotFound
	}

	n.IsRead = true
	r.notifications[id] = n

	return nil
}

func (r *NotificationRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.SystemNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]entity.SystemNotification, 0)

	for _, id := range r.order {
		if r.notifications[id].UserID == userID {
			items = append(items, r.notifications[id])
		}
	}

	return items, nil
}
