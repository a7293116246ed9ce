package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// SystemNotification is an in-app feed item for a single user.
// Append and mark-read only, never edited.
type SystemNotification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
