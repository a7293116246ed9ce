package entity_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

func validCard() entity.TaskCard {
	return entity.TaskCard{
		ID:       uuid.Must(uuid.NewV4()),
		Title:    "Card",
		Category: entity.CategoryDesign,
		Status:   entity.CardStatusToDo,
		Priority: entity.PriorityMedium,
	}
}

func TestTaskCard_Validate(t *testing.T) {
	t.Parallel()

	now := time.Now()

	for _, tt := range []struct {
		name    string
		mutate  func(*entity.TaskCard)
		wantErr error
	}{
		{
			name:   "valid card",
			mutate: func(*entity.TaskCard) {},
		},
		{
			name:    "missing title",
			mutate:  func(c *entity.TaskCard) { c.Title = "" },
			wantErr: entity.ErrMissingRequiredField,
		},
		{
			name:    "unknown status",
			mutate:  func(c *entity.TaskCard) { c.Status = "SHIPPED" },
			wantErr: entity.ErrInvalidCardStatus,
		},
		{
			name:    "unknown category",
			mutate:  func(c *entity.TaskCard) { c.Category = "Astrology" },
			wantErr: entity.ErrInvalidCategory,
		},
		{
			name: "request and planning workflows together",
			mutate: func(c *entity.TaskCard) {
				c.RequestStatus = entity.RequestStatusPending
				c.PlanningStatus = entity.PlanningStatusWaitingApproval
			},
			wantErr: entity.ErrConflictingWorkflows,
		},
		{
			name: "running timer marked paused",
			mutate: func(c *entity.TaskCard) {
				c.TimerStartedAt = &now
				c.IsPaused = true
			},
			wantErr: entity.ErrTimerStateConflict,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			card := validCard()
			tt.mutate(&card)

			err := card.Validate()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTaskCard_IsOverdue(t *testing.T) {
	t.Parallel()

	now := time.Now()

	card := validCard()
	card.DueDate = now.Add(-time.Hour)
	require.True(t, card.IsOverdue(now))

	card.Status = entity.CardStatusDone
	require.False(t, card.IsOverdue(now), "finished work is never overdue")

	card.Status = entity.CardStatusArchived
	require.False(t, card.IsOverdue(now))

	card.Status = entity.CardStatusDoing
	card.DueDate = now.Add(time.Hour)
	require.False(t, card.IsOverdue(now))
}
