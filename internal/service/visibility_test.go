package service_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

func TestVisibleCards(t *testing.T) {
	t.Parallel()

	clientA := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: "A"}
	clientB := entity.Client{ID: uuid.Must(uuid.NewV4()), Name: "B"}

	head := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleCreativeHead}
	clientA.AssignedHeadID = head.ID

	contributor := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleContributor}

	cards := []entity.TaskCard{
		{ID: uuid.Must(uuid.NewV4()), ClientID: clientA.ID, Assignees: []uuid.UUID{contributor.ID}},
		{ID: uuid.Must(uuid.NewV4()), ClientID: clientB.ID},
		{ID: uuid.Must(uuid.NewV4()), ClientID: clientA.ID},
		{ID: uuid.Must(uuid.NewV4()), Assignees: []uuid.UUID{contributor.ID}}, // internal
	}

	clients := []entity.Client{clientA, clientB}

	for _, tt := range []struct {
		name    string
		user    entity.User
		wantIDs []uuid.UUID
	}{
		{
			name:    "admin sees everything",
			user:    entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin},
			wantIDs: []uuid.UUID{cards[0].ID, cards[1].ID, cards[2].ID, cards[3].ID},
		},
		{
			name:    "client sees own client cards only",
			user:    entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleClient, ClientID: clientA.ID},
			wantIDs: []uuid.UUID{cards[0].ID, cards[2].ID},
		},
		{
			name:    "creative head sees managed client cards",
			user:    head,
			wantIDs: []uuid.UUID{cards[0].ID, cards[2].ID},
		},
		{
			name:    "contributor sees assigned cards",
			user:    contributor,
			wantIDs: []uuid.UUID{cards[0].ID, cards[3].ID},
		},
		{
			name:    "freelancer sees assigned cards",
			user:    entity.User{ID: contributor.ID, Role: entity.RoleFreelancer},
			wantIDs: []uuid.UUID{cards[0].ID, cards[3].ID},
		},
		{
			name:    "unassigned head sees nothing",
			user:    entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleCreativeHead},
			wantIDs: []uuid.UUID{},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := service.VisibleCards(tt.user, cards, clients)

			gotIDs := make([]uuid.UUID, 0, len(got))
			for _, c := range got {
				gotIDs = append(gotIDs, c.ID)
			}

			// Input ordering survives filtering.
			require.Equal(t, tt.wantIDs, gotIDs)

			// Filtering an already filtered set changes nothing.
			again := service.VisibleCards(tt.user, got, clients)
			require.Equal(t, got, again)
		})
	}
}

func TestVisibleCards_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	user := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleManager}

	cards := []entity.TaskCard{
		{ID: uuid.Must(uuid.NewV4()), Title: "first", DueDate: time.Now()},
		{ID: uuid.Must(uuid.NewV4()), Title: "second"},
	}

	got := service.VisibleCards(user, cards, nil)
	require.Len(t, got, 2)

	got[0].Title = "changed"
	require.Equal(t, "first", cards[0].Title)
}
