package repository_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/repository"
)

func TestCardRepository_ListKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := repository.NewCardRepository()
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, 5)

	for i := 0; i < 5; i++ {
		card := entity.TaskCard{ID: uuid.Must(uuid.NewV4()), Title: "card"}
		require.NoError(t, repo.Create(ctx, card))
		ids = append(ids, card.ID)
	}

	// Updates must not reshuffle the listing.
	card, err := repo.GetByID(ctx, ids[2])
	require.NoError(t, err)
	card.Title = "renamed"
	require.NoError(t, repo.Update(ctx, card))

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 5)

	for i, c := range cards {
		require.Equal(t, ids[i], c.ID)
	}

	require.Equal(t, "renamed", cards[2].Title)
}

func TestCardRepository_MissingCard(t *testing.T) {
	t.Parallel()

	repo := repository.NewCardRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrCardNotFound)

	err = repo.Update(ctx, entity.TaskCard{ID: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, err, entity.ErrCardNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := repository.NewUserRepository()
	ctx := context.Background()

	first := entity.User{ID: uuid.Must(uuid.NewV4()), Name: "Ana", Email: "ana@test.local"}
	require.NoError(t, repo.Create(ctx, first))

	second := entity.User{ID: uuid.Must(uuid.NewV4()), Name: "Other", Email: "ana@test.local"}
	require.ErrorIs(t, repo.Create(ctx, second), entity.ErrDuplicateEmail)

	got, err := repo.GetByEmail(ctx, "ana@test.local")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "missing@test.local")
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestSeed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	users := repository.NewUserRepository()
	clients := repository.NewClientRepository()
	cards := repository.NewCardRepository()
	suppliers := repository.NewSupplierRepository()

	require.NoError(t, repository.Seed(ctx, users, clients, cards, suppliers, "changeme"))

	seededUsers, err := users.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seededUsers)

	for _, u := range seededUsers {
		require.NoError(t, u.Validate())
		require.NotEmpty(t, u.PasswordHash)
	}

	seededClients, err := clients.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seededClients)

	for _, c := range seededClients {
		require.NoError(t, c.Validate())
	}

	seededCards, err := cards.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seededCards)

	for _, c := range seededCards {
		require.NoError(t, c.Validate())
	}
}
