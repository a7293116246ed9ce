package service_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

func TestService_CreateUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	admin := f.addUser(t, entity.RoleAdmin, uuid.Nil)
	client := f.addClient(t)

	user, err := f.s.CreateUser(f.as(admin), service.CreateUserParams{
		Name:     "New Hire",
		Email:    "hire@test.local",
		Password: "s3cret",
		Role:     entity.RoleContributor,
	})
	require.NoError(t, err)
	require.True(t, user.IsActive)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

	_, err = f.s.CreateUser(f.as(admin), service.CreateUserParams{
		Name:     "Duplicate",
		Email:    "hire@test.local",
		Password: "s3cret",
		Role:     entity.RoleContributor,
	})
	require.ErrorIs(t, err, entity.ErrDuplicateEmail)

	_, err = f.s.CreateUser(f.as(admin), service.CreateUserParams{
		Name:     "Unlinked",
		Email:    "lonely@test.local",
		Password: "s3cret",
		Role:     entity.RoleClient,
	})
	require.ErrorIs(t, err, entity.ErrClientLinkRequired)

	_, err = f.s.CreateUser(f.as(admin), service.CreateUserParams{
		Name:     "Linked",
		Email:    "linked@test.local",
		Password: "s3cret",
		Role:     entity.RoleClient,
		ClientID: client.ID,
	})
	require.NoError(t, err)

	manager := f.addUser(t, entity.RoleManager, uuid.Nil)

	_, err = f.s.CreateUser(f.as(manager), service.CreateUserParams{
		Name:     "Nope",
		Email:    "nope@test.local",
		Password: "s3cret",
		Role:     entity.RoleContributor,
	})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_DeactivateUser(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	admin := f.addUser(t, entity.RoleAdmin, uuid.Nil)
	victim := f.addUser(t, entity.RoleContributor, uuid.Nil)

	got, err := f.s.DeactivateUser(f.as(admin), victim.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	// The account still exists for history references.
	users, err := f.s.ListUsers(f.as(admin))
	require.NoError(t, err)
	require.Len(t, users, 2)
}
