package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

func TestService_OnboardClient(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	manager := f.addUser(t, entity.RoleManager, uuid.Nil)

	client, err := f.s.OnboardClient(f.as(manager), service.OnboardClientParams{
		Name:          "Acme",
		CompanyName:   "Acme Inc",
		Email:         "billing@acme.test",
		ContractValue: decimal.NewFromInt(8000),
		IsRecurring:   true,
		PaymentDay:    5,
	})
	require.NoError(t, err)

	// The account always starts clean, whatever the form collected.
	require.True(t, client.IsActive)
	require.False(t, client.IsBlocked)
	require.Equal(t, entity.PaymentStatusOnTime, client.PaymentStatus)
	require.Equal(t, entity.OnboardingStepsTotal, client.OnboardingStep)

	_, err = f.s.OnboardClient(f.as(manager), service.OnboardClientParams{
		Name:       "Bad Day",
		PaymentDay: 42,
	})
	require.ErrorIs(t, err, entity.ErrInvalidPaymentDay)

	contributor := f.addUser(t, entity.RoleContributor, uuid.Nil)

	_, err = f.s.OnboardClient(f.as(contributor), service.OnboardClientParams{
		Name:       "Nope",
		PaymentDay: 1,
	})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_RegisterPayment_Unblocks(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	finance := f.addUser(t, entity.RoleFinance, uuid.Nil)

	client := f.addClient(t)
	client.PaymentStatus = entity.PaymentStatusDelinquent
	client.IsBlocked = true
	require.NoError(t, f.clients.Update(context.Background(), client))

	got, err := f.s.RegisterPayment(f.as(finance), client.ID)
	require.NoError(t, err)

	require.Equal(t, entity.PaymentStatusOnTime, got.PaymentStatus)
	require.False(t, got.IsBlocked)
	require.NotNil(t, got.LastPaymentDate)
	require.Equal(t, []uuid.UUID{client.ID}, f.broker.paymentsRegistered)
}

func TestService_SetPaymentStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	finance := f.addUser(t, entity.RoleFinance, uuid.Nil)
	client := f.addClient(t)

	got, err := f.s.SetPaymentStatus(f.as(finance), client.ID, entity.PaymentStatusLate)
	require.NoError(t, err)
	require.Equal(t, entity.PaymentStatusLate, got.PaymentStatus)

	_, err = f.s.SetPaymentStatus(f.as(finance), client.ID, entity.PaymentStatus("broke"))
	require.ErrorIs(t, err, entity.ErrInvalidPaymentStatus)

	// A blocked account cannot be walked back to current by hand.
	client.PaymentStatus = entity.PaymentStatusDelinquent
	client.IsBlocked = true
	require.NoError(t, f.clients.Update(context.Background(), client))

	_, err = f.s.SetPaymentStatus(f.as(finance), client.ID, entity.PaymentStatusOnTime)
	require.ErrorIs(t, err, entity.ErrBlockedButCurrent)

	got, err = f.s.SetPaymentStatus(f.as(finance), client.ID, entity.PaymentStatusLate)
	require.NoError(t, err)
	require.True(t, got.IsBlocked)
}

func TestService_BlockOverdueClients(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	onTime := f.addClient(t)

	late := f.addClient(t)
	late.PaymentStatus = entity.PaymentStatusLate
	require.NoError(t, f.clients.Update(context.Background(), late))

	delinquent := f.addClient(t)
	delinquent.PaymentStatus = entity.PaymentStatusDelinquent
	require.NoError(t, f.clients.Update(context.Background(), delinquent))

	alreadyBlocked := f.addClient(t)
	alreadyBlocked.PaymentStatus = entity.PaymentStatusDelinquent
	alreadyBlocked.IsBlocked = true
	require.NoError(t, f.clients.Update(context.Background(), alreadyBlocked))

	blocked, err := f.s.BlockOverdueClients(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, blocked)
	require.ElementsMatch(t, []uuid.UUID{late.ID, delinquent.ID}, f.broker.clientsBlocked)

	got, err := f.clients.GetByID(context.Background(), onTime.ID)
	require.NoError(t, err)
	require.False(t, got.IsBlocked)

	got, err = f.clients.GetByID(context.Background(), late.ID)
	require.NoError(t, err)
	require.True(t, got.IsBlocked)

	// The sweep settles after one pass.
	blocked, err = f.s.BlockOverdueClients(context.Background())
	require.NoError(t, err)
	require.Zero(t, blocked)
}

func TestService_AssignTeam(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	admin := f.addUser(t, entity.RoleAdmin, uuid.Nil)
	head := f.addUser(t, entity.RoleCreativeHead, uuid.Nil)
	cs := f.addUser(t, entity.RoleCustomerSuccess, uuid.Nil)
	contributor := f.addUser(t, entity.RoleContributor, uuid.Nil)
	client := f.addClient(t)

	got, err := f.s.AssignTeam(f.as(admin), client.ID, head.ID, cs.ID)
	require.NoError(t, err)
	require.Equal(t, head.ID, got.AssignedHeadID)
	require.Equal(t, cs.ID, got.AssignedCSID)

	_, err = f.s.AssignTeam(f.as(admin), client.ID, contributor.ID, cs.ID)
	require.ErrorIs(t, err, entity.ErrInvalidRole)

	got, err = f.s.AssignTeam(f.as(admin), client.ID, uuid.Nil, uuid.Nil)
	require.NoError(t, err)
	require.True(t, got.AssignedHeadID.IsNil())
	require.True(t, got.AssignedCSID.IsNil())
}

func TestService_ListClients_ClientSeesOnlyOwn(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	own := f.addClient(t)
	other := f.addClient(t)

	clientUser := f.addUser(t, entity.RoleClient, own.ID)

	got, err := f.s.ListClients(f.as(clientUser))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, own.ID, got[0].ID)

	manager := f.addUser(t, entity.RoleManager, uuid.Nil)

	got, err = f.s.ListClients(f.as(manager))
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = f.s.ClientByID(f.as(clientUser), other.ID)
	require.ErrorIs(t, err, entity.ErrClientNotFound)
}
