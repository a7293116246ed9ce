package service_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

func TestService_Suppliers(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	finance := f.addUser(t, entity.RoleFinance, uuid.Nil)

	ctx := f.as(finance)

	supplier, err := f.s.CreateSupplier(ctx, "Print Shop", "Printing", "shop@test.local", "+5511999990000")
	require.NoError(t, err)

	suppliers, err := f.s.ListSuppliers(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 1)

	item, err := f.s.CreatePurchase(ctx, supplier.ID, "500 flyers",
		decimal.NewFromFloat(320.50), time.Now().Add(240*time.Hour))
	require.NoError(t, err)
	require.False(t, item.Paid)

	_, err = f.s.CreatePurchase(ctx, uuid.Must(uuid.NewV4()), "ghost order",
		decimal.NewFromInt(10), time.Now())
	require.ErrorIs(t, err, entity.ErrSupplierNotFound)

	paid, err := f.s.MarkPurchasePaid(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, paid.Paid)

	items, err := f.s.ListPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0].Paid)

	contributor := f.addUser(t, entity.RoleContributor, uuid.Nil)

	_, err = f.s.CreateSupplier(f.as(contributor), "Nope", "", "", "")
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_Notifications(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	admin := f.addUser(t, entity.RoleAdmin, uuid.Nil)
	finance := f.addUser(t, entity.RoleFinance, uuid.Nil)
	contributor := f.addUser(t, entity.RoleContributor, uuid.Nil)

	err := f.s.NotifyByPermission(f.as(admin), entity.PermissionViewFinance,
		"Payment registered", "Acme paid")
	require.NoError(t, err)

	got, err := f.s.ListNotifications(f.as(finance))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.False(t, got[0].IsRead)

	none, err := f.s.ListNotifications(f.as(contributor))
	require.NoError(t, err)
	require.Empty(t, none)

	// Reading someone else's notification is not possible.
	err = f.s.MarkNotificationRead(f.as(contributor), got[0].ID)
	require.ErrorIs(t, err, entity.ErrNotificationNotFound)

	err = f.s.MarkNotificationRead(f.as(finance), got[0].ID)
	require.NoError(t, err)

	got, err = f.s.ListNotifications(f.as(finance))
	require.NoError(t, err)
	require.True(t, got[0].IsRead)
}
