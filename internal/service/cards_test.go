package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

func TestService_CreateCard(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	manager := f.addUser(t, entity.RoleManager, uuid.Nil)
	client := f.addClient(t)

	card, err := f.s.CreateCard(f.as(manager), service.CreateCardParams{
		Title:    "Landing page",
		ClientID: client.ID,
		Category: entity.CategoryWeb,
		DueDate:  time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	require.Equal(t, entity.CardStatusBacklog, card.Status)
	require.Equal(t, entity.PriorityMedium, card.Priority)
	require.Equal(t, manager.ID, card.CreatedBy)
	require.Len(t, card.History, 1)
	require.Equal(t, "created the card", card.History[0].Action)

	_, err = f.s.CreateCard(f.as(manager), service.CreateCardParams{
		Title:    "Orphan",
		ClientID: uuid.Must(uuid.NewV4()),
		Category: entity.CategoryWeb,
	})
	require.ErrorIs(t, err, entity.ErrClientNotFound)

	clientUser := f.addUser(t, entity.RoleClient, client.ID)

	_, err = f.s.CreateCard(f.as(clientUser), service.CreateCardParams{
		Title:    "Not allowed",
		Category: entity.CategoryWeb,
	})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_MutationsAppendOneHistoryEntry(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	manager := f.addUser(t, entity.RoleManager, uuid.Nil)
	client := f.addClient(t)
	card := f.addCard(t, client.ID)

	ctx := f.as(manager)

	mutations := []func() error{
		func() error { _, err := f.s.SetCardStatus(ctx, card.ID, entity.CardStatusDoing); return err },
		func() error { _, err := f.s.AddComment(ctx, card.ID, "looks good"); return err },
		func() error { _, err := f.s.AddChecklistItem(ctx, card.ID, "export assets"); return err },
		func() error { _, err := f.s.AddLabel(ctx, card.ID, "urgent", "#ff0000"); return err },
		func() error { _, err := f.s.ToggleAssignee(ctx, card.ID, manager.ID); return err },
		func() error { _, err := f.s.StartTimer(ctx, card.ID); return err },
		func() error { _, err := f.s.StopTimer(ctx, card.ID); return err },
	}

	for i, mutate := range mutations {
		require.NoError(t, mutate())

		got, err := f.cards.GetByID(context.Background(), card.ID)
		require.NoError(t, err)
		require.Len(t, got.History, i+1, "each mutation writes exactly one history entry")
	}
}

func TestService_SetCardStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	manager := f.addUser(t, entity.RoleManager, uuid.Nil)
	client := f.addClient(t)
	card := f.addCard(t, client.ID)

	got, err := f.s.SetCardStatus(f.as(manager), card.ID, entity.CardStatusDone)
	require.NoError(t, err)
	require.Equal(t, entity.CardStatusDone, got.Status)
	require.Equal(t, "moved the card from TO_DO to DONE", got.History[len(got.History)-1].Action)

	// Any status is reachable from any other, Done included.
	got, err = f.s.SetCardStatus(f.as(manager), card.ID, entity.CardStatusBacklog)
	require.NoError(t, err)
	require.Equal(t, entity.CardStatusBacklog, got.Status)

	_, err = f.s.SetCardStatus(f.as(manager), card.ID, entity.CardStatus("SHIPPED"))
	require.ErrorIs(t, err, entity.ErrInvalidCardStatus)
}

func TestService_CardByID_InvisibleReadsAsMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	clientA := f.addClient(t)
	clientB := f.addClient(t)
	card := f.addCard(t, clientA.ID)

	outsider := f.addUser(t, entity.RoleClient, clientB.ID)

	_, err := f.s.CardByID(f.as(outsider), card.ID)
	require.ErrorIs(t, err, entity.ErrCardNotFound)

	owner := f.addUser(t, entity.RoleClient, clientA.ID)

	got, err := f.s.CardByID(f.as(owner), card.ID)
	require.NoError(t, err)
	require.Equal(t, card.ID, got.ID)
}

func TestService_Timer(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	manager := f.addUser(t, entity.RoleManager, uuid.Nil)
	client := f.addClient(t)
	card := f.addCard(t, client.ID)

	ctx := f.as(manager)

	_, err := f.s.PauseTimer(ctx, card.ID)
	require.ErrorIs(t, err, entity.ErrTimerNotRunning)

	got, err := f.s.StartTimer(ctx, card.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TimerStartedAt)
	require.False(t, got.IsPaused)

	_, err = f.s.StartTimer(ctx, card.ID)
	require.ErrorIs(t, err, entity.ErrTimerAlreadyRunning)

	got, err = f.s.PauseTimer(ctx, card.ID)
	require.NoError(t, err)
	require.Nil(t, got.TimerStartedAt)
	require.True(t, got.IsPaused)
	require.Len(t, got.TimeLogs, 1)
	require.Equal(t, manager.ID, got.TimeLogs[0].UserID)
	require.GreaterOrEqual(t, got.TimeLogs[0].Hours, 0.0)

	got, err = f.s.StartTimer(ctx, card.ID)
	require.NoError(t, err)
	require.False(t, got.IsPaused)

	got, err = f.s.StopTimer(ctx, card.ID)
	require.NoError(t, err)
	require.Nil(t, got.TimerStartedAt)
	require.False(t, got.IsPaused)
	require.Len(t, got.TimeLogs, 2)

	_, err = f.s.StopTimer(ctx, card.ID)
	require.ErrorIs(t, err, entity.ErrTimerNotRunning)
}

func TestService_DecideRequest(t *testing.T) {
	t.Parallel()

	newRequest := func(t *testing.T, f *fixture, clientID uuid.UUID) entity.TaskCard {
		t.Helper()

		card := f.addCard(t, clientID)
		card.Status = entity.CardStatusBacklog
		card.RequestStatus = entity.RequestStatusPending
		require.NoError(t, f.cards.Update(context.Background(), card))

		return card
	}

	t.Run("accept pulls the card into to-do", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		finance := f.addUser(t, entity.RoleFinance, uuid.Nil)
		client := f.addClient(t)
		card := newRequest(t, f, client.ID)

		got, err := f.s.DecideRequest(f.as(finance), card.ID, entity.RequestStatusAccepted)
		require.NoError(t, err)
		require.Equal(t, entity.RequestStatusAccepted, got.RequestStatus)
		require.Equal(t, entity.CardStatusToDo, got.Status)
		require.Equal(t, entity.RequestStatusAccepted, f.broker.requestsDecided[card.ID])

		_, err = f.s.DecideRequest(f.as(finance), card.ID, entity.RequestStatusRejected)
		require.ErrorIs(t, err, entity.ErrRequestAlreadyDecided)
	})

	t.Run("reject leaves the column alone", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		finance := f.addUser(t, entity.RoleFinance, uuid.Nil)
		client := f.addClient(t)
		card := newRequest(t, f, client.ID)

		got, err := f.s.DecideRequest(f.as(finance), card.ID, entity.RequestStatusRejected)
		require.NoError(t, err)
		require.Equal(t, entity.RequestStatusRejected, got.RequestStatus)
		require.Equal(t, entity.CardStatusBacklog, got.Status)
	})

	t.Run("negotiation stays open for another decision", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		finance := f.addUser(t, entity.RoleFinance, uuid.Nil)
		client := f.addClient(t)
		card := newRequest(t, f, client.ID)

		got, err := f.s.DecideRequest(f.as(finance), card.ID, entity.RequestStatusNegotiation)
		require.NoError(t, err)
		require.Equal(t, entity.RequestStatusNegotiation, got.RequestStatus)

		got, err = f.s.DecideRequest(f.as(finance), card.ID, entity.RequestStatusAccepted)
		require.NoError(t, err)
		require.Equal(t, entity.RequestStatusAccepted, got.RequestStatus)
	})

	t.Run("plain cards are not decidable", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		finance := f.addUser(t, entity.RoleFinance, uuid.Nil)
		client := f.addClient(t)
		card := f.addCard(t, client.ID)

		_, err := f.s.DecideRequest(f.as(finance), card.ID, entity.RequestStatusAccepted)
		require.ErrorIs(t, err, entity.ErrNotARequest)
	})

	t.Run("contributors cannot decide", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		client := f.addClient(t)
		card := newRequest(t, f, client.ID)
		contributor := f.addUser(t, entity.RoleContributor, uuid.Nil)

		_, err := f.s.DecideRequest(f.as(contributor), card.ID, entity.RequestStatusAccepted)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})
}

func TestService_SetFinancialValue(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	finance := f.addUser(t, entity.RoleFinance, uuid.Nil)
	client := f.addClient(t)
	card := f.addCard(t, client.ID)

	got, err := f.s.SetFinancialValue(f.as(finance), card.ID, decimal.NewFromFloat(149.90))
	require.NoError(t, err)
	require.NotNil(t, got.FinancialValue)
	require.True(t, got.FinancialValue.Equal(decimal.NewFromFloat(149.90)))

	_, err = f.s.SetFinancialValue(f.as(finance), card.ID, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, entity.ErrInvalidAmount)

	manager := f.addUser(t, entity.RoleManager, uuid.Nil)

	_, err = f.s.SetFinancialValue(f.as(manager), card.ID, decimal.NewFromInt(10))
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CardActivity(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	manager := f.addUser(t, entity.RoleManager, uuid.Nil)
	client := f.addClient(t)
	card := f.addCard(t, client.ID)

	base := time.Now().Add(-time.Hour)

	card.Comments = []entity.Comment{
		{ID: uuid.Must(uuid.NewV4()), Author: "Ana", Text: "second", CreatedAt: base.Add(2 * time.Minute)},
		{ID: uuid.Must(uuid.NewV4()), Author: "Ana", Text: "fourth", CreatedAt: base.Add(10 * time.Minute)},
	}
	card.History = []entity.HistoryLog{
		{ID: uuid.Must(uuid.NewV4()), UserName: "Bob", Action: "first", Timestamp: base},
		{ID: uuid.Must(uuid.NewV4()), UserName: "Bob", Action: "third", Timestamp: base.Add(5 * time.Minute)},
	}
	require.NoError(t, f.cards.Update(context.Background(), card))

	entries, err := f.s.CardActivity(f.as(manager), card.ID)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	require.Equal(t, "first", entries[0].Text)
	require.Equal(t, "second", entries[1].Text)
	require.Equal(t, "third", entries[2].Text)
	require.Equal(t, "fourth", entries[3].Text)

	require.Equal(t, "history", entries[0].Kind)
	require.Equal(t, "comment", entries[1].Kind)

	// The projection reads, never writes.
	got, err := f.cards.GetByID(context.Background(), card.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	require.Len(t, got.History, 2)
}

func TestService_Checklist(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	manager := f.addUser(t, entity.RoleManager, uuid.Nil)
	client := f.addClient(t)
	card := f.addCard(t, client.ID)

	ctx := f.as(manager)

	got, err := f.s.AddChecklistItem(ctx, card.ID, "write brief")
	require.NoError(t, err)
	require.Len(t, got.Checklist, 1)
	require.False(t, got.Checklist[0].Done)

	itemID := got.Checklist[0].ID

	got, err = f.s.ToggleChecklistItem(ctx, card.ID, itemID)
	require.NoError(t, err)
	require.True(t, got.Checklist[0].Done)

	got, err = f.s.DeleteChecklistItem(ctx, card.ID, itemID)
	require.NoError(t, err)
	require.Empty(t, got.Checklist)

	_, err = f.s.ToggleChecklistItem(ctx, card.ID, itemID)
	require.ErrorIs(t, err, entity.ErrChecklistItemNotFound)
}
