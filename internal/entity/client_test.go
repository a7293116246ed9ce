package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

func TestNewOnboardedClient(t *testing.T) {
	t.Parallel()

	client := entity.NewOnboardedClient("Acme", "Acme Inc", "billing@acme.test",
		decimal.NewFromInt(7500), true, 15)

	require.True(t, client.IsActive)
	require.False(t, client.IsBlocked)
	require.Equal(t, entity.PaymentStatusOnTime, client.PaymentStatus)
	require.Equal(t, entity.OnboardingStepsTotal, client.OnboardingStep)
	require.NoError(t, client.Validate())
}

func TestClient_Validate(t *testing.T) {
	t.Parallel()

	base := entity.NewOnboardedClient("Acme", "", "", decimal.Zero, false, 10)

	for _, tt := range []struct {
		name    string
		mutate  func(*entity.Client)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*entity.Client) {},
		},
		{
			name:    "missing name",
			mutate:  func(c *entity.Client) { c.Name = "" },
			wantErr: entity.ErrMissingRequiredField,
		},
		{
			name:    "payment day out of range",
			mutate:  func(c *entity.Client) { c.PaymentDay = 32 },
			wantErr: entity.ErrInvalidPaymentDay,
		},
		{
			name:    "blocked while current",
			mutate:  func(c *entity.Client) { c.IsBlocked = true },
			wantErr: entity.ErrBlockedButCurrent,
		},
		{
			name: "blocked while delinquent is fine",
			mutate: func(c *entity.Client) {
				c.IsBlocked = true
				c.PaymentStatus = entity.PaymentStatusDelinquent
			},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := base
			tt.mutate(&client)

			err := client.Validate()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestPaymentStatus_IsOverdue(t *testing.T) {
	t.Parallel()

	require.False(t, entity.PaymentStatusOnTime.IsOverdue())
	require.False(t, entity.PaymentStatusPending.IsOverdue())
	require.True(t, entity.PaymentStatusLate.IsOverdue())
	require.True(t, entity.PaymentStatusDelinquent.IsOverdue())
}
