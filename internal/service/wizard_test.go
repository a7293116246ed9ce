package service_test

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

func TestValidateWizardStep(t *testing.T) {
	t.Parallel()

	staff := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleManager}
	client := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleClient, ClientID: uuid.Must(uuid.NewV4())}

	clientID := uuid.Must(uuid.NewV4())

	for _, tt := range []struct {
		name       string
		actor      entity.User
		step       int
		in         service.WizardInput
		wantFields []string
	}{
		{
			name:       "step 1 missing category",
			actor:      staff,
			step:       1,
			in:         service.WizardInput{},
			wantFields: []string{"category"},
		},
		{
			name:       "step 1 staff must pick a client",
			actor:      staff,
			step:       1,
			in:         service.WizardInput{Category: entity.CategoryDesign},
			wantFields: []string{"client"},
		},
		{
			name:  "step 1 client context is pre-filled",
			actor: client,
			step:  1,
			in:    service.WizardInput{Category: entity.CategoryDesign},
		},
		{
			name:  "step 1 internal work needs no client",
			actor: staff,
			step:  1,
			in:    service.WizardInput{Category: entity.CategoryAdministrative},
		},
		{
			name:  "step 2 skipped for planning",
			actor: staff,
			step:  2,
			in:    service.WizardInput{Category: entity.CategoryPlanning},
		},
		{
			name:       "step 2 missing format",
			actor:      staff,
			step:       2,
			in:         service.WizardInput{Category: entity.CategoryDesign, ClientID: clientID},
			wantFields: []string{"format"},
		},
		{
			name:       "step 2 custom format needs a note",
			actor:      staff,
			step:       2,
			in:         service.WizardInput{Category: entity.CategoryDesign, ClientID: clientID, Format: entity.FormatCustom, FormatNote: "   "},
			wantFields: []string{"formatNote"},
		},
		{
			name:       "step 2 financial needs a subtype",
			actor:      staff,
			step:       2,
			in:         service.WizardInput{Category: entity.CategoryFinancial},
			wantFields: []string{"financialType"},
		},
		{
			name:  "step 2 financial with subtype passes",
			actor: staff,
			step:  2,
			in:    service.WizardInput{Category: entity.CategoryFinancial, FinancialType: entity.FinancialTypeReimbursement},
		},
		{
			name:       "step 3 whitespace title and description",
			actor:      staff,
			step:       3,
			in:         service.WizardInput{Title: "   ", Description: "\t"},
			wantFields: []string{"title", "description"},
		},
		{
			name:  "step 4 reference link is optional",
			actor: staff,
			step:  4,
			in:    service.WizardInput{},
		},
		{
			name:       "step 5 missing due date",
			actor:      staff,
			step:       5,
			in:         service.WizardInput{},
			wantFields: []string{"dueDate"},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := service.ValidateWizardStep(tt.actor, tt.step, tt.in)

			require.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				require.True(t, errs[field], "field %q should be flagged", field)
			}
		})
	}
}

func TestService_SubmitRequest(t *testing.T) {
	t.Parallel()

	t.Run("client design request enters the request workflow", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		client := f.addClient(t)
		clientUser := f.addUser(t, entity.RoleClient, client.ID)

		card, err := f.s.SubmitRequest(f.as(clientUser), service.WizardInput{
			Category:    entity.CategoryDesign,
			Format:      "Square",
			Title:       "  Spring banner  ",
			Description: "A banner for the spring campaign",
			RefLink:     "https://example.com/brief",
			DueDate:     time.Now().Add(7 * 24 * time.Hour),
		})
		require.NoError(t, err)

		require.Equal(t, client.ID, card.ClientID, "client context is forced from the actor")
		require.Equal(t, entity.CardStatusBacklog, card.Status)
		require.Equal(t, entity.RequestStatusPending, card.RequestStatus)
		require.Empty(t, card.PlanningStatus)
		require.Equal(t, entity.PriorityMedium, card.Priority)
		require.Equal(t, "Spring banner", card.Title)
		require.Contains(t, card.Description, "\n\nReference: https://example.com/brief")
		require.Len(t, card.History, 1)
		require.Equal(t, "submitted the request", card.History[0].Action)

		require.Equal(t, []uuid.UUID{card.ID}, f.broker.requestsSubmitted)
	})

	t.Run("planning request waits for approval instead", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		client := f.addClient(t)
		manager := f.addUser(t, entity.RoleManager, uuid.Nil)

		card, err := f.s.SubmitRequest(f.as(manager), service.WizardInput{
			ClientID:    client.ID,
			Category:    entity.CategoryPlanning,
			Title:       "Q3 strategy",
			Description: "Quarterly content plan",
			DueDate:     time.Now().Add(24 * time.Hour),
			Priority:    entity.PriorityHigh,
		})
		require.NoError(t, err)

		require.Equal(t, entity.PlanningStatusWaitingApproval, card.PlanningStatus)
		require.Empty(t, card.RequestStatus)
		require.Equal(t, entity.PriorityHigh, card.Priority)
		require.Empty(t, f.broker.requestsSubmitted)
	})

	t.Run("staff submission skips the request workflow", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		client := f.addClient(t)
		manager := f.addUser(t, entity.RoleManager, uuid.Nil)

		card, err := f.s.SubmitRequest(f.as(manager), service.WizardInput{
			ClientID:    client.ID,
			Category:    entity.CategoryDesign,
			Format:      "Story",
			Title:       "Promo story",
			Description: "Instagram story",
			DueDate:     time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)

		require.Empty(t, card.RequestStatus)
		require.Empty(t, card.PlanningStatus)
		require.Empty(t, f.broker.requestsSubmitted)
	})

	t.Run("custom format carries its note", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		client := f.addClient(t)
		manager := f.addUser(t, entity.RoleManager, uuid.Nil)

		card, err := f.s.SubmitRequest(f.as(manager), service.WizardInput{
			ClientID:    client.ID,
			Category:    entity.CategoryDesign,
			Format:      entity.FormatCustom,
			FormatNote:  "billboard, 4x3m",
			Title:       "Billboard art",
			Description: "Outdoor piece",
			DueDate:     time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)
		require.Equal(t, "Custom (billboard, 4x3m)", card.Format)
	})

	t.Run("financial fields survive only on financial requests", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		contributor := f.addUser(t, entity.RoleContributor, uuid.Nil)

		card, err := f.s.SubmitRequest(f.as(contributor), service.WizardInput{
			Category:      entity.CategoryFinancial,
			FinancialType: entity.FinancialTypeTransport,
			Title:         "Client visit",
			Description:   "Taxi to the shoot",
			DueDate:       time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)
		require.Equal(t, entity.FinancialTypeTransport, card.FinancialType)

		card, err = f.s.SubmitRequest(f.as(contributor), service.WizardInput{
			Category:      entity.CategoryAdministrative,
			FinancialType: entity.FinancialTypeTransport,
			Title:         "Office supplies",
			Description:   "New whiteboard",
			DueDate:       time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)
		require.Empty(t, card.FinancialType, "non-financial work drops the subtype")
	})

	t.Run("incomplete wizard reports the offending fields", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		client := f.addClient(t)
		clientUser := f.addUser(t, entity.RoleClient, client.ID)

		_, err := f.s.SubmitRequest(f.as(clientUser), service.WizardInput{
			Category: entity.CategoryDesign,
			Format:   "Square",
		})
		require.ErrorIs(t, err, entity.ErrValidationFailed)

		var vErr *service.WizardValidationError
		require.ErrorAs(t, err, &vErr)
		require.True(t, vErr.Fields["title"])
		require.True(t, vErr.Fields["description"])
		require.True(t, vErr.Fields["dueDate"])
	})
}
