package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

// Seed loads the demo dataset: one user per role, a handful of client
// accounts and a board covering every pipeline column. Hashes are
// computed here because bcrypt output cannot be committed as a
// constant without fixing the salt.
func Seed(ctx context.Context, users *UserRepository, clients *ClientRepository, cards *CardRepository, suppliers *SupplierRepository, defaultPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()

	headID := uuid.Must(uuid.NewV4())
	csID := uuid.Must(uuid.NewV4())
	contributorID := uuid.Must(uuid.NewV4())
	freelancerID := uuid.Must(uuid.NewV4())

	acme := entity.NewOnboardedClient("Acme Coffee", "Acme Coffee Roasters LLC", "billing@acmecoffee.example", decimal.NewFromInt(4500), true, 10)
	acme.AssignedHeadID = headID
	acme.AssignedCSID = csID

	northwind := entity.NewOnboardedClient("Northwind Gym", "Northwind Fitness Ltda", "finance@northwind.example", decimal.NewFromInt(2800), true, 5)
	northwind.PaymentStatus = entity.PaymentStatusLate

	bluebird := entity.NewOnboardedClient("Bluebird Realty", "", "hello@bluebird.example", decimal.NewFromInt(1900), false, 20)

	for _, c := range []entity.Client{acme, northwind, bluebird} {
		if err := clients.Create(ctx, c); err != nil {
			return fmt.Errorf("seed client %s: %w", c.Name, err)
		}
	}

	clientUserID := uuid.Must(uuid.NewV4())

	salary := decimal.NewFromInt(3200)
	payday := 5

	seedUsers := []entity.User{
		{ID: uuid.Must(uuid.NewV4()), Name: "Erica Chan", Email: "erica@chanmkt.example", Role: entity.RoleAdmin, IsActive: true},
		{ID: uuid.Must(uuid.NewV4()), Name: "Marcos Lima", Email: "marcos@chanmkt.example", Role: entity.RoleManager, IsActive: true},
		{ID: headID, Name: "Julia Prado", Email: "julia@chanmkt.example", Role: entity.RoleCreativeHead, IsActive: true, Salary: &salary, PaymentDay: &payday},
		{ID: contributorID, Name: "Tiago Souza", Email: "tiago@chanmkt.example", Role: entity.RoleContributor, IsActive: true, Salary: &salary, PaymentDay: &payday},
		{ID: freelancerID, Name: "Nina Duarte", Email: "nina@chanmkt.example", Role: entity.RoleFreelancer, IsActive: true},
		{ID: clientUserID, Name: "Paul Acme", Email: "paul@acmecoffee.example", Role: entity.RoleClient, ClientID: acme.ID, IsActive: true},
		{ID: uuid.Must(uuid.NewV4()), Name: "Renata Alves", Email: "renata@chanmkt.example", Role: entity.RoleFinance, IsActive: true},
		{ID: csID, Name: "Bruno Faria", Email: "bruno@chanmkt.example", Role: entity.RoleCustomerSuccess, IsActive: true},
	}

	for i := range seedUsers {
		seedUsers[i].PasswordHash = string(hash)
		seedUsers[i].CreatedAt = now

		if err := users.Create(ctx, seedUsers[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", seedUsers[i].Email, err)
		}
	}

	seedCards := []entity.TaskCard{
		{
			ID:        uuid.Must(uuid.NewV4()),
			Title:     "Instagram carousel for spring promo",
			Description: "Six-slide carousel announcing the seasonal blend.",
			ClientID:  acme.ID,
			Category:  entity.CategoryDesign,
			Format:    "Carousel",
			Status:    entity.CardStatusDoing,
			Priority:  entity.PriorityHigh,
			Assignees: []uuid.UUID{contributorID},
			DueDate:   now.AddDate(0, 0, 3),
			CreatedBy: headID,
		},
		{
			ID:        uuid.Must(uuid.NewV4()),
			Title:     "Landing page copy review",
			Description: "Second pass on the membership landing page.",
			ClientID:  northwind.ID,
			Category:  entity.CategoryCopywriting,
			Format:    "Landing Page",
			Status:    entity.CardStatusReview,
			Priority:  entity.PriorityMedium,
			Assignees: []uuid.UUID{freelancerID},
			DueDate:   now.AddDate(0, 0, 1),
			CreatedBy: headID,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Q3 media plan",
			Description: "Budget split across paid channels for Q3.",
			ClientID:    bluebird.ID,
			Category:    entity.CategoryPlanning,
			Status:      entity.CardStatusBacklog,
			Priority:    entity.PriorityMedium,
			Assignees:   []uuid.UUID{},
			DueDate:     now.AddDate(0, 0, 14),
			PlanningStatus: entity.PlanningStatusWaitingApproval,
			CreatedBy:   headID,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Reel: behind the roastery",
			Description: "Short-form video requested by the client.",
			ClientID:    acme.ID,
			Category:    entity.CategoryVideo,
			Format:      "Reel",
			Status:      entity.CardStatusBacklog,
			Priority:    entity.PriorityMedium,
			Assignees:   []uuid.UUID{},
			DueDate:     now.AddDate(0, 0, 7),
			RequestStatus: entity.RequestStatusPending,
			CreatedBy:   clientUserID,
		},
		{
			ID:          uuid.Must(uuid.NewV4()),
			Title:       "Renew stock photo subscription",
			Description: "Annual renewal, needs finance signoff.",
			Category:    entity.CategoryAdministrative,
			Status:      entity.CardStatusToDo,
			Priority:    entity.PriorityLow,
			Assignees:   []uuid.UUID{},
			DueDate:     now.AddDate(0, 0, 10),
			CreatedBy:   headID,
		},
	}

	for i := range seedCards {
		seedCards[i].CreatedAt = now
		seedCards[i].Labels = []entity.CardLabel{}
		seedCards[i].Checklist = []entity.ChecklistItem{}
		seedCards[i].Comments = []entity.Comment{}
		seedCards[i].Attachments = []entity.Attachment{}
		seedCards[i].TimeLogs = []entity.TimeLog{}
		seedCards[i].History = []entity.HistoryLog{}

		if err := cards.Create(ctx, seedCards[i]); err != nil {
			return fmt.Errorf("seed card %q: %w", seedCards[i].Title, err)
		}
	}

	printShop := entity.Supplier{ID: uuid.Must(uuid.NewV4()), Name: "Rapid Print Shop", Category: "Printing", Email: "orders@rapidprint.example", CreatedAt: now}
	if err := suppliers.CreateSupplier(ctx, printShop); err != nil {
		return fmt.Errorf("seed supplier: %w", err)
	}

	err = suppliers.CreatePurchase(ctx, entity.PurchaseItem{
		ID:          uuid.Must(uuid.NewV4()),
		SupplierID:  printShop.ID,
		Description: "Business cards reprint",
		Price:       decimal.NewFromInt(120),
		DueDate:     now.AddDate(0, 0, 15),
		CreatedAt:   now,
	})
	if err != nil {
		return fmt.Errorf("seed purchase: %w", err)
	}

	return nil
}
