package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

type OnboardClientParams struct {
	Name          string
	CompanyName   string
	Email         string
	ContractValue decimal.Decimal
	IsRecurring   bool
	PaymentDay    int
}

// OnboardClient finishes the onboarding flow. Regardless of what the
// form steps collected, the account always starts clean: active,
// on-time, unblocked, onboarding complete.
func (s *Service) OnboardClient(ctx context.Context, params OnboardClientParams) (entity.Client, error) {
	actor, err := s.actor(ctx, entity.PermissionManageClients)
	if err != nil {
		return entity.Client{}, err
	}

	client := entity.NewOnboardedClient(
		params.Name,
		params.CompanyName,
		params.Email,
		params.ContractValue,
		params.IsRecurring,
		params.PaymentDay,
	)

	err = client.Validate()
	if err != nil {
		return entity.Client{}, err
	}

	err = s.clientRepo.Create(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	slog.InfoContext(ctx, "client onboarded", "client_id", client.ID, "actor_id", actor.ID)

	return client, nil
}

func (s *Service) ListClients(ctx context.Context) ([]entity.Client, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	// Client users only ever see their own account.
	if user.Role == entity.RoleClient {
		for _, c := range clients {
			if c.ID == user.ClientID {
				return []entity.Client{c}, nil
			}
		}

		return []entity.Client{}, nil
	}

	return clients, nil
}

func (s *Service) ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	if user.Role == entity.RoleClient && user.ClientID != id {
		return entity.Client{}, entity.ErrClientNotFound
	}

	return s.clientRepo.GetByID(ctx, id)
}

type UpdateClientParams struct {
	Name          *string
	CompanyName   *string
	Email         *string
	ContractValue *decimal.Decimal
	IsRecurring   *bool
	PaymentDay    *int
}

func (s *Service) UpdateClient(ctx context.Context, id uuid.UUID, params UpdateClientParams) (entity.Client, error) {
	actor, err := s.actor(ctx, entity.PermissionManageClients)
	if err != nil {
		return entity.Client{}, err
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return entity.Client{}, err
	}

	if params.Name != nil {
		client.Name = *params.Name
	}

	if params.CompanyName != nil {
		client.CompanyName = *params.CompanyName
	}

	if params.Email != nil {
		client.Email = *params.Email
	}

	if params.ContractValue != nil {
		client.ContractValue = *params.ContractValue
	}

	if params.IsRecurring != nil {
		client.IsRecurring = *params.IsRecurring
	}

	if params.PaymentDay != nil {
		client.PaymentDay = *params.PaymentDay
	}

	err = client.Validate()
	if err != nil {
		return entity.Client{}, err
	}

	err = s.clientRepo.Update(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client: %w", err)
	}

	slog.InfoContext(ctx, "client updated", "client_id", client.ID, "actor_id", actor.ID)

	return client, nil
}

// AssignTeam sets the account's CreativeHead and CustomerSuccess
// staff. Either id may be nil to unassign.
func (s *Service) AssignTeam(ctx context.Context, clientID, headID, csID uuid.UUID) (entity.Client, error) {
	actor, err := s.actor(ctx, entity.PermissionAssignTeams)
	if err != nil {
		return entity.Client{}, err
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entity.Client{}, err
	}

	if !headID.IsNil() {
		head, err := s.userRepo.GetByID(ctx, headID)
		if err != nil {
			return entity.Client{}, err
		}

		if head.Role != entity.RoleCreativeHead {
			return entity.Client{}, entity.ErrInvalidRole
		}
	}

	if !csID.IsNil() {
		cs, err := s.userRepo.GetByID(ctx, csID)
		if err != nil {
			return entity.Client{}, err
		}

		if cs.Role != entity.RoleCustomerSuccess {
			return entity.Client{}, entity.ErrInvalidRole
		}
	}

	client.AssignedHeadID = headID
	client.AssignedCSID = csID

	err = s.clientRepo.Update(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client: %w", err)
	}

	slog.InfoContext(ctx, "client team assigned",
		"client_id", client.ID, "head_id", headID, "cs_id", csID, "actor_id", actor.ID)

	return client, nil
}

// RegisterPayment is the only unblock path: it unconditionally resets
// the billing status to on-time, records the payment date and clears
// the block.
func (s *Service) RegisterPayment(ctx context.Context, clientID uuid.UUID) (entity.Client, error) {
	actor, err := s.actor(ctx, entity.PermissionRegisterPayments)
	if err != nil {
		return entity.Client{}, err
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entity.Client{}, err
	}

	now := time.Now()

	client.PaymentStatus = entity.PaymentStatusOnTime
	client.IsBlocked = false
	client.LastPaymentDate = &now

	err = s.clientRepo.Update(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client: %w", err)
	}

	s.producer.SendPaymentRegistered(ctx, client.ID, client.Name)

	slog.InfoContext(ctx, "payment registered", "client_id", client.ID, "actor_id", actor.ID)

	return client, nil
}

// SetPaymentStatus lets finance move a client along the billing
// ladder. Unblocking never happens here: a blocked client stays
// blocked until a payment is registered.
func (s *Service) SetPaymentStatus(ctx context.Context, clientID uuid.UUID, status entity.PaymentStatus) (entity.Client, error) {
	actor, err := s.actor(ctx, entity.PermissionRegisterPayments)
	if err != nil {
		return entity.Client{}, err
	}

	if !status.IsValid() {
		return entity.Client{}, entity.ErrInvalidPaymentStatus
	}

	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entity.Client{}, err
	}

	if client.IsBlocked && !status.IsOverdue() {
		return entity.Client{}, entity.ErrBlockedButCurrent
	}

	client.PaymentStatus = status

	err = s.clientRepo.Update(ctx, client)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client: %w", err)
	}

	slog.InfoContext(ctx, "payment status changed",
		"client_id", client.ID, "status", status, "actor_id", actor.ID)

	return client, nil
}

// BlockOverdueClients is the one-time startup sweep: every client
// already late or delinquent and not yet blocked gets blocked. It is
// not scheduled; it runs once when the application boots.
func (s *Service) BlockOverdueClients(ctx context.Context) (int, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list clients: %w", err)
	}

	blocked := 0

	for _, client := range clients {
		if client.IsBlocked || !client.PaymentStatus.IsOverdue() {
			continue
		}

		client.IsBlocked = true

		err = s.clientRepo.Update(ctx, client)
		if err != nil {
			return blocked, fmt.Errorf("block client %s: %w", client.ID, err)
		}

		s.producer.SendClientBlocked(ctx, client.ID, client.Name)

		blocked++
	}

	if blocked > 0 {
		slog.InfoContext(ctx, "overdue clients blocked", "count", blocked)
	}

	return blocked, nil
}

// SendPaymentReminders marks on-time recurring clients whose payment
// day is today as pending, so finance follows up. Runs as a daily job.
func (s *Service) SendPaymentReminders(ctx context.Context) error {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list clients: %w", err)
	}

	today := time.Now()

	for _, client := range clients {
		if !client.IsRecurring || client.PaymentStatus != entity.PaymentStatusOnTime {
			continue
		}

		if client.PaymentDay != today.Day() {
			continue
		}

		if client.LastPaymentDate != nil &&
			client.LastPaymentDate.Year() == today.Year() &&
			client.LastPaymentDate.Month() == today.Month() {
			continue
		}

		client.PaymentStatus = entity.PaymentStatusPending

		err = s.clientRepo.Update(ctx, client)
		if err != nil {
			return fmt.Errorf("update client %s: %w", client.ID, err)
		}

		slog.InfoContext(ctx, "payment reminder", "client_id", client.ID, "payment_day", client.PaymentDay)
	}

	return nil
}
