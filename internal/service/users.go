package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

type CreateUserParams struct {
	Name       string
	Email      string
	Password   string
	Role       entity.Role
	ClientID   uuid.UUID
	Salary     *decimal.Decimal
	PaymentDay *int
}

func (s *Service) CreateUser(ctx context.Context, params CreateUserParams) (entity.User, error) {
	actor, err := s.actor(ctx, entity.PermissionManageUsers)
	if err != nil {
		return entity.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: string(hash),
		Role:         params.Role,
		ClientID:     params.ClientID,
		IsActive:     true,
		Salary:       params.Salary,
		PaymentDay:   params.PaymentDay,
		CreatedAt:    time.Now(),
	}

	err = user.Validate()
	if err != nil {
		return entity.User{}, err
	}

	if user.Role == entity.RoleClient {
		_, err = s.clientRepo.GetByID(ctx, user.ClientID)
		if err != nil {
			return entity.User{}, err
		}
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		return entity.User{}, err
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role, "actor_id", actor.ID)

	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]entity.User, error) {
	_, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.userRepo.List(ctx)
}

type UpdateUserParams struct {
	Name       *string
	Email      *string
	Salary     *decimal.Decimal
	PaymentDay *int
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, params UpdateUserParams) (entity.User, error) {
	actor, err := s.actor(ctx, entity.PermissionManageUsers)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	if params.Name != nil {
		user.Name = *params.Name
	}

	if params.Email != nil {
		user.Email = *params.Email
	}

	if params.Salary != nil {
		user.Salary = params.Salary
	}

	if params.PaymentDay != nil {
		user.PaymentDay = params.PaymentDay
	}

	err = user.Validate()
	if err != nil {
		return entity.User{}, err
	}

	err = s.userRepo.Update(ctx, user)
	if err != nil {
		return entity.User{}, err
	}

	slog.InfoContext(ctx, "user updated", "user_id", user.ID, "actor_id", actor.ID)

	return user, nil
}

// DeactivateUser switches the account off. Users are never deleted,
// their ids stay referenced by card history and assignee lists.
func (s *Service) DeactivateUser(ctx context.Context, id uuid.UUID) (entity.User, error) {
	actor, err := s.actor(ctx, entity.PermissionManageUsers)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	user.IsActive = false

	err = s.userRepo.Update(ctx, user)
	if err != nil {
		return entity.User{}, err
	}

	slog.InfoContext(ctx, "user deactivated", "user_id", user.ID, "actor_id", actor.ID)

	return user, nil
}
