package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/repository"
	"github.com/ericmurielchan/chanmkt/pkg/config"
)

// Broker publishes domain events to the message bus. Implemented by
// pkg/broker; a no-op stub is enough for tests.
type Broker interface {
	SendRequestSubmitted(ctx context.Context, cardID, clientID uuid.UUID, title string)
	SendRequestDecided(ctx context.Context, cardID uuid.UUID, status entity.RequestStatus)
	SendClientBlocked(ctx context.Context, clientID uuid.UUID, name string)
	SendPaymentRegistered(ctx context.Context, clientID uuid.UUID, name string)
}

// Advisor is the external text-generation collaborator. It must never
// fail: on any transport or API error the implementation returns a
// static fallback recommendation instead.
type Advisor interface {
	Analyze(ctx context.Context, snapshot entity.BoardSnapshot) string
}

type Service struct {
	cfg           config.Config
	userRepo      *repository.UserRepository
	clientRepo    *repository.ClientRepository
	cardRepo      *repository.CardRepository
	supplierRepo  *repository.SupplierRepository
	notifRepo     *repository.NotificationRepository
	producer      Broker
	advisor       Advisor
}

func New(
	cfg config.Config,
	userRepo *repository.UserRepository,
	clientRepo *repository.ClientRepository,
	cardRepo *repository.CardRepository,
	supplierRepo *repository.SupplierRepository,
	notifRepo *repository.NotificationRepository,
	producer Broker,
	advisor Advisor,
) *Service {
	return &Service{
		cfg:          cfg,
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		cardRepo:     cardRepo,
		supplierRepo: supplierRepo,
		notifRepo:    notifRepo,
		producer:     producer,
		advisor:      advisor,
	}
}

type TokenPair struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         entity.User `json:"user"`
}

type userClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		slog.WarnContext(ctx, "login failed", "email", email, "reason", "unknown user")
		return TokenPair{}, entity.ErrInvalidCredentials
	}

	if !user.IsActive {
		return TokenPair{}, entity.ErrUserInactive
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		slog.WarnContext(ctx, "login failed", "email", email, "reason", "bad password")
		return TokenPair{}, entity.ErrInvalidCredentials
	}

	pair, err := s.generateTokens(user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate tokens: %w", err)
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "role", user.Role)

	return pair, nil
}

func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (TokenPair, error) {
	userID, err := s.parseToken(refreshToken)
	if err != nil {
		return TokenPair{}, entity.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return TokenPair{}, entity.ErrUnauthorized
	}

	if !user.IsActive {
		return TokenPair{}, entity.ErrUserInactive
	}

	pair, err := s.generateTokens(user)
	if err != nil {
		return TokenPair{}, fmt.Errorf("generate tokens: %w", err)
	}

	return pair, nil
}

// AuthenticateToken resolves an access token to its user. Used by the
// HTTP auth middleware.
func (s *Service) AuthenticateToken(ctx context.Context, accessToken string) (entity.User, error) {
	userID, err := s.parseToken(accessToken)
	if err != nil {
		return entity.User{}, entity.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entity.User{}, entity.ErrUnauthorized
	}

	if !user.IsActive {
		return entity.User{}, entity.ErrUserInactive
	}

	return user, nil
}

func (s *Service) generateTokens(user entity.User) (TokenPair, error) {
	now := time.Now()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims{
		UserID: user.ID.String(),
		Role:   user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims{
		UserID: user.ID.String(),
		Role:   user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.RefreshTokenTTL)),
		},
	}).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	user.PasswordHash = ""

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *Service) parseToken(token string) (uuid.UUID, error) {
	var claims userClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	if !parsed.Valid {
		return uuid.Nil, entity.ErrUnauthorized
	}

	userID, err := uuid.FromString(claims.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse user id claim: %w", err)
	}

	return userID, nil
}

// actor pulls the authenticated user from the context and checks a
// single permission against the role map.
func (s *Service) actor(ctx context.Context, permission string) (entity.User, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, err
	}

	if !entity.HasPermission(user.Role, permission) {
		return entity.User{}, entity.ErrForbidden
	}

	return user, nil
}
