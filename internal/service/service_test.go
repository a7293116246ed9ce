package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/repository"
	"github.com/ericmurielchan/chanmkt/internal/service"
	"github.com/ericmurielchan/chanmkt/pkg/config"
)

type recordingBroker struct {
	mu                 sync.Mutex
	requestsSubmitted  []uuid.UUID
	requestsDecided    map[uuid.UUID]entity.RequestStatus
	clientsBlocked     []uuid.UUID
	paymentsRegistered []uuid.UUID
}

func newRecordingBroker() *recordingBroker {
	return &recordingBroker{requestsDecided: make(map[uuid.UUID]entity.RequestStatus)}
}

func (b *recordingBroker) SendRequestSubmitted(_ context.Context, cardID, _ uuid.UUID, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requestsSubmitted = append(b.requestsSubmitted, cardID)
}

func (b *recordingBroker) SendRequestDecided(_ context.Context, cardID uuid.UUID, status entity.RequestStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requestsDecided[cardID] = status
}

func (b *recordingBroker) SendClientBlocked(_ context.Context, clientID uuid.UUID, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clientsBlocked = append(b.clientsBlocked, clientID)
}

func (b *recordingBroker) SendPaymentRegistered(_ context.Context, clientID uuid.UUID, _ string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.paymentsRegistered = append(b.paymentsRegistered, clientID)
}

type stubAdvisor struct {
	text string
}

func (a stubAdvisor) Analyze(context.Context, entity.BoardSnapshot) string {
	return a.text
}

type fixture struct {
	s         *service.Service
	users     *repository.UserRepository
	clients   *repository.ClientRepository
	cards     *repository.CardRepository
	suppliers *repository.SupplierRepository
	notifs    *repository.NotificationRepository
	broker    *recordingBroker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:     repository.NewUserRepository(),
		clients:   repository.NewClientRepository(),
		cards:     repository.NewCardRepository(),
		suppliers: repository.NewSupplierRepository(),
		notifs:    repository.NewNotificationRepository(),
		broker:    newRecordingBroker(),
	}

	cfg := config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	f.s = service.New(cfg, f.users, f.clients, f.cards, f.suppliers, f.notifs,
		f.broker, stubAdvisor{text: "<p>keep shipping</p>"})

	return f
}

func (f *fixture) addUser(t *testing.T, role entity.Role, clientID uuid.UUID) entity.User {
	t.Helper()

	user := entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      string(role) + " user",
		Email:     uuid.Must(uuid.NewV4()).String() + "@test.local",
		Role:      role,
		ClientID:  clientID,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	require.NoError(t, f.users.Create(context.Background(), user))

	return user
}

func (f *fixture) addClient(t *testing.T) entity.Client {
	t.Helper()

	client := entity.NewOnboardedClient("Test Client", "Test Co", "client@test.local",
		decimal.NewFromInt(5000), true, 10)

	require.NoError(t, f.clients.Create(context.Background(), client))

	return client
}

func (f *fixture) addCard(t *testing.T, clientID uuid.UUID, assignees ...uuid.UUID) entity.TaskCard {
	t.Helper()

	if assignees == nil {
		assignees = []uuid.UUID{}
	}

	card := entity.TaskCard{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       "Test card",
		ClientID:    clientID,
		Category:    entity.CategoryDesign,
		Status:      entity.CardStatusToDo,
		Priority:    entity.PriorityMedium,
		Assignees:   assignees,
		DueDate:     time.Now().Add(72 * time.Hour),
		Labels:      []entity.CardLabel{},
		Checklist:   []entity.ChecklistItem{},
		Comments:    []entity.Comment{},
		Attachments: []entity.Attachment{},
		TimeLogs:    []entity.TimeLog{},
		History:     []entity.HistoryLog{},
		CreatedAt:   time.Now(),
	}

	require.NoError(t, f.cards.Create(context.Background(), card))

	return card
}

func (f *fixture) as(user entity.User) context.Context {
	return entity.SetUserToContext(context.Background(), user)
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Ana",
		Email:        "ana@test.local",
		PasswordHash: string(hash),
		Role:         entity.RoleManager,
		IsActive:     true,
	}
	require.NoError(t, f.users.Create(context.Background(), user))

	inactive := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Gone",
		Email:        "gone@test.local",
		PasswordHash: string(hash),
		Role:         entity.RoleManager,
		IsActive:     false,
	}
	require.NoError(t, f.users.Create(context.Background(), inactive))

	for _, tt := range []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "ana@test.local", password: "hunter2"},
		{name: "wrong password", email: "ana@test.local", password: "nope", wantErr: entity.ErrInvalidCredentials},
		{name: "unknown email", email: "who@test.local", password: "hunter2", wantErr: entity.ErrInvalidCredentials},
		{name: "deactivated user", email: "gone@test.local", password: "hunter2", wantErr: entity.ErrUserInactive},
	} {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := f.s.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, pair.AccessToken)
			require.NotEmpty(t, pair.RefreshToken)
			require.Equal(t, user.ID, pair.User.ID)
			require.Empty(t, pair.User.PasswordHash)
		})
	}
}

func TestService_AuthenticateToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Ana",
		Email:        "ana@test.local",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, f.users.Create(context.Background(), user))

	pair, err := f.s.Login(context.Background(), user.Email, "hunter2")
	require.NoError(t, err)

	got, err := f.s.AuthenticateToken(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = f.s.AuthenticateToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	refreshed, err := f.s.RefreshTokens(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)
}
