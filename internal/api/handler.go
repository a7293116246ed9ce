package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

type Service interface {
	Login(ctx context.Context, email, password string) (service.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (service.TokenPair, error)

	ListCards(ctx context.Context) ([]entity.TaskCard, error)
	CardByID(ctx context.Context, id uuid.UUID) (entity.TaskCard, error)
	CreateCard(ctx context.Context, params service.CreateCardParams) (entity.TaskCard, error)
	UpdateCard(ctx context.Context, cardID uuid.UUID, params service.UpdateCardParams) (entity.TaskCard, error)
	SetCardStatus(ctx context.Context, cardID uuid.UUID, status entity.CardStatus) (entity.TaskCard, error)
	ToggleAssignee(ctx context.Context, cardID, userID uuid.UUID) (entity.TaskCard, error)
	AddComment(ctx context.Context, cardID uuid.UUID, text string) (entity.TaskCard, error)
	AddChecklistItem(ctx context.Context, cardID uuid.UUID, text string) (entity.TaskCard, error)
	ToggleChecklistItem(ctx context.Context, cardID, itemID uuid.UUID) (entity.TaskCard, error)
	DeleteChecklistItem(ctx context.Context, cardID, itemID uuid.UUID) (entity.TaskCard, error)
	AddLabel(ctx context.Context, cardID uuid.UUID, text, color string) (entity.TaskCard, error)
	RemoveLabel(ctx context.Context, cardID, labelID uuid.UUID) (entity.TaskCard, error)
	AddAttachment(ctx context.Context, cardID uuid.UUID, name, url string) (entity.TaskCard, error)
	RemoveAttachment(ctx context.Context, cardID, attachmentID uuid.UUID) (entity.TaskCard, error)
	StartTimer(ctx context.Context, cardID uuid.UUID) (entity.TaskCard, error)
	PauseTimer(ctx context.Context, cardID uuid.UUID) (entity.TaskCard, error)
	StopTimer(ctx context.Context, cardID uuid.UUID) (entity.TaskCard, error)
	SetFinancialValue(ctx context.Context, cardID uuid.UUID, value decimal.Decimal) (entity.TaskCard, error)
	CardActivity(ctx context.Context, cardID uuid.UUID) ([]service.ActivityEntry, error)

	SubmitRequest(ctx context.Context, in service.WizardInput) (entity.TaskCard, error)
	DecideRequest(ctx context.Context, cardID uuid.UUID, decision entity.RequestStatus) (entity.TaskCard, error)

	OnboardClient(ctx context.Context, params service.OnboardClientParams) (entity.Client, error)
	ListClients(ctx context.Context) ([]entity.Client, error)
	ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, params service.UpdateClientParams) (entity.Client, error)
	AssignTeam(ctx context.Context, clientID, headID, csID uuid.UUID) (entity.Client, error)
	RegisterPayment(ctx context.Context, clientID uuid.UUID) (entity.Client, error)
	SetPaymentStatus(ctx context.Context, clientID uuid.UUID, status entity.PaymentStatus) (entity.Client, error)

	Dashboard(ctx context.Context) (entity.DashboardStats, error)
	Calendar(ctx context.Context, year int, month time.Month) ([]entity.CalendarDay, error)
	Insights(ctx context.Context) (string, error)

	CreateUser(ctx context.Context, params service.CreateUserParams) (entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, params service.UpdateUserParams) (entity.User, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) (entity.User, error)

	CreateSupplier(ctx context.Context, name, category, email, phone string) (entity.Supplier, error)
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	CreatePurchase(ctx context.Context, supplierID uuid.UUID, description string, price decimal.Decimal, dueDate time.Time) (entity.PurchaseItem, error)
	ListPurchases(ctx context.Context) ([]entity.PurchaseItem, error)
	MarkPurchasePaid(ctx context.Context, id uuid.UUID) (entity.PurchaseItem, error)

	ListNotifications(ctx context.Context) ([]entity.SystemNotification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
}

// @title Agency Operations API
// @version 1.0
// @description Role-gated task kanban, client billing and reporting for a creative agency.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s,
	}
}

// Health godoc
// @Summary      Service health check
// @Tags         health
// @Success      200 {string} string "OK"
// @Failure      500 {object} ResponseError "Service is down"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Service is down")
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary      Exchange credentials for a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} service.TokenPair
// @Failure      400 {object} ResponseError "Invalid request"
// @Failure      401 {object} ResponseError "Invalid credentials"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	err = service.ValidateLoginParams(req.Email, req.Password)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	pair, err := h.s.Login(ctx, req.Email, req.Password)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, pair)
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh godoc
// @Summary      Rotate the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshRequest true "Refresh token"
// @Success      200 {object} service.TokenPair
// @Failure      401 {object} ResponseError "Invalid token"
// @Router       /refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RefreshRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.RefreshToken == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, entity.ErrMsgBadRequest)
		return
	}

	pair, err := h.s.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, pair)
}
