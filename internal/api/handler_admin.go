package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

type CreateUserRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Role       entity.Role      `json:"role"`
	ClientID   uuid.UUID        `json:"clientId"`
	Salary     *decimal.Decimal `json:"salary"`
	PaymentDay *int             `json:"paymentDay"`
}

// CreateUser godoc
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "User fields"
// @Success      201 {object} entity.User
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Failure      409 {object} ResponseError "Email already exists"
// @Security     BearerAuth
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	params := service.CreateUserParams{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		ClientID:   req.ClientID,
		Salary:     req.Salary,
		PaymentDay: req.PaymentDay,
	}

	err = service.ValidateCreateUserParams(params)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	user, err := h.s.CreateUser(ctx, params)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, user)
}

// ListUsers godoc
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Success      200 {array} entity.User
// @Security     BearerAuth
// @Router       /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.ListUsers(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

type UpdateUserRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Salary     *decimal.Decimal `json:"salary"`
	PaymentDay *int             `json:"paymentDay"`
}

// UpdateUser godoc
// @Summary      Update a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User id"
// @Param        request body UpdateUserRequest true "Fields to change"
// @Success      200 {object} entity.User
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req UpdateUserRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	user, err := h.s.UpdateUser(ctx, id, service.UpdateUserParams{
		Name:       req.Name,
		Email:      req.Email,
		Salary:     req.Salary,
		PaymentDay: req.PaymentDay,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// DeactivateUser godoc
// @Summary      Deactivate a user account
// @Description  Accounts are never deleted, only switched off.
// @Tags         users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} entity.User
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	user, err := h.s.DeactivateUser(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

type CreateSupplierRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreateSupplier godoc
// @Summary      Create a supplier
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body CreateSupplierRequest true "Supplier fields"
// @Success      201 {object} entity.Supplier
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Security     BearerAuth
// @Router       /suppliers [post]
func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateSupplierRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	supplier, err := h.s.CreateSupplier(ctx, req.Name, req.Category, req.Email, req.Phone)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, supplier)
}

// ListSuppliers godoc
// @Summary      List suppliers
// @Tags         finance
// @Produce      json
// @Success      200 {array} entity.Supplier
// @Security     BearerAuth
// @Router       /suppliers [get]
func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	suppliers, err := h.s.ListSuppliers(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, suppliers)
}

type CreatePurchaseRequest struct {
	SupplierID  uuid.UUID       `json:"supplierId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	DueDate     time.Time       `json:"dueDate"`
}

// CreatePurchase godoc
// @Summary      Record a payable purchase
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        request body CreatePurchaseRequest true "Purchase fields"
// @Success      201 {object} entity.PurchaseItem
// @Failure      404 {object} ResponseError "Supplier not found"
// @Security     BearerAuth
// @Router       /purchases [post]
func (h *Handler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePurchaseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	item, err := h.s.CreatePurchase(ctx, req.SupplierID, req.Description, req.Price, req.DueDate)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, item)
}

// ListPurchases godoc
// @Summary      List payable purchases
// @Tags         finance
// @Produce      json
// @Success      200 {array} entity.PurchaseItem
// @Security     BearerAuth
// @Router       /purchases [get]
func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.s.ListPurchases(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, items)
}

// MarkPurchasePaid godoc
// @Summary      Mark a purchase as paid
// @Tags         finance
// @Produce      json
// @Param        id path string true "Purchase id"
// @Success      200 {object} entity.PurchaseItem
// @Security     BearerAuth
// @Router       /purchases/{id}/paid [put]
func (h *Handler) MarkPurchasePaid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	item, err := h.s.MarkPurchasePaid(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, item)
}

// ListNotifications godoc
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Success      200 {array} entity.SystemNotification
// @Security     BearerAuth
// @Router       /notifications [get]
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notifications, err := h.s.ListNotifications(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, notifications)
}

// MarkNotificationRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification id"
// @Success      204 "No content"
// @Security     BearerAuth
// @Router       /notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	err = h.s.MarkNotificationRead(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
