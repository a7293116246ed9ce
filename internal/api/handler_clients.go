package api

import (
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

type OnboardClientRequest struct {
	Name          string          `json:"name"`
	CompanyName   string          `json:"companyName"`
	Email         string          `json:"email"`
	ContractValue decimal.Decimal `json:"contractValue"`
	IsRecurring   bool            `json:"isRecurring"`
	PaymentDay    int             `json:"paymentDay"`
}

// OnboardClient godoc
// @Summary      Finish client onboarding
// @Description  The account always starts clean: active, on-time, unblocked.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body OnboardClientRequest true "Client fields"
// @Success      201 {object} entity.Client
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Security     BearerAuth
// @Router       /clients [post]
func (h *Handler) OnboardClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OnboardClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	params := service.OnboardClientParams{
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		ContractValue: req.ContractValue,
		IsRecurring:   req.IsRecurring,
		PaymentDay:    req.PaymentDay,
	}

	err = service.ValidateOnboardClientParams(params)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	client, err := h.s.OnboardClient(ctx, params)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, client)
}

// ListClients godoc
// @Summary      List client accounts
// @Tags         clients
// @Produce      json
// @Success      200 {array} entity.Client
// @Security     BearerAuth
// @Router       /clients [get]
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clients, err := h.s.ListClients(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, clients)
}

// GetClient godoc
// @Summary      Fetch a client account
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client id"
// @Success      200 {object} entity.Client
// @Failure      404 {object} ResponseError "Not found"
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	client, err := h.s.ClientByID(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

type UpdateClientRequest struct {
	Name          *string          `json:"name"`
	CompanyName   *string          `json:"companyName"`
	Email         *string          `json:"email"`
	ContractValue *decimal.Decimal `json:"contractValue"`
	IsRecurring   *bool            `json:"isRecurring"`
	PaymentDay    *int             `json:"paymentDay"`
}

// UpdateClient godoc
// @Summary      Update client details
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client id"
// @Param        request body UpdateClientRequest true "Fields to change"
// @Success      200 {object} entity.Client
// @Security     BearerAuth
// @Router       /clients/{id} [patch]
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req UpdateClientRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	client, err := h.s.UpdateClient(ctx, id, service.UpdateClientParams{
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		ContractValue: req.ContractValue,
		IsRecurring:   req.IsRecurring,
		PaymentDay:    req.PaymentDay,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

type AssignTeamRequest struct {
	HeadID uuid.UUID `json:"headId"`
	CSID   uuid.UUID `json:"csId"`
}

// AssignTeam godoc
// @Summary      Assign the account team
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client id"
// @Param        request body AssignTeamRequest true "Team member ids"
// @Success      200 {object} entity.Client
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Security     BearerAuth
// @Router       /clients/{id}/team [put]
func (h *Handler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req AssignTeamRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	client, err := h.s.AssignTeam(ctx, id, req.HeadID, req.CSID)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

// RegisterPayment godoc
// @Summary      Register a client payment
// @Description  Unconditionally resets the billing status to on-time and clears the block.
// @Tags         finance
// @Produce      json
// @Param        id path string true "Client id"
// @Success      200 {object} entity.Client
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Security     BearerAuth
// @Router       /clients/{id}/payments [post]
func (h *Handler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	client, err := h.s.RegisterPayment(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}

type SetPaymentStatusRequest struct {
	Status entity.PaymentStatus `json:"status"`
}

// SetPaymentStatus godoc
// @Summary      Change a client's billing status
// @Description  Never unblocks: a blocked client stays blocked until a payment is registered.
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Client id"
// @Param        request body SetPaymentStatusRequest true "Target status"
// @Success      200 {object} entity.Client
// @Failure      409 {object} ResponseError "Client is blocked"
// @Security     BearerAuth
// @Router       /clients/{id}/payment-status [put]
func (h *Handler) SetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req SetPaymentStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	client, err := h.s.SetPaymentStatus(ctx, id, req.Status)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, client)
}
