package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

// SubmitRequest godoc
// @Summary      Submit a completed intake wizard
// @Description  Produces a new card. Planning work starts waiting for approval; client-submitted work enters the request workflow as PENDING.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request body service.WizardInput true "Wizard fields"
// @Success      201 {object} entity.TaskCard
// @Failure      400 {object} ResponseError "Validation error with flagged fields"
// @Security     BearerAuth
// @Router       /requests [post]
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in service.WizardInput

	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.SubmitRequest(ctx, in)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, card)
}

type ValidateStepResponse struct {
	Valid  bool            `json:"valid"`
	Errors map[string]bool `json:"errors"`
}

// ValidateWizardStep godoc
// @Summary      Validate a single wizard step
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        step query int true "Step number, 1..5"
// @Param        request body service.WizardInput true "Wizard fields collected so far"
// @Success      200 {object} ValidateStepResponse
// @Failure      400 {object} ResponseError "Invalid request"
// @Security     BearerAuth
// @Router       /requests/validate [post]
func (h *Handler) ValidateWizardStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	step, err := strconv.Atoi(r.URL.Query().Get("step"))
	if err != nil || step < 1 || step > 5 {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, entity.ErrMsgBadRequest)
		return
	}

	var in service.WizardInput

	err = json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	errs := service.ValidateWizardStep(user, step, in)

	SendJSON(ctx, w, http.StatusOK, ValidateStepResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

type DecisionRequest struct {
	Decision entity.RequestStatus `json:"decision"`
}

// DecideRequest godoc
// @Summary      Accept, reject or negotiate a pending request
// @Description  Accepting also moves the card to TO_DO.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body DecisionRequest true "Decision"
// @Success      200 {object} entity.TaskCard
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Failure      409 {object} ResponseError "Request already decided"
// @Security     BearerAuth
// @Router       /requests/{id}/decision [post]
func (h *Handler) DecideRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req DecisionRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	err = service.ValidateDecisionParams(id, req.Decision)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.DecideRequest(ctx, id, req.Decision)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}
