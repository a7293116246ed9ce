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

// ListCards godoc
// @Summary      List cards visible to the caller
// @Tags         cards
// @Produce      json
// @Success      200 {array} entity.TaskCard
// @Failure      401 {object} ResponseError "Authentication required"
// @Security     BearerAuth
// @Router       /cards [get]
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cards, err := h.s.ListCards(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, cards)
}

// GetCard godoc
// @Summary      Fetch a single card
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card id"
// @Success      200 {object} entity.TaskCard
// @Failure      404 {object} ResponseError "Not found"
// @Security     BearerAuth
// @Router       /cards/{id} [get]
func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.CardByID(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

type CreateCardRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ClientID    uuid.UUID       `json:"clientId"`
	Category    entity.Category `json:"category"`
	Format      string          `json:"format"`
	Priority    entity.Priority `json:"priority"`
	Assignees   []uuid.UUID     `json:"assignees"`
	DueDate     time.Time       `json:"dueDate"`
}

// CreateCard godoc
// @Summary      Create a card directly (staff)
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        request body CreateCardRequest true "Card fields"
// @Success      201 {object} entity.TaskCard
// @Failure      400 {object} ResponseError "Invalid request"
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Security     BearerAuth
// @Router       /cards [post]
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCardRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	params := service.CreateCardParams{
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
		Category:    req.Category,
		Format:      req.Format,
		Priority:    req.Priority,
		Assignees:   req.Assignees,
		DueDate:     req.DueDate,
	}

	err = service.ValidateCreateCardParams(params)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.CreateCard(ctx, params)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, card)
}

type UpdateCardRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Priority    *entity.Priority `json:"priority"`
	DueDate     *time.Time       `json:"dueDate"`
	CoverURL    *string          `json:"coverUrl"`
}

// UpdateCard godoc
// @Summary      Update card details
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body UpdateCardRequest true "Fields to change"
// @Success      200 {object} entity.TaskCard
// @Failure      404 {object} ResponseError "Not found"
// @Security     BearerAuth
// @Router       /cards/{id} [patch]
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req UpdateCardRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.UpdateCard(ctx, id, service.UpdateCardParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

type SetStatusRequest struct {
	Status entity.CardStatus `json:"status"`
}

// SetCardStatus godoc
// @Summary      Move a card to another column
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body SetStatusRequest true "Target status"
// @Success      200 {object} entity.TaskCard
// @Failure      400 {object} ResponseError "Invalid status"
// @Security     BearerAuth
// @Router       /cards/{id}/status [put]
func (h *Handler) SetCardStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req SetStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.SetCardStatus(ctx, id, req.Status)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

// ToggleAssignee godoc
// @Summary      Add or remove an assignee
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card id"
// @Param        userId path string true "User id"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/assignees/{userId} [put]
func (h *Handler) ToggleAssignee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cardID, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	userID, err := pathID(r, "userId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.ToggleAssignee(ctx, cardID, userID)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

// AddComment godoc
// @Summary      Comment on a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body AddCommentRequest true "Comment text"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/comments [post]
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req AddCommentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.AddComment(ctx, id, req.Text)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

type ChecklistItemRequest struct {
	Text string `json:"text"`
}

// AddChecklistItem godoc
// @Summary      Add a checklist item
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body ChecklistItemRequest true "Item text"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/checklist [post]
func (h *Handler) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req ChecklistItemRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.AddChecklistItem(ctx, id, req.Text)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

// ToggleChecklistItem godoc
// @Summary      Toggle a checklist item
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card id"
// @Param        itemId path string true "Checklist item id"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/checklist/{itemId} [put]
func (h *Handler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cardID, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.ToggleChecklistItem(ctx, cardID, itemID)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

// DeleteChecklistItem godoc
// @Summary      Remove a checklist item
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card id"
// @Param        itemId path string true "Checklist item id"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/checklist/{itemId} [delete]
func (h *Handler) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cardID, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	itemID, err := pathID(r, "itemId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.DeleteChecklistItem(ctx, cardID, itemID)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

type AddLabelRequest struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// AddLabel godoc
// @Summary      Add a label
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body AddLabelRequest true "Label"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/labels [post]
func (h *Handler) AddLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req AddLabelRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.AddLabel(ctx, id, req.Text, req.Color)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

// RemoveLabel godoc
// @Summary      Remove a label
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card id"
// @Param        labelId path string true "Label id"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/labels/{labelId} [delete]
func (h *Handler) RemoveLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cardID, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	labelID, err := pathID(r, "labelId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.RemoveLabel(ctx, cardID, labelID)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

type AddAttachmentRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AddAttachment godoc
// @Summary      Attach a reference to a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body AddAttachmentRequest true "Attachment"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/attachments [post]
func (h *Handler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req AddAttachmentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.AddAttachment(ctx, id, req.Name, req.URL)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

// RemoveAttachment godoc
// @Summary      Remove an attachment
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card id"
// @Param        attachmentId path string true "Attachment id"
// @Success      200 {object} entity.TaskCard
// @Security     BearerAuth
// @Router       /cards/{id}/attachments/{attachmentId} [delete]
func (h *Handler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cardID, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	attachmentID, err := pathID(r, "attachmentId")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.RemoveAttachment(ctx, cardID, attachmentID)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

// StartTimer godoc
// @Summary      Start the card timer
// @Tags         timer
// @Produce      json
// @Param        id path string true "Card id"
// @Success      200 {object} entity.TaskCard
// @Failure      409 {object} ResponseError "Timer already running"
// @Security     BearerAuth
// @Router       /cards/{id}/timer/start [post]
func (h *Handler) StartTimer(w http.ResponseWriter, r *http.Request) {
	h.timerAction(w, r, h.s.StartTimer)
}

// PauseTimer godoc
// @Summary      Pause the card timer
// @Tags         timer
// @Produce      json
// @Param        id path string true "Card id"
// @Success      200 {object} entity.TaskCard
// @Failure      400 {object} ResponseError "Timer is not running"
// @Security     BearerAuth
// @Router       /cards/{id}/timer/pause [post]
func (h *Handler) PauseTimer(w http.ResponseWriter, r *http.Request) {
	h.timerAction(w, r, h.s.PauseTimer)
}

// StopTimer godoc
// @Summary      Stop the card timer
// @Tags         timer
// @Produce      json
// @Param        id path string true "Card id"
// @Success      200 {object} entity.TaskCard
// @Failure      400 {object} ResponseError "Timer is not running"
// @Security     BearerAuth
// @Router       /cards/{id}/timer/stop [post]
func (h *Handler) StopTimer(w http.ResponseWriter, r *http.Request) {
	h.timerAction(w, r, h.s.StopTimer)
}

func (h *Handler) timerAction(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, cardID uuid.UUID) (entity.TaskCard, error)) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := fn(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

type SetFinancialValueRequest struct {
	Value decimal.Decimal `json:"value"`
}

// SetFinancialValue godoc
// @Summary      Record the negotiated value on a financial request
// @Tags         finance
// @Accept       json
// @Produce      json
// @Param        id path string true "Card id"
// @Param        request body SetFinancialValueRequest true "Amount"
// @Success      200 {object} entity.TaskCard
// @Failure      403 {object} ResponseError "Insufficient permissions"
// @Security     BearerAuth
// @Router       /cards/{id}/financial-value [put]
func (h *Handler) SetFinancialValue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	var req SetFinancialValueRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	card, err := h.s.SetFinancialValue(ctx, id, req.Value)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, card)
}

// CardActivity godoc
// @Summary      Merged comment and history feed for a card
// @Tags         cards
// @Produce      json
// @Param        id path string true "Card id"
// @Success      200 {array} service.ActivityEntry
// @Security     BearerAuth
// @Router       /cards/{id}/activity [get]
func (h *Handler) CardActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	entries, err := h.s.CardActivity(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, entries)
}
