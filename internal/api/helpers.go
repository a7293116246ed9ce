package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
	"github.com/ericmurielchan/chanmkt/internal/service"
)

type ResponseError struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Fields  map[string]bool `json:"fields,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, "api error", "error", err, "code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}

// SendServiceErr maps service sentinels onto HTTP codes. Wizard
// validation failures additionally carry the per-field flag map.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	var wizardErr *service.WizardValidationError
	if errors.As(err, &wizardErr) {
		slog.WarnContext(ctx, "wizard validation failed", "fields", wizardErr.Fields)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)

		_ = json.NewEncoder(w).Encode(ResponseError{
			Message: entity.ErrMsgValidation,
			Error:   err.Error(),
			Fields:  wizardErr.Fields,
		})

		return
	}

	switch {
	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrUserInactive):
		SendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)

	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, entity.ErrMsgForbidden)

	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrClientNotFound),
		errors.Is(err, entity.ErrCardNotFound),
		errors.Is(err, entity.ErrSupplierNotFound),
		errors.Is(err, entity.ErrPurchaseNotFound),
		errors.Is(err, entity.ErrNotificationNotFound),
		errors.Is(err, entity.ErrChecklistItemNotFound),
		errors.Is(err, entity.ErrLabelNotFound),
		errors.Is(err, entity.ErrAttachmentNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, entity.ErrMsgNotFound)

	case errors.Is(err, entity.ErrDuplicateEmail),
		errors.Is(err, entity.ErrRequestAlreadyDecided),
		errors.Is(err, entity.ErrTimerAlreadyRunning),
		errors.Is(err, entity.ErrBlockedButCurrent):
		SendErr(ctx, w, http.StatusConflict, err, entity.ErrMsgBadRequest)

	case errors.Is(err, entity.ErrIncorrectRequestBody),
		errors.Is(err, entity.ErrMissingRequiredField),
		errors.Is(err, entity.ErrValidationFailed),
		errors.Is(err, entity.ErrInvalidRole),
		errors.Is(err, entity.ErrInvalidCardStatus),
		errors.Is(err, entity.ErrInvalidCategory),
		errors.Is(err, entity.ErrInvalidPriority),
		errors.Is(err, entity.ErrInvalidPaymentStatus),
		errors.Is(err, entity.ErrInvalidPaymentDay),
		errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrClientLinkRequired),
		errors.Is(err, entity.ErrTimerNotRunning),
		errors.Is(err, entity.ErrNotARequest):
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)

	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
	}
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, entity.ErrIncorrectRequestBody
	}

	return id, nil
}
