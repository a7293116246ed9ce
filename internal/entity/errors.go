package entity

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserInactive         = errors.New("user is deactivated")
	ErrClientNotFound       = errors.New("client not found")
	ErrCardNotFound         = errors.New("card not found")
	ErrSupplierNotFound     = errors.New("supplier not found")
	ErrPurchaseNotFound     = errors.New("purchase item not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrLabelNotFound        = errors.New("label not found")
	ErrAttachmentNotFound   = errors.New("attachment not found")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrValidationFailed     = errors.New("validation failed")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidCardStatus    = errors.New("invalid card status")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidPaymentDay    = errors.New("invalid payment day")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrClientLinkRequired   = errors.New("client role requires a linked client")
	ErrBlockedButCurrent    = errors.New("client blocked while payment status is current")
	ErrConflictingWorkflows = errors.New("card cannot carry both request and planning workflows")
	ErrTimerStateConflict   = errors.New("running timer cannot be paused")
	ErrTimerNotRunning      = errors.New("timer is not running")
	ErrTimerAlreadyRunning  = errors.New("timer is already running")
	ErrNotARequest          = errors.New("card is not a client request")
	ErrRequestAlreadyDecided = errors.New("request has already been decided")
)

const (
	ErrMsgInternal     = "Internal server error"
	ErrMsgBadRequest   = "Invalid request"
	ErrMsgValidation   = "Validation error"
	ErrMsgUnauthorized = "Authentication required"
	ErrMsgForbidden    = "Insufficient permissions"
	ErrMsgNotFound     = "Not found"
)
