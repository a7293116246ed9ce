package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

// WizardInput carries everything the five intake steps collect.
// Step layout: (1) client/context + category, (2) format or financial
// subtype (skipped for Planning), (3) title + description,
// (4) reference link, (5) due date + priority.
type WizardInput struct {
	ClientID       uuid.UUID             `json:"clientId"`
	Category       entity.Category       `json:"category"`
	Format         string                `json:"format"`
	FormatNote     string                `json:"formatNote"`
	FinancialType  entity.FinancialType  `json:"financialType"`
	FinancialValue *decimal.Decimal      `json:"financialValue"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	RefLink        string                `json:"refLink"`
	DueDate        time.Time             `json:"dueDate"`
	Priority       entity.Priority       `json:"priority"`
}

// WizardValidationError lists the offending fields the same way the
// form renders them: a set of field names flagged true.
type WizardValidationError struct {
	Fields map[string]bool
}

func (e *WizardValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}

	return fmt.Sprintf("wizard validation failed: %s", strings.Join(fields, ", "))
}

func (e *WizardValidationError) Unwrap() error {
	return entity.ErrValidationFailed
}

// ValidateWizardStep checks a single step before the form advances.
// The returned map is empty when the step passes.
func ValidateWizardStep(actor entity.User, step int, in WizardInput) map[string]bool {
	errs := make(map[string]bool)

	switch step {
	case 1:
		if !in.Category.IsValid() {
			errs["category"] = true
		}

		// Client users have the context pre-filled; everyone else has
		// to pick a client unless the work is internal.
		if actor.Role != entity.RoleClient && in.Category.IsValid() &&
			!in.Category.IsInternal() && in.ClientID.IsNil() {
			errs["client"] = true
		}

	case 2:
		if in.Category == entity.CategoryPlanning {
			break // step skipped entirely
		}

		if in.Category == entity.CategoryFinancial {
			if !in.FinancialType.IsValid() {
				errs["financialType"] = true
			}

			break
		}

		if in.Category == entity.CategoryAdministrative {
			break
		}

		if in.Format == "" {
			errs["format"] = true
		}

		if in.Format == entity.FormatCustom && strings.TrimSpace(in.FormatNote) == "" {
			errs["formatNote"] = true
		}

	case 3:
		if strings.TrimSpace(in.Title) == "" {
			errs["title"] = true
		}

		if strings.TrimSpace(in.Description) == "" {
			errs["description"] = true
		}

	case 4:
		// Reference link is optional.

	case 5:
		if in.DueDate.IsZero() {
			errs["dueDate"] = true
		}
	}

	return errs
}

func validateWizard(actor entity.User, in WizardInput) error {
	fields := make(map[string]bool)

	for step := 1; step <= 5; step++ {
		for f := range ValidateWizardStep(actor, step, in) {
			fields[f] = true
		}
	}

	if len(fields) > 0 {
		return &WizardValidationError{Fields: fields}
	}

	return nil
}

// SubmitRequest turns a completed wizard into a new card. The draft
// always lands in BACKLOG; Planning work starts waiting for approval
// and client-submitted work enters the request workflow as PENDING.
func (s *Service) SubmitRequest(ctx context.Context, in WizardInput) (entity.TaskCard, error) {
	actor, err := s.actor(ctx, entity.PermissionCreateRequests)
	if err != nil {
		return entity.TaskCard{}, err
	}

	if actor.Role == entity.RoleClient {
		in.ClientID = actor.ClientID
	}

	err = validateWizard(actor, in)
	if err != nil {
		return entity.TaskCard{}, err
	}

	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}

	description := strings.TrimSpace(in.Description)
	if in.RefLink != "" {
		description = fmt.Sprintf("%s\n\nReference: %s", description, in.RefLink)
	}

	format := in.Format
	if in.Format == entity.FormatCustom {
		format = fmt.Sprintf("%s (%s)", entity.FormatCustom, strings.TrimSpace(in.FormatNote))
	}

	now := time.Now()

	card := entity.TaskCard{
		ID:             uuid.Must(uuid.NewV4()),
		Title:          strings.TrimSpace(in.Title),
		Description:    description,
		ClientID:       in.ClientID,
		Category:       in.Category,
		Format:         format,
		Status:         entity.CardStatusBacklog,
		Priority:       in.Priority,
		Assignees:      []uuid.UUID{},
		DueDate:        in.DueDate,
		Labels:         []entity.CardLabel{},
		Checklist:      []entity.ChecklistItem{},
		Comments:       []entity.Comment{},
		Attachments:    []entity.Attachment{},
		TimeLogs:       []entity.TimeLog{},
		FinancialType:  in.FinancialType,
		FinancialValue: in.FinancialValue,
		CreatedBy:      actor.ID,
		CreatedAt:      now,
		History: []entity.HistoryLog{{
			ID:        uuid.Must(uuid.NewV4()),
			UserID:    actor.ID,
			UserName:  actor.Name,
			Action:    "submitted the request",
			Timestamp: now,
		}},
	}

	if in.Category != entity.CategoryFinancial {
		card.FinancialType = ""
		card.FinancialValue = nil
	}

	switch {
	case in.Category == entity.CategoryPlanning:
		card.PlanningStatus = entity.PlanningStatusWaitingApproval
	case actor.Role == entity.RoleClient:
		card.RequestStatus = entity.RequestStatusPending
	}

	err = card.Validate()
	if err != nil {
		return entity.TaskCard{}, err
	}

	err = s.cardRepo.Create(ctx, card)
	if err != nil {
		return entity.TaskCard{}, fmt.Errorf("create card: %w", err)
	}

	if card.RequestStatus == entity.RequestStatusPending {
		s.producer.SendRequestSubmitted(ctx, card.ID, card.ClientID, card.Title)
	}

	slog.InfoContext(ctx, "request submitted",
		"card_id", card.ID, "actor_id", actor.ID, "category", card.Category, "request_status", card.RequestStatus)

	return card, nil
}
