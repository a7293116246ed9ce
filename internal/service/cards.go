package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

func (s *Service) ListCards(ctx context.Context) ([]entity.TaskCard, error) {
	user, err := s.actor(ctx, entity.PermissionViewBoard)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return VisibleCards(user, cards, clients), nil
}

func (s *Service) CardByID(ctx context.Context, id uuid.UUID) (entity.TaskCard, error) {
	user, err := s.actor(ctx, entity.PermissionViewBoard)
	if err != nil {
		return entity.TaskCard{}, err
	}

	return s.visibleCard(ctx, user, id)
}

func (s *Service) visibleCard(ctx context.Context, user entity.User, id uuid.UUID) (entity.TaskCard, error) {
	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		return entity.TaskCard{}, err
	}

	ok, err := s.canSeeCard(ctx, user, card)
	if err != nil {
		return entity.TaskCard{}, err
	}

	if !ok {
		// Invisible cards read as missing, not as forbidden.
		return entity.TaskCard{}, entity.ErrCardNotFound
	}

	return card, nil
}

// mutateCard is the single write path for existing cards: permission
// check, visibility check, mutation, then exactly one history entry
// describing it. Mutations that return an empty action are rejected
// by construction, so the audit log can never miss a write.
func (s *Service) mutateCard(
	ctx context.Context,
	permission string,
	cardID uuid.UUID,
	fn func(actor entity.User, card *entity.TaskCard) (string, error),
) (entity.TaskCard, error) {
	actor, err := s.actor(ctx, permission)
	if err != nil {
		return entity.TaskCard{}, err
	}

	card, err := s.visibleCard(ctx, actor, cardID)
	if err != nil {
		return entity.TaskCard{}, err
	}

	action, err := fn(actor, &card)
	if err != nil {
		return entity.TaskCard{}, err
	}

	card.History = append(card.History, entity.HistoryLog{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Timestamp: time.Now(),
	})

	err = s.cardRepo.Update(ctx, card)
	if err != nil {
		return entity.TaskCard{}, fmt.Errorf("update card: %w", err)
	}

	slog.InfoContext(ctx, "card mutated", "card_id", card.ID, "actor_id", actor.ID, "action", action)

	return card, nil
}

type CreateCardParams struct {
	Title       string
	Description string
	ClientID    uuid.UUID
	Category    entity.Category
	Format      string
	Priority    entity.Priority
	Assignees   []uuid.UUID
	DueDate     time.Time
}

// CreateCard is the staff-facing direct creation path. Client-created
// cards go through the request wizard instead.
func (s *Service) CreateCard(ctx context.Context, params CreateCardParams) (entity.TaskCard, error) {
	actor, err := s.actor(ctx, entity.PermissionManageCards)
	if err != nil {
		return entity.TaskCard{}, err
	}

	if params.Priority == "" {
		params.Priority = entity.PriorityMedium
	}

	if params.Assignees == nil {
		params.Assignees = []uuid.UUID{}
	}

	card := entity.TaskCard{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       params.Title,
		Description: params.Description,
		ClientID:    params.ClientID,
		Category:    params.Category,
		Format:      params.Format,
		Status:      entity.CardStatusBacklog,
		Priority:    params.Priority,
		Assignees:   params.Assignees,
		DueDate:     params.DueDate,
		Labels:      []entity.CardLabel{},
		Checklist:   []entity.ChecklistItem{},
		Comments:    []entity.Comment{},
		Attachments: []entity.Attachment{},
		TimeLogs:    []entity.TimeLog{},
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now(),
		History: []entity.HistoryLog{{
			ID:        uuid.Must(uuid.NewV4()),
			UserID:    actor.ID,
			UserName:  actor.Name,
			Action:    "created the card",
			Timestamp: time.Now(),
		}},
	}

	if !params.ClientID.IsNil() {
		_, err = s.clientRepo.GetByID(ctx, params.ClientID)
		if err != nil {
			return entity.TaskCard{}, err
		}
	}

	err = card.Validate()
	if err != nil {
		return entity.TaskCard{}, err
	}

	err = s.cardRepo.Create(ctx, card)
	if err != nil {
		return entity.TaskCard{}, fmt.Errorf("create card: %w", err)
	}

	slog.InfoContext(ctx, "card created", "card_id", card.ID, "actor_id", actor.ID)

	return card, nil
}

type UpdateCardParams struct {
	Title       *string
	Description *string
	Priority    *entity.Priority
	DueDate     *time.Time
	CoverURL    *string
}

func (s *Service) UpdateCard(ctx context.Context, cardID uuid.UUID, params UpdateCardParams) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		if params.Title != nil {
			if *params.Title == "" {
				return "", entity.ErrMissingRequiredField
			}

			card.Title = *params.Title
		}

		if params.Description != nil {
			card.Description = *params.Description
		}

		if params.Priority != nil {
			if !params.Priority.IsValid() {
				return "", entity.ErrInvalidPriority
			}

			card.Priority = *params.Priority
		}

		if params.DueDate != nil {
			card.DueDate = *params.DueDate
		}

		if params.CoverURL != nil {
			card.CoverURL = *params.CoverURL
			return "changed the cover", nil
		}

		return "updated the card details", nil
	})
}

// SetCardStatus is the single transition function over the kanban
// status. Any authorized actor may move a card to any status; a
// transition graph, if ever wanted, belongs here and nowhere else.
func (s *Service) SetCardStatus(ctx context.Context, cardID uuid.UUID, status entity.CardStatus) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		if !status.IsValid() {
			return "", entity.ErrInvalidCardStatus
		}

		from := card.Status
		card.Status = status

		return fmt.Sprintf("moved the card from %s to %s", from, status), nil
	})
}

func (s *Service) ToggleAssignee(ctx context.Context, cardID, userID uuid.UUID) (entity.TaskCard, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entity.TaskCard{}, err
	}

	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		if card.IsAssignee(userID) {
			assignees := make([]uuid.UUID, 0, len(card.Assignees)-1)

			for _, id := range card.Assignees {
				if id != userID {
					assignees = append(assignees, id)
				}
			}

			card.Assignees = assignees

			return fmt.Sprintf("removed %s from the card", user.Name), nil
		}

		card.Assignees = append(card.Assignees, userID)

		return fmt.Sprintf("assigned %s to the card", user.Name), nil
	})
}

func (s *Service) AddComment(ctx context.Context, cardID uuid.UUID, text string) (entity.TaskCard, error) {
	if text == "" {
		return entity.TaskCard{}, entity.ErrMissingRequiredField
	}

	return s.mutateCard(ctx, entity.PermissionViewBoard, cardID, func(actor entity.User, card *entity.TaskCard) (string, error) {
		card.Comments = append(card.Comments, entity.Comment{
			ID:        uuid.Must(uuid.NewV4()),
			AuthorID:  actor.ID,
			Author:    actor.Name,
			Text:      text,
			CreatedAt: time.Now(),
		})

		return "commented on the card", nil
	})
}

func (s *Service) AddChecklistItem(ctx context.Context, cardID uuid.UUID, text string) (entity.TaskCard, error) {
	if text == "" {
		return entity.TaskCard{}, entity.ErrMissingRequiredField
	}

	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		card.Checklist = append(card.Checklist, entity.ChecklistItem{
			ID:   uuid.Must(uuid.NewV4()),
			Text: text,
		})

		return fmt.Sprintf("added checklist item %q", text), nil
	})
}

func (s *Service) ToggleChecklistItem(ctx context.Context, cardID, itemID uuid.UUID) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		for i := range card.Checklist {
			if card.Checklist[i].ID == itemID {
				card.Checklist[i].Done = !card.Checklist[i].Done

				if card.Checklist[i].Done {
					return fmt.Sprintf("completed checklist item %q", card.Checklist[i].Text), nil
				}

				return fmt.Sprintf("reopened checklist item %q", card.Checklist[i].Text), nil
			}
		}

		return "", entity.ErrChecklistItemNotFound
	})
}

func (s *Service) DeleteChecklistItem(ctx context.Context, cardID, itemID uuid.UUID) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		for i := range card.Checklist {
			if card.Checklist[i].ID == itemID {
				text := card.Checklist[i].Text
				card.Checklist = append(card.Checklist[:i], card.Checklist[i+1:]...)

				return fmt.Sprintf("removed checklist item %q", text), nil
			}
		}

		return "", entity.ErrChecklistItemNotFound
	})
}

func (s *Service) AddLabel(ctx context.Context, cardID uuid.UUID, text, color string) (entity.TaskCard, error) {
	if text == "" {
		return entity.TaskCard{}, entity.ErrMissingRequiredField
	}

	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		card.Labels = append(card.Labels, entity.CardLabel{
			ID:    uuid.Must(uuid.NewV4()),
			Text:  text,
			Color: color,
		})

		return fmt.Sprintf("added label %q", text), nil
	})
}

func (s *Service) RemoveLabel(ctx context.Context, cardID, labelID uuid.UUID) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		for i := range card.Labels {
			if card.Labels[i].ID == labelID {
				text := card.Labels[i].Text
				card.Labels = append(card.Labels[:i], card.Labels[i+1:]...)

				return fmt.Sprintf("removed label %q", text), nil
			}
		}

		return "", entity.ErrLabelNotFound
	})
}

func (s *Service) AddAttachment(ctx context.Context, cardID uuid.UUID, name, url string) (entity.TaskCard, error) {
	if name == "" || url == "" {
		return entity.TaskCard{}, entity.ErrMissingRequiredField
	}

	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		card.Attachments = append(card.Attachments, entity.Attachment{
			ID:   uuid.Must(uuid.NewV4()),
			Name: name,
			URL:  url,
		})

		return fmt.Sprintf("attached %q", name), nil
	})
}

func (s *Service) RemoveAttachment(ctx context.Context, cardID, attachmentID uuid.UUID) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		for i := range card.Attachments {
			if card.Attachments[i].ID == attachmentID {
				name := card.Attachments[i].Name
				card.Attachments = append(card.Attachments[:i], card.Attachments[i+1:]...)

				return fmt.Sprintf("removed attachment %q", name), nil
			}
		}

		return "", entity.ErrAttachmentNotFound
	})
}

func (s *Service) StartTimer(ctx context.Context, cardID uuid.UUID) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		if card.TimerStartedAt != nil {
			return "", entity.ErrTimerAlreadyRunning
		}

		now := time.Now()
		card.TimerStartedAt = &now
		card.IsPaused = false

		return "started the timer", nil
	})
}

func (s *Service) PauseTimer(ctx context.Context, cardID uuid.UUID) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(actor entity.User, card *entity.TaskCard) (string, error) {
		hours, err := closeTimer(card, actor.ID)
		if err != nil {
			return "", err
		}

		card.IsPaused = true

		return fmt.Sprintf("paused the timer after %.2fh", hours), nil
	})
}

func (s *Service) StopTimer(ctx context.Context, cardID uuid.UUID) (entity.TaskCard, error) {
	return s.mutateCard(ctx, entity.PermissionManageCards, cardID, func(actor entity.User, card *entity.TaskCard) (string, error) {
		hours, err := closeTimer(card, actor.ID)
		if err != nil {
			return "", err
		}

		card.IsPaused = false

		return fmt.Sprintf("stopped the timer after %.2fh", hours), nil
	})
}

// closeTimer converts the running interval into a TimeLog entry and
// clears the start timestamp. Pause and Stop differ only in the
// paused flag they leave behind.
func closeTimer(card *entity.TaskCard, userID uuid.UUID) (float64, error) {
	if card.TimerStartedAt == nil {
		return 0, entity.ErrTimerNotRunning
	}

	hours := time.Since(*card.TimerStartedAt).Hours()

	card.TimeLogs = append(card.TimeLogs, entity.TimeLog{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		Hours:     hours,
		CreatedAt: time.Now(),
	})

	card.TimerStartedAt = nil

	return hours, nil
}

// DecideRequest moves a client request out of PENDING. Accepting also
// pulls the card into the TO_DO column so the team picks it up.
func (s *Service) DecideRequest(ctx context.Context, cardID uuid.UUID, decision entity.RequestStatus) (entity.TaskCard, error) {
	card, err := s.mutateCard(ctx, entity.PermissionApproveRequests, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		if card.RequestStatus == "" {
			return "", entity.ErrNotARequest
		}

		if card.RequestStatus == entity.RequestStatusAccepted || card.RequestStatus == entity.RequestStatusRejected {
			return "", entity.ErrRequestAlreadyDecided
		}

		switch decision {
		case entity.RequestStatusAccepted:
			card.RequestStatus = decision
			card.Status = entity.CardStatusToDo

			return "accepted the request", nil

		case entity.RequestStatusRejected:
			card.RequestStatus = decision

			return "rejected the request", nil

		case entity.RequestStatusNegotiation:
			card.RequestStatus = decision

			return "moved the request to negotiation", nil

		default:
			return "", entity.ErrIncorrectRequestBody
		}
	})
	if err != nil {
		return entity.TaskCard{}, err
	}

	s.producer.SendRequestDecided(ctx, card.ID, card.RequestStatus)

	return card, nil
}

// SetFinancialValue records the negotiated amount on a financial
// request. Finance-only.
func (s *Service) SetFinancialValue(ctx context.Context, cardID uuid.UUID, value decimal.Decimal) (entity.TaskCard, error) {
	if value.IsNegative() {
		return entity.TaskCard{}, entity.ErrInvalidAmount
	}

	return s.mutateCard(ctx, entity.PermissionViewFinance, cardID, func(_ entity.User, card *entity.TaskCard) (string, error) {
		card.FinancialValue = &value

		return fmt.Sprintf("set the financial value to %s", value.StringFixed(2)), nil
	})
}

type ActivityEntry struct {
	Kind      string    `json:"kind"` // "comment" or "history"
	AuthorID  uuid.UUID `json:"authorId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CardActivity merges the comment and history sequences into a single
// read-only feed ordered by timestamp ascending. Neither source is
// mutated; ties keep comments before history entries.
func (s *Service) CardActivity(ctx context.Context, cardID uuid.UUID) ([]ActivityEntry, error) {
	user, err := s.actor(ctx, entity.PermissionViewBoard)
	if err != nil {
		return nil, err
	}

	card, err := s.visibleCard(ctx, user, cardID)
	if err != nil {
		return nil, err
	}

	entries := make([]ActivityEntry, 0, len(card.Comments)+len(card.History))

	for _, c := range card.Comments {
		entries = append(entries, ActivityEntry{
			Kind:      "comment",
			AuthorID:  c.AuthorID,
			Author:    c.Author,
			Text:      c.Text,
			Timestamp: c.CreatedAt,
		})
	}

	for _, h := range card.History {
		entries = append(entries, ActivityEntry{
			Kind:      "history",
			AuthorID:  h.UserID,
			Author:    h.UserName,
			Text:      h.Action,
			Timestamp: h.Timestamp,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	return entries, nil
}
