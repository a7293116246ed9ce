package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type CardStatus string

const (
	CardStatusBacklog  CardStatus = "BACKLOG"
	CardStatusToDo     CardStatus = "TO_DO"
	CardStatusDoing    CardStatus = "DOING"
	CardStatusReview   CardStatus = "REVIEW"
	CardStatusDone     CardStatus = "DONE"
	CardStatusArchived CardStatus = "ARCHIVED"
)

func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusBacklog, CardStatusToDo, CardStatusDoing,
		CardStatusReview, CardStatusDone, CardStatusArchived:
		return true
	}

	return false
}

func (s CardStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status ends the card's life.
// Archived is reachable from any status and is final.
func (s CardStatus) IsTerminal() bool {
	return s == CardStatusDone || s == CardStatusArchived
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

type Category string

const (
	CategoryGeneral        Category = "General"
	CategoryDesign         Category = "Design"
	CategoryCopywriting    Category = "Copywriting"
	CategoryVideo          Category = "Video"
	CategorySocialMedia    Category = "Social Media"
	CategoryPaidTraffic    Category = "Paid Traffic"
	CategoryWeb            Category = "Web"
	CategoryPlanning       Category = "Planning"
	CategoryFinancial      Category = "Financial"
	CategoryAdministrative Category = "Administrative"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryGeneral, CategoryDesign, CategoryCopywriting, CategoryVideo,
		CategorySocialMedia, CategoryPaidTraffic, CategoryWeb,
		CategoryPlanning, CategoryFinancial, CategoryAdministrative:
		return true
	}

	return false
}

// IsInternal reports whether the category belongs to back-office work
// that never requires a client context.
func (c Category) IsInternal() bool {
	return c == CategoryFinancial || c == CategoryAdministrative
}

// FormatCustom is the sentinel delivery format that requires a
// free-text description of what is expected.
const FormatCustom = "Custom"

type RequestStatus string

const (
	RequestStatusPending     RequestStatus = "PENDING"
	RequestStatusAccepted    RequestStatus = "ACCEPTED"
	RequestStatusNegotiation RequestStatus = "NEGOTIATION"
	RequestStatusRejected    RequestStatus = "REJECTED"
)

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusNegotiation, RequestStatusRejected:
		return true
	}

	return false
}

type PlanningStatus string

const (
	PlanningStatusDraft           PlanningStatus = "DRAFT"
	PlanningStatusWaitingApproval PlanningStatus = "WAITING_APPROVAL"
	PlanningStatusApproved        PlanningStatus = "APPROVED"
	PlanningStatusRejected        PlanningStatus = "REJECTED"
)

type FinancialType string

const (
	FinancialTypePurchase      FinancialType = "PURCHASE"
	FinancialTypeReimbursement FinancialType = "REIMBURSEMENT"
	FinancialTypeTransport     FinancialType = "TRANSPORT"
	FinancialTypeMealAllowance FinancialType = "MEAL_ALLOWANCE"
	FinancialTypeOther         FinancialType = "OTHER"
)

func (t FinancialType) IsValid() bool {
	switch t {
	case FinancialTypePurchase, FinancialTypeReimbursement,
		FinancialTypeTransport, FinancialTypeMealAllowance, FinancialTypeOther:
		return true
	}

	return false
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"authorId"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChecklistItem struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Done bool      `json:"done"`
}

type TimeLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Hours     float64   `json:"hours"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

type CardLabel struct {
	ID    uuid.UUID `json:"id"`
	Text  string    `json:"text"`
	Color string    `json:"color"`
}

type Attachment struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
}

// TaskCard is the unit of work moving through the kanban pipeline.
// The card exclusively owns its checklist, comments, attachments,
// time logs and history; Client and User are referenced by id only.
type TaskCard struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	// ClientID == uuid.Nil marks internal (agency-facing) work.
	ClientID  uuid.UUID   `json:"clientId,omitempty"`
	Category  Category    `json:"category"`
	Format    string      `json:"format,omitempty"`
	Status    CardStatus  `json:"status"`
	Priority  Priority    `json:"priority"`
	Assignees []uuid.UUID `json:"assignees"`
	DueDate   time.Time   `json:"dueDate"`
	CoverURL  string      `json:"coverUrl,omitempty"`

	Labels      []CardLabel     `json:"labels"`
	Checklist   []ChecklistItem `json:"checklist"`
	Comments    []Comment       `json:"comments"`
	Attachments []Attachment    `json:"attachments"`
	TimeLogs    []TimeLog       `json:"timeLogs"`
	History     []HistoryLog    `json:"history"`

	// Timer sub-state: a set TimerStartedAt implies IsPaused == false.
	TimerStartedAt *time.Time `json:"timerStartedAt,omitempty"`
	IsPaused       bool       `json:"isPaused"`

	// At most one of the request / planning workflows drives the
	// card's external-facing status.
	RequestStatus  RequestStatus  `json:"requestStatus,omitempty"`
	PlanningStatus PlanningStatus `json:"planningStatus,omitempty"`

	FinancialType  FinancialType    `json:"financialType,omitempty"`
	FinancialValue *decimal.Decimal `json:"financialValue,omitempty"`

	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c TaskCard) Validate() error {
	if c.Title == "" {
		return ErrMissingRequiredField
	}

	if !c.Status.IsValid() {
		return ErrInvalidCardStatus
	}

	if !c.Category.IsValid() {
		return ErrInvalidCategory
	}

	if !c.Priority.IsValid() {
		return ErrInvalidPriority
	}

	if c.RequestStatus != "" && c.PlanningStatus != "" {
		return ErrConflictingWorkflows
	}

	if c.TimerStartedAt != nil && c.IsPaused {
		return ErrTimerStateConflict
	}

	return nil
}

// IsAssignee reports whether the user appears in the assignee list.
func (c TaskCard) IsAssignee(userID uuid.UUID) bool {
	for _, id := range c.Assignees {
		if id == userID {
			return true
		}
	}

	return false
}

// IsOverdue reports whether the card is past due and still open.
func (c TaskCard) IsOverdue(now time.Time) bool {
	return c.DueDate.Before(now) && !c.Status.IsTerminal()
}
