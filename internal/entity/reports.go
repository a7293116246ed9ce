package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BoardSnapshot is the aggregate handed to the analysis collaborator:
// counts only, no card contents leave the service.
type BoardSnapshot struct {
	Role         Role               `json:"role"`
	TotalCards   int                `json:"totalCards"`
	ByStatus     map[CardStatus]int `json:"byStatus"`
	OverdueCount int                `json:"overdueCount"`
}

type FinanceStats struct {
	Receivable    decimal.Decimal `json:"receivable"`
	Payroll       decimal.Decimal `json:"payroll"`
	PurchaseCosts decimal.Decimal `json:"purchaseCosts"`
	Balance       decimal.Decimal `json:"balance"`
}

type ClientStats struct {
	PendingRequests    int `json:"pendingRequests"`
	ActiveCards        int `json:"activeCards"`
	CompletedThisMonth int `json:"completedThisMonth"`
}

// DashboardStats is role-shaped: the finance block is present only
// for Finance/Admin viewers, the client block only for Client viewers.
type DashboardStats struct {
	TotalCards     int     `json:"totalCards"`
	CompletedCards int     `json:"completedCards"`
	OverdueCards   int     `json:"overdueCards"`
	OnTimeRate     float64 `json:"onTimeRate"`
	HoursLogged    float64 `json:"hoursLogged"`

	Finance *FinanceStats `json:"finance,omitempty"`
	Client  *ClientStats  `json:"client,omitempty"`
}

type CalendarItemType string

const (
	CalendarItemTask       CalendarItemType = "TASK"
	CalendarItemReceivable CalendarItemType = "RECEIVABLE"
)

type CalendarItem struct {
	Type     CalendarItemType `json:"type"`
	Title    string           `json:"title"`
	CardID   uuid.UUID        `json:"cardId,omitempty"`
	ClientID uuid.UUID        `json:"clientId,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
}

type CalendarDay struct {
	Date  time.Time      `json:"date"`
	Items []CalendarItem `json:"items"`
}
