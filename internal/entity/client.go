package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusOnTime     PaymentStatus = "on-time"
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusLate       PaymentStatus = "late"
	PaymentStatusDelinquent PaymentStatus = "delinquent"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusOnTime, PaymentStatusPending, PaymentStatusLate, PaymentStatusDelinquent:
		return true
	}

	return false
}

func (s PaymentStatus) String() string {
	return string(s)
}

// IsOverdue reports whether the status warrants blocking the client.
func (s PaymentStatus) IsOverdue() bool {
	return s == PaymentStatusLate || s == PaymentStatusDelinquent
}

const OnboardingStepsTotal = 5

type Client struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	CompanyName     string          `json:"companyName,omitempty"`
	Email           string          `json:"email,omitempty"`
	ContractValue   decimal.Decimal `json:"contractValue"`
	IsRecurring     bool            `json:"isRecurring"`
	PaymentDay      int             `json:"paymentDay"` // day of month, 1..31
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	IsBlocked       bool            `json:"isBlocked"`
	IsActive        bool            `json:"isActive"`
	OnboardingStep  int             `json:"onboardingStep"`
	AssignedHeadID  uuid.UUID       `json:"assignedHeadId,omitempty"` // weak reference, CreativeHead user
	AssignedCSID    uuid.UUID       `json:"assignedCsId,omitempty"`   // weak reference, CustomerSuccess user
	LastPaymentDate *time.Time      `json:"lastPaymentDate,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NewOnboardedClient builds a client with the "always starts clean"
// onboarding defaults: active, on-time, unblocked, onboarding complete.
// Whatever billing state the onboarding form collected is ignored here.
func NewOnboardedClient(name, companyName, email string, contractValue decimal.Decimal, isRecurring bool, paymentDay int) Client {
	return Client{
		ID:             uuid.Must(uuid.NewV4()),
		Name:           name,
		CompanyName:    companyName,
		Email:          email,
		ContractValue:  contractValue,
		IsRecurring:    isRecurring,
		PaymentDay:     paymentDay,
		PaymentStatus:  PaymentStatusOnTime,
		IsBlocked:      false,
		IsActive:       true,
		OnboardingStep: OnboardingStepsTotal,
		CreatedAt:      time.Now(),
	}
}

func (c Client) Validate() error {
	if c.Name == "" {
		return ErrMissingRequiredField
	}

	if c.PaymentDay < 1 || c.PaymentDay > 31 {
		return ErrInvalidPaymentDay
	}

	if !c.PaymentStatus.IsValid() {
		return ErrInvalidPaymentStatus
	}

	if c.IsBlocked && !c.PaymentStatus.IsOverdue() {
		return ErrBlockedButCurrent
	}

	return nil
}
