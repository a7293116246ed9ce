package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin           Role = "ADMIN"
	RoleManager         Role = "MANAGER"
	RoleCreativeHead    Role = "CREATIVE_HEAD"
	RoleContributor     Role = "CONTRIBUTOR"
	RoleFreelancer      Role = "FREELANCER"
	RoleClient          Role = "CLIENT"
	RoleFinance         Role = "FINANCE"
	RoleCustomerSuccess Role = "CUSTOMER_SUCCESS"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCreativeHead, RoleContributor,
		RoleFreelancer, RoleClient, RoleFinance, RoleCustomerSuccess:
		return true
	}

	return false
}

func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role belongs to an internal employee.
// Client users are external and Freelancers are contracted per task.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCreativeHead, RoleContributor, RoleFinance, RoleCustomerSuccess:
		return true
	}

	return false
}

type User struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	Role         Role             `json:"role"`
	ClientID     uuid.UUID        `json:"clientId,omitempty"` // set only when Role == RoleClient
	IsActive     bool             `json:"isActive"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`     // staff only
	PaymentDay   *int             `json:"paymentDay,omitempty"` // staff only
	AvatarURL    string           `json:"avatarUrl,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func (u User) Validate() error {
	if u.Name == "" || u.Email == "" {
		return ErrMissingRequiredField
	}

	if !u.Role.IsValid() {
		return ErrInvalidRole
	}

	if u.Role == RoleClient && u.ClientID.IsNil() {
		return ErrClientLinkRequired
	}

	return nil
}
