package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Supplier struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Supplier) Validate() error {
	if s.Name == "" {
		return ErrMissingRequiredField
	}

	return nil
}

type PurchaseItem struct {
	ID          uuid.UUID       `json:"id"`
	SupplierID  uuid.UUID       `json:"supplierId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	DueDate     time.Time       `json:"dueDate"`
	Paid        bool            `json:"paid"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (p PurchaseItem) Validate() error {
	if p.Description == "" {
		return ErrMissingRequiredField
	}

	if p.SupplierID.IsNil() {
		return ErrMissingRequiredField
	}

	if p.Price.IsNegative() {
		return ErrInvalidAmount
	}

	return nil
}
