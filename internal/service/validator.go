package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

func ValidateLoginParams(email, password string) error {
	if email == "" || password == "" {
		return entity.ErrIncorrectRequestBody
	}

	return nil
}

func ValidateCreateUserParams(params CreateUserParams) error {
	if params.Name == "" || params.Email == "" || params.Password == "" {
		return entity.ErrIncorrectRequestBody
	}

	if !params.Role.IsValid() {
		return fmt.Errorf("%w: invalid role %q", entity.ErrIncorrectRequestBody, params.Role)
	}

	return nil
}

func ValidateOnboardClientParams(params OnboardClientParams) error {
	if params.Name == "" {
		return entity.ErrIncorrectRequestBody
	}

	if params.PaymentDay < 1 || params.PaymentDay > 31 {
		return fmt.Errorf("%w: payment day %d", entity.ErrIncorrectRequestBody, params.PaymentDay)
	}

	if params.ContractValue.IsNegative() {
		return fmt.Errorf("%w: negative contract value", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateCreateCardParams(params CreateCardParams) error {
	if params.Title == "" {
		return entity.ErrIncorrectRequestBody
	}

	if !params.Category.IsValid() {
		return fmt.Errorf("%w: invalid category %q", entity.ErrIncorrectRequestBody, params.Category)
	}

	if params.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", entity.ErrIncorrectRequestBody)
	}

	return nil
}

func ValidateDecisionParams(cardID uuid.UUID, decision entity.RequestStatus) error {
	if cardID.IsNil() {
		return entity.ErrIncorrectRequestBody
	}

	if decision != entity.RequestStatusAccepted &&
		decision != entity.RequestStatusRejected &&
		decision != entity.RequestStatusNegotiation {
		return fmt.Errorf("%w: invalid decision %q", entity.ErrIncorrectRequestBody, decision)
	}

	return nil
}

func ValidateCalendarParams(year int, month time.Month) error {
	if year < 2000 || year > 2100 {
		return fmt.Errorf("%w: year %d", entity.ErrIncorrectRequestBody, year)
	}

	if month < time.January || month > time.December {
		return fmt.Errorf("%w: month %d", entity.ErrIncorrectRequestBody, month)
	}

	return nil
}
