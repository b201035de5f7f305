package usecase

import (
	"context"

	"sews/internal/domain/entity"
)

// RegistrationUsecase creates new principals of either kind.
type RegistrationUsecase interface {
	RegisterCustomer(ctx context.Context, input *RegisterCustomerInput) (*entity.Customer, error)
	RegisterTailor(ctx context.Context, input *RegisterTailorInput) (*entity.Tailor, error)
}

// RegisterCustomerInput mirrors the createCustomUser mutation arguments.
type RegisterCustomerInput struct {
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Email     string `json:"email" validate:"notblank,email,max=255"`
	Password  string `json:"password" validate:"required,maxbytes=72"`
}

// RegisterTailorInput mirrors the registerTailor mutation arguments.
// Sex may be left empty; when set it must be Male/Female (or M/F).
type RegisterTailorInput struct {
	FullName         string `json:"fullName" validate:"max=255"`
	Username         string `json:"username" validate:"notblank,max=150"`
	Email            string `json:"email" validate:"notblank,email,max=255"`
	NationalIDNumber string `json:"nationalIdNumber" validate:"notblank,max=100"`
	PhoneNumber      string `json:"phoneNumber" validate:"max=20"`
	Sex              string `json:"sex" validate:"omitempty,sex"`
	AreaOfResidence  string `json:"areaOfResidence" validate:"max=255"`
	AreaOfWork       string `json:"areaOfWork" validate:"max=255"`
	Password         string `json:"password" validate:"required,maxbytes=72"`
}
