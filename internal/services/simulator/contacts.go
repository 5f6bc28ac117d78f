package simulator

import (
	"context"

	"paisa/internal/models"
	"paisa/internal/utils"
)

func (s *service) AddContact(ctx context.Context, input ContactInput) (*models.Contact, error) {
	if err := s.simulate("add_contact", "Failed to add contact. Please try again."); err != nil {
		return nil, err
	}

	return &models.Contact{
		ID:         utils.NewID(utils.PrefixContact),
		UserID:     s.profile.UserID,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Avatar:     input.Avatar,
		IsFavorite: input.IsFavorite,
		CreatedAt:  s.now(),
	}, nil
}

func (s *service) AddBeneficiary(ctx context.Context, input BeneficiaryInput) (*models.Beneficiary, error) {
	if err := s.simulate("add_beneficiary", "Failed to add beneficiary. Please try again."); err != nil {
		return nil, err
	}

	now := s.now()
	return &models.Beneficiary{
		ID:            utils.NewID(utils.PrefixBeneficiary),
		UserID:        s.profile.UserID,
		Name:          input.Name,
		Address:       input.Address,
		Phone:         input.Phone,
		AccountNumber: input.AccountNumber,
		RoutingCode:   input.RoutingCode,
		BankName:      input.BankName,
		IsFavorite:    input.IsFavorite,
		LastUsed:      now,
		CreatedAt:     now,
	}, nil
}
