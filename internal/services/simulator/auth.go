package simulator

import (
	"context"

	"go.uber.org/zap"

	"paisa/internal/errors"
	"paisa/internal/models"
)

func (s *service) SendOTP(ctx context.Context, phone string) (*OTPAck, error) {
	if err := s.simulate("send_otp", "Failed to send OTP. Please try again."); err != nil {
		return nil, err
	}
	return &OTPAck{Message: "OTP sent successfully"}, nil
}

// Login authenticates with the fixed demo OTP and fabricates the demo user
// with setup not yet complete.
func (s *service) Login(ctx context.Context, phone, otp string) (*models.User, error) {
	if err := s.simulate("login", "Network error. Please try again."); err != nil {
		return nil, err
	}

	if otp != s.cfg.DemoOTP {
		s.logger.Debug("login rejected", zap.String("phone", phone))
		return nil, errors.ErrInvalidOTP
	}

	return &models.User{
		ID:            s.profile.UserID,
		Name:          s.profile.Name,
		Email:         s.profile.Email,
		Phone:         phone,
		Avatar:        s.profile.Avatar,
		SetupComplete: false,
		Theme:         models.ThemeSystem,
		Notifications: true,
	}, nil
}
