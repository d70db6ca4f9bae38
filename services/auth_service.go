package services

import (
	"context"
	"log/slog"

	"github.com/Dosada05/zone-cup/utils"
)

// RoleOrganizer is the only role allowed to change tournament data.
const RoleOrganizer = "organizer"

type AuthService interface {
	Login(ctx context.Context, input LoginInput) error
}

type LoginInput struct {
	Password string `json:"password" validate:"required"`
}

type authService struct {
	passwordHash string
	logger       *slog.Logger
}

func NewAuthService(passwordHash string, logger *slog.Logger) AuthService {
	return &authService{
		passwordHash: passwordHash,
		logger:       loggerOrDefault(logger),
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) error {
	if err := validateStruct(input); err != nil {
		return err
	}
	if s.passwordHash == "" || !utils.CheckPasswordHash(input.Password, s.passwordHash) {
		s.logger.WarnContext(ctx, "Organizer login rejected")
		return ErrInvalidCredentials
	}
	return nil
}
