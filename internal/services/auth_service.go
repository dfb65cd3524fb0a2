package services

import (
	"techcare/internal/config"
	"techcare/internal/utils"
	"techcare/pkg/logger"
)

type AuthService interface {
	// Login issues a signed access token asserting the given email.
	Login(email string) (string, error)
	// Verify validates a token and extracts the email claim.
	Verify(token string) (string, error)
}

type authService struct {
	config *config.SecurityConfig
	logger *logger.Logger
}

func NewAuthService(config *config.SecurityConfig, logger *logger.Logger) AuthService {
	return &authService{
		config: config,
		logger: logger,
	}
}

func (s *authService) Login(email string) (string, error) {
	token, err := utils.GenerateAccessToken(email, s.config.JWTSecret, s.config.JWTAccessTokenTTL)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign access token")
		return "", err
	}

	s.logger.WithField("email", email).Info("Access token issued")
	return token, nil
}

func (s *authService) Verify(token string) (string, error) {
	claims, err := utils.ValidateToken(token, s.config.JWTSecret)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
