package services

import (
	"errors"

	"StoreHub/models"
	"StoreHub/repositories"
	"StoreHub/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a local-password account. A taken email or username is a
// conflict; the unique index is the safety net for the concurrent case.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, utils.NewConflictError("email already registered")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: models.ProviderLocal,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("email or username already registered")
		}
		logrus.Error("Error registering user: ", err)
		return nil, err
	}
	return user, nil
}

// Login verifies the password and mints a token pair. Every failure mode
// (unknown email, federated-only account, wrong password) collapses into
// ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*models.User, *utils.Tokens, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, nil, utils.ErrInvalidCredentials
	}
	if user.PasswordHash == nil {
		return nil, nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePassword(*user.PasswordHash, password); err != nil {
		return nil, nil, utils.ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(user.Email, user.ID)
	if err != nil {
		logrus.Error("Error generating tokens: ", err)
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh verifies the refresh token and mints a new access token. The
// refresh token itself is reused, not rotated: it stays valid until its own
// expiry.
func (s *AuthService) Refresh(refreshToken string) (*utils.Tokens, error) {
	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateAccessToken(claims.Subject, claims.UserID)
	if err != nil {
		return nil, err
	}
	return &utils.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}
