package services

import (
	"context"
	"errors"
	"strings"

	"StoreHub/auth"
	"StoreHub/models"
	"StoreHub/repositories"
	"StoreHub/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// GoogleProvider is the slice of the external identity provider the
// reconciliation flow needs. *auth.GoogleClient implements it.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (*auth.GoogleUser, error)
}

type OAuthService struct {
	provider GoogleProvider
	userRepo repositories.UserRepository
	avatars  *AvatarService
}

func NewOAuthService(provider GoogleProvider, userRepo repositories.UserRepository, avatars *AvatarService) *OAuthService {
	return &OAuthService{
		provider: provider,
		userRepo: userRepo,
		avatars:  avatars,
	}
}

// AuthURL returns the provider authorize URL for the given CSRF state.
func (s *OAuthService) AuthURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// HandleCallback reconciles the federated identity with a local user and
// mints the token pair. Exactly one user per email: a new email creates a
// google-origin account, a google-origin account logs straight in, and an
// email owned by a different origin fails closed.
func (s *OAuthService) HandleCallback(ctx context.Context, code string) (*models.User, *utils.Tokens, error) {
	token, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	info, err := s.provider.FetchUserInfo(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.FindByEmail(info.Email)
	switch {
	case err == nil:
		if user.AuthProvider != models.ProviderGoogle {
			return nil, nil, utils.NewConflictError("email already registered with a different login method")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.createFederatedUser(info)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, err
	}

	s.syncAvatar(user, info.Picture)

	tokens, err := utils.GenerateTokenPair(user.Email, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

func (s *OAuthService) createFederatedUser(info *auth.GoogleUser) (*models.User, error) {
	username := info.Name
	if username == "" {
		username = strings.SplitN(info.Email, "@", 2)[0]
	}

	user := &models.User{
		Username:     username,
		Email:        info.Email,
		PasswordHash: nil,
		AuthProvider: models.ProviderGoogle,
	}
	if err := s.userRepo.Create(user); err != nil {
		// Two first logins racing for one email: the unique index decides,
		// the loser sees a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.NewConflictError("account already exists for this email")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"email":    user.Email,
		"provider": user.AuthProvider,
	}).Info("Created user from federated login")
	return user, nil
}

// syncAvatar pulls the provider picture at most once, only while the user
// has no avatar. Failures are logged and swallowed: login must still
// succeed.
func (s *OAuthService) syncAvatar(user *models.User, pictureURL string) {
	if user.AvatarPath != "" || pictureURL == "" || s.avatars == nil {
		return
	}
	path, err := s.avatars.IngestFromURL(user.ID, pictureURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"error":   err,
		}).Warn("Avatar sync failed")
		return
	}
	user.AvatarPath = path
}
