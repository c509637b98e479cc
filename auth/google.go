package auth

import (
	"context"
	"fmt"

	"StoreHub/config"
	"StoreHub/utils"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleUser is the verified identity assertion extracted from Google.
type GoogleUser struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

// GoogleClient wraps the Google authorization-code flow. It is constructed
// once at startup from the loaded config and injected where needed.
type GoogleClient struct {
	config *oauth2.Config
}

func NewGoogleClient(cfg *config.Config) *GoogleClient {
	return &GoogleClient{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL builds the provider authorize URL for the given CSRF state.
func (g *GoogleClient) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state)
}

// Exchange trades the authorization code for a provider token.
func (g *GoogleClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	return token, nil
}

// FetchUserInfo resolves the token to a verified identity. A token response
// without an id_token is rejected outright.
func (g *GoogleClient) FetchUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUser, error) {
	if _, ok := token.Extra("id_token").(string); !ok {
		return nil, utils.ErrMissingIDToken
	}

	srv, err := goauth2.NewService(ctx, option.WithTokenSource(g.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}

	info, err := srv.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("provider returned no email")
	}

	return &GoogleUser{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
