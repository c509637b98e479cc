package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 7 * 24 * time.Hour

	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

var jwtSecret = []byte("supersecretkey")

// SetJWTSecret replaces the signing secret. Called once at startup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// TokenClaims are the JWT claims: subject is the user's email, UserID the
// numeric id.
type TokenClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Tokens groups an access token and its refresh token.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// GenerateToken creates a signed HS256 token for the given subject and
// duration.
func GenerateToken(email string, userID uint, duration time.Duration) (string, error) {
	claims := &TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// GenerateAccessToken creates a short-lived access token.
func GenerateAccessToken(email string, userID uint) (string, error) {
	return GenerateToken(email, userID, AccessTokenDuration)
}

// GenerateRefreshToken creates a long-lived refresh token.
func GenerateRefreshToken(email string, userID uint) (string, error) {
	return GenerateToken(email, userID, RefreshTokenDuration)
}

// GenerateTokenPair creates the access/refresh pair issued on every login.
func GenerateTokenPair(email string, userID uint) (*Tokens, error) {
	accessToken, err := GenerateAccessToken(email, userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := GenerateRefreshToken(email, userID)
	if err != nil {
		return nil, err
	}
	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// ValidateToken parses and verifies a token. Any failure (bad signature,
// wrong algorithm, expired) comes back wrapping ErrInvalidToken; callers
// must treat it as unauthenticated, never as retryable.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetTokenCookies attaches the pair as HTTP-only cookies whose max-age
// mirrors each token's own expiry.
func SetTokenCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(AccessTokenDuration.Seconds()),
		HttpOnly: true,
	})
	c.SetCookie(&http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(RefreshTokenDuration.Seconds()),
		HttpOnly: true,
	})
}

// ClearTokenCookies removes both cookies. Idempotent: succeeds whether or
// not the client sent any.
func ClearTokenCookies(c echo.Context) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}
