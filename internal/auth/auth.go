// Package auth implements the mocked federated-login flow: each supported
// provider maps to a fixed profile and a signed session token. No credential
// is ever verified; the flow simulates an OAuth redirect that always
// succeeds.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnknownProvider = errors.New("unknown login provider")

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Provider string `json:"provider"`
	Role     string `json:"role"`
}

var providerProfiles = map[string]User{
	"google": {
		ID:       "google-001",
		Name:     "Alex Johnson",
		Email:    "alex.johnson@company.com",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=AlexJ",
		Provider: "google",
		Role:     "admin",
	},
	"microsoft": {
		ID:       "ms-001",
		Name:     "Sam Taylor",
		Email:    "sam.taylor@company.onmicrosoft.com",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=SamT",
		Provider: "microsoft",
		Role:     "hr",
	},
	"github": {
		ID:       "gh-001",
		Name:     "Jordan Lee",
		Email:    "jordan.lee@company.com",
		Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=JordanL",
		Provider: "github",
		Role:     "manager",
	},
}

// ProfileFor returns the mock profile for a provider.
func ProfileFor(provider string) (User, error) {
	profile, ok := providerProfiles[provider]
	if !ok {
		return User{}, ErrUnknownProvider
	}
	return profile, nil
}

type Claims struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Provider string `json:"provider"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user User, ttl time.Duration) (string, error) {
	claims := Claims{
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Provider: user.Provider,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return User{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return User{}, errors.New("invalid token")
	}
	return User{
		ID:       claims.Subject,
		Name:     claims.Name,
		Email:    claims.Email,
		Avatar:   claims.Avatar,
		Provider: claims.Provider,
		Role:     claims.Role,
	}, nil
}
