package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scopes a caller token may carry.
const (
	ScopePlan   = "plan"
	ScopeReader = "catalog:read"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims identify the calling client (the front-end or another service).
// There are no end-user accounts behind them.
type Claims struct {
	ClientID string
	Scope    string
}

// GenerateToken signs a service token for clientID.
func GenerateToken(secret []byte, clientID, scope string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("empty signing secret")
	}
	if clientID == "" {
		return "", errors.New("empty clientID passed to GenerateToken")
	}

	claims := jwt.MapClaims{
		"sub":   clientID,
		"scope": scope,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(secret []byte, tokenString string) (*Claims, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty signing secret")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	clientID, _ := claims["sub"].(string)
	scope, _ := claims["scope"].(string)
	if clientID == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{ClientID: clientID, Scope: scope}, nil
}
