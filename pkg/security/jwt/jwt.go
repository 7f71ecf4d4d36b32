package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator issues HS256 tokens for API clients.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims are the registered claims plus the publisher flag that allows adding vacancies.
type Claims struct {
	jwt.RegisteredClaims
	CanPublish bool `json:"can_publish,omitempty"`
}

// Generate signs a token for client. A zero ttl yields a token without expiry.
func (g *Generator) Generate(client string, canPublish bool) (string, error) {
	if len(g.secret) == 0 {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   g.issuer,
			Subject:  client,
			IssuedAt: jwt.NewNumericDate(now),
		},
		CanPublish: canPublish,
	}
	if g.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(g.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}
