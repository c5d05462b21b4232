// Package identity provides concrete implementations of the identity provider domain service.
package identity

import (
	"context"
	"strings"
	"time"

	"recipefinder/config"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	defaultJWTTTL    = 24 * time.Hour
	defaultJWTIssuer = "recipefinder"
	minSecretLength  = 16
)

// identityClaims carries the caller identity inside an HMAC-signed token.
type identityClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// jwtProvider verifies and issues HS256 tokens signed with a shared secret.
type jwtProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTProvider is the constructor for jwtProvider.
func NewJWTProvider(cfg config.JWTConfig) (*jwtProvider, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = defaultJWTIssuer
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultJWTTTL
	}

	return &jwtProvider{
		secret: []byte(cfg.Secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token naming identity.
func (p *jwtProvider) Issue(identity service.Identity) (string, error) {
	if identity.UserID == "" {
		return "", errors.New("user id is required to issue a token")
	}

	now := p.now()
	claims := identityClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature, issuer and expiry and returns the identity the token names.
func (p *jwtProvider) Verify(_ context.Context, token string) (*service.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("empty token")
	}

	claims := &identityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return p.secret, nil
	},
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails(err.Error())
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrInvalidToken.WithDetails("token has no subject")
	}

	return &service.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
