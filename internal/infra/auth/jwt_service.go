// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"academy/config"
	"academy/internal/domain/entity"
	"academy/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrMissingEmail is returned when a valid token carries no usable email claim.
var ErrMissingEmail = errors.New("token has no email claim")

// jwtVerifier is a concrete implementation of the IdentityVerifier interface for
// HS256 tokens minted by the hosted auth provider.
type jwtVerifier struct {
	secret     []byte // Shared signing secret.
	issuer     string // Expected issuer, empty to skip.
	audience   string // Expected audience, empty to skip.
	emailClaim string // Claim that carries the email.
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.IdentityVerifier, error) {
	if cfg.Identity == nil || cfg.Identity.Secret == "" {
		return nil, errors.New("identity secret must be provided")
	}

	emailClaim := cfg.Identity.EmailClaim
	if emailClaim == "" {
		emailClaim = "email"
	}

	return &jwtVerifier{
		secret:     []byte(cfg.Identity.Secret),
		issuer:     cfg.Identity.Issuer,
		audience:   cfg.Identity.Audience,
		emailClaim: emailClaim,
	}, nil
}

// Verify checks signature, expiry and the optional issuer and audience, then resolves the email.
func (v *jwtVerifier) Verify(tokenString string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	rawEmail, _ := claims[v.emailClaim].(string)
	email := entity.NormalizeEmail(rawEmail)
	if email == "" {
		return nil, ErrMissingEmail
	}

	subject, _ := claims.GetSubject()

	return &entity.Identity{
		Subject: subject,
		Email:   email,
	}, nil
}

// Issue mints a token carrying the identity, for local development.
func (v *jwtVerifier) Issue(identity *entity.Identity, ttl time.Duration) (string, error) {
	if identity == nil || strings.TrimSpace(identity.Email) == "" {
		return "", ErrMissingEmail
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        identity.Subject,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		v.emailClaim: entity.NormalizeEmail(identity.Email),
	}
	if v.issuer != "" {
		claims["iss"] = v.issuer
	}
	if v.audience != "" {
		claims["aud"] = v.audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
