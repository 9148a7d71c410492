package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/resumeforge/resumeforge/pkg/errx"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

// Role values issued by the identity service
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims are the token claims shared with the external identity service
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService verifies access tokens issued by the external identity
// provider. Tokens are signed with an HMAC secret shared with that provider;
// this service never issues credentials for end users itself.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a verifier for the shared signing secret
func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// ValidateAccessToken parses and verifies a bearer token
func (s *TokenService) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrRegistry.NewWithCause(CodeInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken()
	}
	return claims, nil
}

// GenerateAccessToken mints a token with the shared secret. Used by tests and
// local tooling; production tokens come from the identity provider.
func (s *TokenService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email.String(),
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return signed, nil
}
