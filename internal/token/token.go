// Package token issues and verifies the signed access tokens exchanged
// with clients. The claim set is shared with other backends, so claim
// names are part of the wire contract and must not change.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"auth-service/internal/config"
	"auth-service/internal/domain"
)

var (
	// ErrInvalidToken covers malformed tokens, bad signatures, wrong
	// signing algorithms, and expired tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingUserID is returned when a structurally valid token has no
	// user_id claim.
	ErrMissingUserID = errors.New("token missing user_id claim")
)

// Claims is the token payload. sub and exp ride in RegisteredClaims; the
// shop context fields are present only when a context was supplied at
// issuance, and verifiers must tolerate their absence.
type Claims struct {
	UserID        int64  `json:"user_id"`
	IsSuperuser   bool   `json:"is_superuser"`
	UserShopID    *int64 `json:"user_shop_id,omitempty"`
	LastInvoiceID *int64 `json:"last_invoice_id,omitempty"`
	jwt.RegisteredClaims
}

// Service signs and verifies access tokens with a shared HMAC secret.
type Service struct {
	secret     []byte
	method     jwt.SigningMethod
	defaultTTL time.Duration
}

// NewService creates a token service from JWT configuration. The
// algorithm must be an HMAC variant; config validation guarantees that
// at startup.
func NewService(cfg config.JWTConfig) (*Service, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", cfg.Algorithm)
	}
	return &Service{
		secret:     []byte(cfg.SecretKey),
		method:     method,
		defaultTTL: cfg.AccessTokenTTL(),
	}, nil
}

// Issue builds and signs an access token for the user. shopCtx is
// optional; when nil the shop claims are omitted entirely. ttl overrides
// the configured default when positive.
func (s *Service) Issue(user *domain.User, shopCtx *domain.ShopContext, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	claims := Claims{
		UserID:      user.ID,
		IsSuperuser: user.IsSuperuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Login,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	if shopCtx != nil {
		claims.UserShopID = shopCtx.UserShopID
		claims.LastInvoiceID = shopCtx.LastInvoiceID
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and extracts the token data.
// Verification failures of any kind return ErrInvalidToken; a valid
// token without a user id returns ErrMissingUserID.
func (s *Service) Verify(tokenString string) (*domain.TokenData, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == 0 {
		return nil, ErrMissingUserID
	}

	return &domain.TokenData{
		UserID:        claims.UserID,
		IsSuperuser:   claims.IsSuperuser,
		UserShopID:    claims.UserShopID,
		LastInvoiceID: claims.LastInvoiceID,
	}, nil
}
