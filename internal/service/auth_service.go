package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"auth-service/internal/auth"
	"auth-service/internal/domain"
	"auth-service/internal/metrics"
	"auth-service/internal/token"
)

// Rejection reasons surfaced by Login and CurrentUser. The transport
// layer maps these to status codes exactly once.
var (
	// ErrInvalidCredentials is returned for a bad username or password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when the user referenced by a valid
	// token no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserInactive is returned for a disabled account.
	ErrUserInactive = errors.New("inactive user")
)

// UserStore is the user persistence surface the service needs.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByIDWithShops(ctx context.Context, id int64) (*domain.User, error)
}

// InvoiceStore is the invoice persistence surface the service needs.
type InvoiceStore interface {
	FindLatestByUserAndShop(ctx context.Context, userID, shopID int64) (*domain.Invoice, error)
}

// TokenIssuer issues and verifies access tokens.
type TokenIssuer interface {
	Issue(user *domain.User, shopCtx *domain.ShopContext, ttl time.Duration) (string, error)
	Verify(tokenString string) (*domain.TokenData, error)
}

// AuthService handles credential verification, token issuance, and
// current-user resolution.
type AuthService struct {
	users    UserStore
	invoices InvoiceStore
	hasher   *auth.PasswordHasher
	tokens   TokenIssuer
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewAuthService creates a new AuthService. metrics may be nil.
func NewAuthService(users UserStore, invoices InvoiceStore, hasher *auth.PasswordHasher, tokens TokenIssuer, logger *zap.Logger, m *metrics.Metrics) *AuthService {
	return &AuthService{
		users:    users,
		invoices: invoices,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
		metrics:  m,
	}
}

// Login verifies the credentials and issues an access token carrying the
// user's shop context. Unknown login and wrong password both return
// ErrInvalidCredentials; an inactive account is rejected distinctly, and
// only after the password verified.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	s.logger.Debug("Login started", zap.String("user.login", username))

	user, err := s.users.FindByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordLoginFailure("invalid_credentials")
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login failed to load user", zap.Error(err))
		return "", err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		s.recordLoginFailure("invalid_credentials")
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		s.recordLoginFailure("inactive_user")
		return "", ErrUserInactive
	}

	shopCtx, err := s.ShopContext(ctx, user.ID)
	if err != nil {
		s.logger.Error("Login failed to resolve shop context", zap.Error(err))
		return "", err
	}

	signed, err := s.tokens.Issue(user, shopCtx, 0)
	if err != nil {
		s.logger.Error("Login failed to issue token", zap.Error(err))
		return "", err
	}

	if s.metrics != nil {
		s.metrics.RecordLogin()
		s.metrics.RecordTokenIssued()
	}

	s.logger.Info("User logged in", zap.Int64("enduser.id", user.ID))
	return signed, nil
}

// ShopContext resolves the user's shop and most recent invoice. A user
// without shops yields a context with both ids nil; the first associated
// shop is authoritative when there are several.
func (s *AuthService) ShopContext(ctx context.Context, userID int64) (*domain.ShopContext, error) {
	user, err := s.users.FindByIDWithShops(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.ShopContext{}, nil
		}
		return nil, err
	}
	if len(user.Shops) == 0 {
		return &domain.ShopContext{}, nil
	}

	shop := user.Shops[0]
	shopCtx := &domain.ShopContext{UserShopID: &shop.ID}

	invoice, err := s.invoices.FindLatestByUserAndShop(ctx, userID, shop.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shopCtx, nil
		}
		return nil, err
	}
	shopCtx.LastInvoiceID = &invoice.ID

	return shopCtx, nil
}

// CurrentUser verifies a bearer token and reloads its user. Token
// verification failures and a missing user id come back as the token
// package's errors; a vanished user maps to ErrUserNotFound and a
// disabled one to ErrUserInactive. The shop ids decoded from the token
// are attached to the result for the request's duration only.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*domain.AuthUser, error) {
	data, err := s.tokens.Verify(tokenString)
	if err != nil {
		s.recordTokenRejection("invalid_token")
		return nil, err
	}

	user, err := s.users.FindByID(ctx, data.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordTokenRejection("user_not_found")
			return nil, ErrUserNotFound
		}
		s.logger.Error("CurrentUser failed to load user", zap.Error(err))
		return nil, err
	}

	if !user.IsActive {
		s.recordTokenRejection("inactive_user")
		return nil, ErrUserInactive
	}

	return &domain.AuthUser{
		User:          user,
		UserShopID:    data.UserShopID,
		LastInvoiceID: data.LastInvoiceID,
	}, nil
}

// CreateUser creates a user with a freshly hashed password.
func (s *AuthService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	existing, err := s.users.FindByLogin(ctx, req.Login)
	if err == nil && existing != nil {
		return nil, ErrLoginTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("CreateUser failed to check existing user", zap.Error(err))
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("CreateUser failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Login:          req.Login,
		HashedPassword: digest,
		IsActive:       true,
		IsSuperuser:    req.IsSuperuser,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("CreateUser failed to create user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User created", zap.Int64("enduser.id", user.ID))
	return user, nil
}

// ErrLoginTaken is returned when creating a user whose login exists.
var ErrLoginTaken = errors.New("login already taken")

// IsTokenError reports whether err is a token verification failure that
// should surface as the generic unauthorized rejection.
func IsTokenError(err error) bool {
	return errors.Is(err, token.ErrInvalidToken) || errors.Is(err, token.ErrMissingUserID)
}

func (s *AuthService) recordLoginFailure(reason string) {
	if s.metrics != nil {
		s.metrics.RecordLoginFailure(reason)
	}
}

func (s *AuthService) recordTokenRejection(reason string) {
	if s.metrics != nil {
		s.metrics.RecordTokenRejection(reason)
	}
}
