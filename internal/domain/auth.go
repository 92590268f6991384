package domain

// ShopContext carries the contextual ids embedded into a token at login.
// Both fields are optional: a user without shops yields {nil, nil}, a shop
// without invoices yields a nil LastInvoiceID.
type ShopContext struct {
	UserShopID    *int64 `json:"user_shop_id"`
	LastInvoiceID *int64 `json:"last_invoice_id"`
}

// TokenData is the decoded view of a verified token payload. It exists
// only for the duration of request authorization.
type TokenData struct {
	UserID        int64
	IsSuperuser   bool
	UserShopID    *int64
	LastInvoiceID *int64
}

// AuthUser bundles the reloaded user with the contextual ids decoded from
// the token. The ids are request-scoped and never persisted; keeping them
// beside the entity instead of on it avoids confusing them with durable
// state.
type AuthUser struct {
	User          *User
	UserShopID    *int64
	LastInvoiceID *int64
}

// LoginRequest is the OAuth2 password-grant form accepted by the token
// endpoint.
type LoginRequest struct {
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
	GrantType string `form:"grant_type"`
}

// TokenResponse is the successful login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MeResponse is the protected /users/me response: the user plus the
// shop context that rode in on the token.
type MeResponse struct {
	UserResponse
	UserShopID    *int64 `json:"user_shop_id"`
	LastInvoiceID *int64 `json:"last_invoice_id"`
}
