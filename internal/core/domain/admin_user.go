package domain

// AuthProvider identifies how an admin user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// AdminUser is a back-office operator account. PasswordHash is empty for
// OAuth-only accounts.
type AdminUser struct {
	UserID         string       `json:"userID"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"`
	AuditFields
}

// GoogleUserInfo mirrors the subset of Google's userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
