package models

// AdminUser mirrors the admin_users table.
type AdminUser struct {
	UserID         string  `json:"userID"` // Primary Key (UUID)
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PasswordHash   *string `json:"-"`
	AuthProvider   string  `json:"authProvider"`
	ProviderUserID *string `json:"-"`
	AuditFields
}
