package dto

// LoginRequest is the body of the back-office password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// ExchangeCodeRequest is the body of the Google sign-in code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
