package models

// TokenResponse represents the response after a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
	UserName    string `json:"user_name"`
}

// SignupResponse represents the response after user registration.
// No token is issued here; the caller logs in separately.
type SignupResponse struct {
	Message string `json:"message"`
}
