package dto

// LoginRequest is the credentials payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued by the backend.
type LoginResponse struct {
	Envelope
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignupRequest is the registration payload for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Birthday string `json:"birthday"` // ISO date (YYYY-MM-DD)
	Gender   string `json:"gender"`
	Role     string `json:"role"` // "student" or "tutor"
}

// SignupResponse acknowledges a registration.
type SignupResponse struct {
	Envelope
	UserID string `json:"user_id"`
}

// User is the profile returned by GET /user/me.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	ImagePath string `json:"image_path"`
}
