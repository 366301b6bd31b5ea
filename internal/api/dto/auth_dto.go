package dto

// SignupRequest payload for new accounts. All five fields are required.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest payload for login. Role is part of the lookup key.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserView is the redacted user projection returned on login. It never
// carries the password hash.
type UserView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
