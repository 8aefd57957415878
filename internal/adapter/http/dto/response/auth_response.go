package response

import "evosystem/internal/domain/entities"

// LoginResponse signals the outcome through an application-level success flag
// in addition to the HTTP status, as required by the wire contract.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse exposes the stored password on purpose: the admin dashboard
// lists raw credentials in demo mode. See the User entity note.
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Password: u.Password}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
