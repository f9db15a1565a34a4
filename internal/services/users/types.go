package users

import "time"

type NewUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Username    string     `json:"username,omitempty"`
	Email       string     `json:"email,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type LoginResponse struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Username    string     `json:"username,omitempty"`
	Email       string     `json:"email,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	AccessToken string     `json:"access_token"`
}

type AllUsersResponse struct {
	Users []UserResponse `json:"users"`
}
