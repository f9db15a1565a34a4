package users

import (
	"errors"
	"net/http"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrCredentialsAlreadyExists = errors.New("username or email already registered")
	ErrInvalidEmail             = errors.New("invalid email format")
	ErrInvalidUsername          = errors.New("username can only contain letters, numbers, '-' and '_'")
	ErrInvalidUsernameSize      = errors.New("username must have at least 3 characters")
	ErrInvalidPassword          = errors.New("password must have at least 6 characters")
)

var ErrorMap = map[error]int{
	ErrUserNotFound:             http.StatusNotFound,
	ErrCredentialsAlreadyExists: http.StatusConflict,
	ErrInvalidEmail:             http.StatusBadRequest,
	ErrInvalidUsername:          http.StatusBadRequest,
	ErrInvalidUsernameSize:      http.StatusBadRequest,
	ErrInvalidPassword:          http.StatusBadRequest,
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
