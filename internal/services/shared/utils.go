package shared

import (
	"errors"
	"net/http"
)

var (
	ErrOwnerRequired      = errors.New("user id is required for sharing default folders")
	ErrOwnerNotFound      = errors.New("watchlist not found for this user")
	ErrNotSharedOrMissing = errors.New("shared folder not found or no longer shared")
)

var ErrorMap = map[error]int{
	ErrOwnerRequired:      http.StatusBadRequest,
	ErrOwnerNotFound:      http.StatusNotFound,
	ErrNotSharedOrMissing: http.StatusNotFound,
}
