package activities

import (
	"errors"
	"net/http"
)

var ErrTypeAndTitleRequired = errors.New("type and title are required")

var ErrorMap = map[error]int{
	ErrTypeAndTitleRequired: http.StatusBadRequest,
}
