package watchlist

import (
	"errors"
	"net/http"
)

var (
	ErrWatchlistNotFound  = errors.New("watchlist not found")
	ErrItemNotFound       = errors.New("item not found in watchlist")
	ErrFolderNotFound     = errors.New("folder not found")
	ErrDuplicateItem      = errors.New("item already exists in watchlist")
	ErrDuplicateFolder    = errors.New("folder with this name already exists")
	ErrReservedFolderName = errors.New("folder name is reserved for a default category")
	ErrInvalidMediaType   = errors.New("invalid media type")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidRating      = errors.New("rating must be between 0 and 10")
	ErrTooManyFolders     = errors.New("an item can be tagged into at most one custom folder")
)

var ErrorMap = map[error]int{
	ErrWatchlistNotFound:  http.StatusNotFound,
	ErrItemNotFound:       http.StatusNotFound,
	ErrFolderNotFound:     http.StatusNotFound,
	ErrDuplicateItem:      http.StatusConflict,
	ErrDuplicateFolder:    http.StatusConflict,
	ErrReservedFolderName: http.StatusBadRequest,
	ErrInvalidMediaType:   http.StatusBadRequest,
	ErrTitleRequired:      http.StatusBadRequest,
	ErrInvalidRating:      http.StatusBadRequest,
	ErrTooManyFolders:     http.StatusBadRequest,
}
