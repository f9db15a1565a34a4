package shared

import (
	"time"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
)

// SharedItem is the public projection of a watchlist item. Free-form notes
// stay private and are never part of it.
type SharedItem struct {
	Id          string             `json:"id"`
	Title       string             `json:"title"`
	Type        string             `json:"type"`
	Status      string             `json:"status"`
	Rating      float64            `json:"rating"`
	Progress    watchlist.Progress `json:"progress"`
	Poster      string             `json:"poster"`
	ReleaseDate string             `json:"releaseDate"`
	Genre       []string           `json:"genre"`
	Description string             `json:"description"`
	AddedDate   time.Time          `json:"addedDate"`
}

type FolderInfo struct {
	Name        string     `json:"name"`
	IsShared    bool       `json:"isShared"`
	Type        string     `json:"type"` // "default" or "custom"
	CreatedDate *time.Time `json:"createdDate,omitempty"`
}

type OwnerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type SharedViewResponse struct {
	Folder     FolderInfo   `json:"folder"`
	Items      []SharedItem `json:"items"`
	User       OwnerInfo    `json:"user"`
	SharedDate time.Time    `json:"sharedDate"`
}
