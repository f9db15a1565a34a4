package watchlist

import "time"

type Item struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Rating      float64   `json:"rating"`
	Progress    Progress  `json:"progress"`
	Poster      string    `json:"poster"`
	ReleaseDate string    `json:"releaseDate"`
	Genre       []string  `json:"genre"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	Folders     []string  `json:"folders"`
	AddedDate   time.Time `json:"addedDate"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type CustomFolder struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	IsShared    bool      `json:"isShared"`
	ShareUrl    string    `json:"shareUrl,omitempty"`
	CreatedDate time.Time `json:"createdDate"`
}

type WatchlistResponse struct {
	Id            string         `json:"id"`
	UserId        string         `json:"userId"`
	Items         []Item         `json:"items"`
	CustomFolders []CustomFolder `json:"customFolders"`
}

type AddItemRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Status      string   `json:"status,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Progress    Progress `json:"progress,omitempty"`
	Poster      string   `json:"poster,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Genre       []string `json:"genre,omitempty"`
	Description string   `json:"description,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Folders     []string `json:"folders,omitempty"`
}

// UpdateItemRequest is a partial patch; nil fields are left untouched. The
// media type is fixed at creation and deliberately has no field here.
type UpdateItemRequest struct {
	Title       *string   `json:"title,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Progress    *Progress `json:"progress,omitempty"`
	Poster      *string   `json:"poster,omitempty"`
	ReleaseDate *string   `json:"releaseDate,omitempty"`
	Genre       *[]string `json:"genre,omitempty"`
	Description *string   `json:"description,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Folders     *[]string `json:"folders,omitempty"`
}

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type RenameFolderRequest struct {
	Name string `json:"name"`
}

type AssignFolderRequest struct {
	Folder string `json:"folder"`
}

type ShareFolderResponse struct {
	ShareUrl string `json:"shareUrl"`
}

type StatsResponse struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"byStatus"`
	ByType        map[string]int `json:"byType"`
	AverageRating float64        `json:"averageRating"`
}
