package activities

import (
	"time"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
)

// Activity type vocabulary shared with the client.
const (
	TypeWatchlistAdd      = "watchlist_add"
	TypeWatchlistRemove   = "watchlist_remove"
	TypeWatchlistUpdate   = "watchlist_update"
	TypeFolderCreate      = "folder_create"
	TypeFolderDelete      = "folder_delete"
	TypeFolderRename      = "folder_rename"
	TypeFolderShare       = "folder_share"
	TypeMediaStatusChange = "media_status_change"
	TypeLogin             = "login"
	TypeAccountCreate     = "account_create"
)

type Activity struct {
	Id        string         `json:"id"`
	UserId    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}

type NewActivityRequest struct {
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Details map[string]any `json:"details,omitempty"`
}

type StatsResponse struct {
	Total  int                         `json:"total"`
	ByType []mongodb.ActivityTypeCount `json:"byType"`
}

type ClearResponse struct {
	Deleted int64 `json:"deleted"`
}
