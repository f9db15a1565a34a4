package watchlist

import "strings"

// The five default categories every item belongs to through its media type.
// Order is fixed and drives tab ordering on derived views.
var DefaultCategories = []string{
	MediaTypeMovies,
	MediaTypeTVShows,
	MediaTypeWebSeries,
	MediaTypeAnime,
	MediaTypeGames,
}

const (
	MediaTypeMovies    = "Movies"
	MediaTypeTVShows   = "TV Shows"
	MediaTypeWebSeries = "Web Series"
	MediaTypeAnime     = "Anime"
	MediaTypeGames     = "Games"
)

const (
	StatusPlanToWatch = "Plan to Watch"
	StatusPlanToPlay  = "Plan to Play"
	StatusWatching    = "Watching"
	StatusPlaying     = "Playing"
	StatusOnHold      = "On Hold"
	StatusCompleted   = "Completed"
	StatusDropped     = "Dropped"
)

var watchlistStatuses = map[string]string{
	strings.ToLower(StatusPlanToWatch): StatusPlanToWatch,
	strings.ToLower(StatusPlanToPlay):  StatusPlanToPlay,
	strings.ToLower(StatusWatching):    StatusWatching,
	strings.ToLower(StatusPlaying):     StatusPlaying,
	strings.ToLower(StatusOnHold):      StatusOnHold,
	strings.ToLower(StatusCompleted):   StatusCompleted,
	strings.ToLower(StatusDropped):     StatusDropped,
}

// External vocabulary from metadata providers (Jikan, TMDB, game catalogs)
// mapped onto the fixed watchlist status set. Keys are lower-cased. An empty
// value means "use the media type's default status".
var externalStatusMap = map[string]string{
	// Anime statuses from Jikan
	"finished airing":  StatusCompleted,
	"currently airing": StatusWatching,
	"airing":           StatusWatching,
	"ongoing":          StatusWatching,
	"not yet aired":    "",

	// Movie/TV statuses from TMDB
	"released":         StatusCompleted,
	"ended":            StatusCompleted,
	"returning series": StatusWatching,
	"canceled":         StatusDropped,
	"cancelled":        StatusDropped,
	"in production":    "",
	"post production":  "",
	"upcoming":         "",
}

func IsDefaultCategory(name string) bool {
	for _, category := range DefaultCategories {
		if name == category {
			return true
		}
	}
	return false
}

func IsValidMediaType(mediaType string) bool {
	return IsDefaultCategory(mediaType)
}

// IsWatchlistStatus reports whether s is one of the fixed watchlist statuses
// (exact match).
func IsWatchlistStatus(s string) bool {
	mapped, ok := watchlistStatuses[strings.ToLower(s)]
	return ok && mapped == s
}

// DefaultStatus returns the initial status for a media type: Plan to Play for
// games, Plan to Watch for everything else.
func DefaultStatus(mediaType string) string {
	if mediaType == MediaTypeGames {
		return StatusPlanToPlay
	}
	return StatusPlanToWatch
}

// MapToWatchlistStatus normalizes a loosely-typed status coming from an
// external metadata source onto the fixed watchlist status set. Watchlist
// statuses pass through unchanged, known external synonyms map through the
// fixed table and anything unrecognized falls back to the media type default.
func MapToWatchlistStatus(externalStatus, mediaType string) string {
	if externalStatus == "" {
		return DefaultStatus(mediaType)
	}

	key := strings.ToLower(externalStatus)

	if status, ok := watchlistStatuses[key]; ok {
		return status
	}

	// Game catalogs use "released" for anything already out, which says
	// nothing about the player's progress
	if key == "released" && mediaType == MediaTypeGames {
		return DefaultStatus(mediaType)
	}

	if status, ok := externalStatusMap[key]; ok {
		if status == "" {
			return DefaultStatus(mediaType)
		}
		return status
	}

	return DefaultStatus(mediaType)
}
