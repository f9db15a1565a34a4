package watchlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDefaultCategory(t *testing.T) {
	for _, category := range DefaultCategories {
		require.True(t, IsDefaultCategory(category))
	}

	// Exact, case-sensitive match only
	require.False(t, IsDefaultCategory("movies"))
	require.False(t, IsDefaultCategory("MOVIES"))
	require.False(t, IsDefaultCategory("Podcasts"))
	require.False(t, IsDefaultCategory(""))
}

func TestDefaultStatus(t *testing.T) {
	require.Equal(t, StatusPlanToPlay, DefaultStatus(MediaTypeGames))
	require.Equal(t, StatusPlanToWatch, DefaultStatus(MediaTypeMovies))
	require.Equal(t, StatusPlanToWatch, DefaultStatus(MediaTypeAnime))
	require.Equal(t, StatusPlanToWatch, DefaultStatus(MediaTypeTVShows))
	require.Equal(t, StatusPlanToWatch, DefaultStatus(MediaTypeWebSeries))
}

func TestIsWatchlistStatus(t *testing.T) {
	require.True(t, IsWatchlistStatus(StatusPlanToWatch))
	require.True(t, IsWatchlistStatus(StatusCompleted))

	// Canonical casing required
	require.False(t, IsWatchlistStatus("plan to watch"))
	require.False(t, IsWatchlistStatus("completed"))
	require.False(t, IsWatchlistStatus("Finished Airing"))
	require.False(t, IsWatchlistStatus(""))
}

func TestMapToWatchlistStatus(t *testing.T) {
	cases := []struct {
		external  string
		mediaType string
		want      string
	}{
		// Watchlist statuses pass through
		{StatusWatching, MediaTypeAnime, StatusWatching},
		{StatusDropped, MediaTypeMovies, StatusDropped},

		// Anime vocabulary
		{"Finished Airing", MediaTypeAnime, StatusCompleted},
		{"Currently Airing", MediaTypeAnime, StatusWatching},
		{"airing", MediaTypeAnime, StatusWatching},
		{"ongoing", MediaTypeAnime, StatusWatching},
		{"Not yet aired", MediaTypeAnime, StatusPlanToWatch},

		// Movie/TV vocabulary
		{"Released", MediaTypeMovies, StatusCompleted},
		{"Ended", MediaTypeTVShows, StatusCompleted},
		{"Returning Series", MediaTypeTVShows, StatusWatching},
		{"Canceled", MediaTypeTVShows, StatusDropped},
		{"Cancelled", MediaTypeTVShows, StatusDropped},
		{"In Production", MediaTypeMovies, StatusPlanToWatch},
		{"Post Production", MediaTypeMovies, StatusPlanToWatch},
		{"Upcoming", MediaTypeMovies, StatusPlanToWatch},

		// "released" from a game catalog says nothing about progress
		{"Released", MediaTypeGames, StatusPlanToPlay},

		// Unknown values fall back to the media default
		{"garbage", MediaTypeMovies, StatusPlanToWatch},
		{"garbage", MediaTypeGames, StatusPlanToPlay},
		{"", MediaTypeAnime, StatusPlanToWatch},
		{"", MediaTypeGames, StatusPlanToPlay},
	}

	for _, tc := range cases {
		got := MapToWatchlistStatus(tc.external, tc.mediaType)
		require.Equal(t, tc.want, got, "MapToWatchlistStatus(%q, %q)", tc.external, tc.mediaType)
	}
}
