package tests

import (
	"net/http"
	"testing"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
	"github.com/stretchr/testify/require"
)

func TestGetWatchlistCreatesEmptyStore(t *testing.T) {
	resetDB(t)
	user, token := addUser(t, defaultTestUser("alice"))

	resp := doRequest(t, http.MethodGet, "/watchlist", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[watchlist.WatchlistResponse](t, resp)

	require.Equal(t, user.Id, list.UserId)
	require.NotNil(t, list.Items)
	require.Empty(t, list.Items)
	require.NotNil(t, list.CustomFolders)
	require.Empty(t, list.CustomFolders)
}

func TestAddItemDefaults(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	resp := doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "Dune",
		Type:  watchlist.MediaTypeMovies,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decodeBody[watchlist.Item](t, resp)

	require.NotEmpty(t, item.Id)
	require.Equal(t, "Dune", item.Title)
	require.Equal(t, watchlist.MediaTypeMovies, item.Type)
	require.Equal(t, watchlist.StatusPlanToWatch, item.Status)
	require.Empty(t, item.Folders)

	// Games default to Plan to Play
	resp = doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "Hades",
		Type:  watchlist.MediaTypeGames,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	game := decodeBody[watchlist.Item](t, resp)
	require.Equal(t, watchlist.StatusPlanToPlay, game.Status)
}

func TestAddItemValidation(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	cases := []struct {
		name string
		req  watchlist.AddItemRequest
	}{
		{name: "missing title", req: watchlist.AddItemRequest{Type: watchlist.MediaTypeMovies}},
		{name: "invalid media type", req: watchlist.AddItemRequest{Title: "Dune", Type: "Podcasts"}},
		{name: "rating out of range", req: watchlist.AddItemRequest{Title: "Dune", Type: watchlist.MediaTypeMovies, Rating: 11}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, http.MethodPost, "/watchlist/items", token, tc.req)
			resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAddItemDuplicatePerMediaType(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	resp := doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "X",
		Type:  watchlist.MediaTypeGames,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same title and type conflicts
	resp = doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "X",
		Type:  watchlist.MediaTypeGames,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// Same title under another media type is fine
	resp = doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "X",
		Type:  watchlist.MediaTypeMovies,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestUpdateItemNormalizesExternalStatus(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	resp := doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "Frieren",
		Type:  watchlist.MediaTypeAnime,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decodeBody[watchlist.Item](t, resp)

	finished := "Finished Airing"
	resp = doRequest(t, http.MethodPut, "/watchlist/items/"+item.Id, token, watchlist.UpdateItemRequest{
		Status: &finished,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[watchlist.Item](t, resp)
	require.Equal(t, watchlist.StatusCompleted, updated.Status)

	notYetAired := "Not yet aired"
	resp = doRequest(t, http.MethodPut, "/watchlist/items/"+item.Id, token, watchlist.UpdateItemRequest{
		Status: &notYetAired,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated = decodeBody[watchlist.Item](t, resp)
	require.Equal(t, watchlist.StatusPlanToWatch, updated.Status)
}

func TestUpdateItemProgressForms(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	resp := doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "One Piece",
		Type:  watchlist.MediaTypeAnime,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decodeBody[watchlist.Item](t, resp)

	// Progress accepts the "12/24" string form
	resp = doRequest(t, http.MethodPut, "/watchlist/items/"+item.Id, token, map[string]any{
		"progress": "12/24",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[watchlist.Item](t, resp)
	require.Equal(t, watchlist.Progress{Current: 12, Total: 24}, updated.Progress)

	// And the "Completed" sentinel
	resp = doRequest(t, http.MethodPut, "/watchlist/items/"+item.Id, token, map[string]any{
		"progress": "Completed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated = decodeBody[watchlist.Item](t, resp)
	require.Equal(t, watchlist.FullProgress(), updated.Progress)
}

func TestRemoveItem(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	resp := doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title: "Dune",
		Type:  watchlist.MediaTypeMovies,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	item := decodeBody[watchlist.Item](t, resp)

	resp = doRequest(t, http.MethodDelete, "/watchlist/items/"+item.Id, token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, "/watchlist", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[watchlist.WatchlistResponse](t, resp)
	require.Empty(t, list.Items)

	resp = doRequest(t, http.MethodDelete, "/watchlist/items/"+item.Id, token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWatchlistStats(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	completed := watchlist.StatusCompleted
	seed := []watchlist.AddItemRequest{
		{Title: "Dune", Type: watchlist.MediaTypeMovies, Status: completed, Rating: 8},
		{Title: "Arrival", Type: watchlist.MediaTypeMovies, Status: completed, Rating: 6},
		{Title: "Hades", Type: watchlist.MediaTypeGames},
	}
	for _, req := range seed {
		resp := doRequest(t, http.MethodPost, "/watchlist/items", token, req)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, http.MethodGet, "/watchlist/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decodeBody[watchlist.StatsResponse](t, resp)

	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.ByStatus[watchlist.StatusCompleted])
	require.Equal(t, 1, stats.ByStatus[watchlist.StatusPlanToPlay])
	require.Equal(t, 2, stats.ByType[watchlist.MediaTypeMovies])
	require.Equal(t, 1, stats.ByType[watchlist.MediaTypeGames])
	require.InDelta(t, 7.0, stats.AverageRating, 0.001)
}

func TestWatchlistsAreIsolatedPerUser(t *testing.T) {
	resetDB(t)
	_, tokenAlice := addUser(t, defaultTestUser("alice"))
	_, tokenBob := addUser(t, defaultTestUser("bob"))

	resp := doRequest(t, http.MethodPost, "/watchlist/items", tokenAlice, watchlist.AddItemRequest{
		Title: "Dune",
		Type:  watchlist.MediaTypeMovies,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, "/watchlist", tokenBob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[watchlist.WatchlistResponse](t, resp)
	require.Empty(t, list.Items)
}
