package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/api"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
	"github.com/stretchr/testify/require"
)

// fakeServer is a minimal in-memory stand-in for the watchlist endpoints the
// client talks to.
type fakeServer struct {
	list         watchlist.WatchlistResponse
	refreshCount int
	failAdd      bool
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /watchlist", func(w http.ResponseWriter, r *http.Request) {
		f.refreshCount++
		json.NewEncoder(w).Encode(f.list)
	})

	mux.HandleFunc("POST /watchlist/items", func(w http.ResponseWriter, r *http.Request) {
		if f.failAdd {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(api.ErrorResponse{
				StatusCode:   http.StatusConflict,
				ErrorMessage: "Item already in the watchlist",
			})
			return
		}

		var req watchlist.AddItemRequest
		json.NewDecoder(r.Body).Decode(&req)

		item := watchlist.Item{Id: "1", Title: req.Title, Type: req.Type}
		f.list.Items = append(f.list.Items, item)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(item)
	})

	return mux
}

func newTestClient(t *testing.T) (*Client, *fakeServer) {
	t.Helper()

	fake := &fakeServer{
		list: watchlist.WatchlistResponse{
			Id:            "w1",
			UserId:        "u1",
			Items:         []watchlist.Item{},
			CustomFolders: []watchlist.CustomFolder{},
		},
	}
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	return New(server.URL, "test-token"), fake
}

func TestSnapshotBeforeFirstRefresh(t *testing.T) {
	c, _ := newTestClient(t)

	_, ok := c.Snapshot()
	require.False(t, ok)
}

func TestRefreshPopulatesSnapshot(t *testing.T) {
	c, _ := newTestClient(t)

	list, err := c.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", list.UserId)

	snapshot, ok := c.Snapshot()
	require.True(t, ok)
	require.Equal(t, list, snapshot)
}

func TestMutationRefreshesSnapshot(t *testing.T) {
	c, fake := newTestClient(t)

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, fake.refreshCount)

	item, err := c.AddItem(context.Background(), watchlist.AddItemRequest{
		Title: "Dune",
		Type:  watchlist.MediaTypeMovies,
	})
	require.NoError(t, err)
	require.Equal(t, "Dune", item.Title)

	// The mutation triggered a re-fetch and the snapshot carries the new item
	require.Equal(t, 2, fake.refreshCount)
	snapshot, ok := c.Snapshot()
	require.True(t, ok)
	require.Len(t, snapshot.Items, 1)
}

func TestFailedMutationStillRefreshes(t *testing.T) {
	c, fake := newTestClient(t)

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	fake.failAdd = true
	_, err = c.AddItem(context.Background(), watchlist.AddItemRequest{
		Title: "Dune",
		Type:  watchlist.MediaTypeMovies,
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "Item already in the watchlist", apiErr.Message)

	// Even the failed mutation re-fetched, reverting to server truth
	require.Equal(t, 2, fake.refreshCount)
	snapshot, ok := c.Snapshot()
	require.True(t, ok)
	require.Empty(t, snapshot.Items)
}
