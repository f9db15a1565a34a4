package tests

import (
	"net/http"
	"testing"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
	"github.com/stretchr/testify/require"
)

func addTestItem(t *testing.T, token string, req watchlist.AddItemRequest) watchlist.Item {
	t.Helper()
	resp := doRequest(t, http.MethodPost, "/watchlist/items", token, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[watchlist.Item](t, resp)
}

func addTestFolder(t *testing.T, token, name string) watchlist.CustomFolder {
	t.Helper()
	resp := doRequest(t, http.MethodPost, "/watchlist/folders", token, watchlist.CreateFolderRequest{Name: name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[watchlist.CustomFolder](t, resp)
}

func TestCreateFolder(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	folder := addTestFolder(t, token, "Epics")
	require.NotEmpty(t, folder.Id)
	require.Equal(t, "Epics", folder.Name)
	require.False(t, folder.IsShared)

	// Duplicate names conflict
	resp := doRequest(t, http.MethodPost, "/watchlist/folders", token, watchlist.CreateFolderRequest{Name: "Epics"})
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateFolderReservedNames(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	for _, category := range watchlist.DefaultCategories {
		resp := doRequest(t, http.MethodPost, "/watchlist/folders", token, watchlist.CreateFolderRequest{Name: category})
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "category %q must be reserved", category)
	}

	// The reservation is a case-sensitive exact match
	resp := doRequest(t, http.MethodPost, "/watchlist/folders", token, watchlist.CreateFolderRequest{Name: "movies"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAssignItemToFolder(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	item := addTestItem(t, token, watchlist.AddItemRequest{Title: "Dune", Type: watchlist.MediaTypeMovies})
	addTestFolder(t, token, "Favorites")
	addTestFolder(t, token, "Rewatch")

	// Tag into a custom folder
	resp := doRequest(t, http.MethodPost, "/watchlist/items/"+item.Id+"/folder", token,
		watchlist.AssignFolderRequest{Folder: "Favorites"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tagged := decodeBody[watchlist.Item](t, resp)
	require.Equal(t, []string{"Favorites"}, tagged.Folders)

	// Moving to another custom folder replaces the tag, never accumulates
	resp = doRequest(t, http.MethodPost, "/watchlist/items/"+item.Id+"/folder", token,
		watchlist.AssignFolderRequest{Folder: "Rewatch"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tagged = decodeBody[watchlist.Item](t, resp)
	require.Equal(t, []string{"Rewatch"}, tagged.Folders)

	// Assigning to a default category clears the custom tag
	resp = doRequest(t, http.MethodPost, "/watchlist/items/"+item.Id+"/folder", token,
		watchlist.AssignFolderRequest{Folder: watchlist.MediaTypeMovies})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tagged = decodeBody[watchlist.Item](t, resp)
	require.Empty(t, tagged.Folders)

	// Unknown folders are rejected
	resp = doRequest(t, http.MethodPost, "/watchlist/items/"+item.Id+"/folder", token,
		watchlist.AssignFolderRequest{Folder: "Nope"})
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRenameFolderRetagsItems(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	item := addTestItem(t, token, watchlist.AddItemRequest{Title: "Dune", Type: watchlist.MediaTypeMovies})
	folder := addTestFolder(t, token, "Epics")

	resp := doRequest(t, http.MethodPost, "/watchlist/items/"+item.Id+"/folder", token,
		watchlist.AssignFolderRequest{Folder: "Epics"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodPut, "/watchlist/folders/"+folder.Id, token,
		watchlist.RenameFolderRequest{Name: "Sagas"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	renamed := decodeBody[watchlist.CustomFolder](t, resp)
	require.Equal(t, "Sagas", renamed.Name)

	resp = doRequest(t, http.MethodGet, "/watchlist", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[watchlist.WatchlistResponse](t, resp)
	require.Len(t, list.Items, 1)
	require.Equal(t, []string{"Sagas"}, list.Items[0].Folders)

	// Renaming onto a reserved name fails
	resp = doRequest(t, http.MethodPut, "/watchlist/folders/"+folder.Id, token,
		watchlist.RenameFolderRequest{Name: watchlist.MediaTypeAnime})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Scenario: add an item, tag it into a new folder, then delete the folder.
// The item must survive with no tag, still grouped under its media type.
func TestDeleteFolderUntagsItems(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	item := addTestItem(t, token, watchlist.AddItemRequest{Title: "Dune", Type: watchlist.MediaTypeMovies})
	require.Equal(t, watchlist.StatusPlanToWatch, item.Status)

	folder := addTestFolder(t, token, "Epics")

	resp := doRequest(t, http.MethodPost, "/watchlist/items/"+item.Id+"/folder", token,
		watchlist.AssignFolderRequest{Folder: "Epics"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodDelete, "/watchlist/folders/"+folder.Id, token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, "/watchlist", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody[watchlist.WatchlistResponse](t, resp)

	require.Empty(t, list.CustomFolders)
	require.Len(t, list.Items, 1)
	require.Equal(t, "Dune", list.Items[0].Title)
	require.Empty(t, list.Items[0].Folders)
	require.Equal(t, watchlist.MediaTypeMovies, list.Items[0].Type)
}

func TestAddItemWithFolderTags(t *testing.T) {
	resetDB(t)
	_, token := addUser(t, defaultTestUser("alice"))

	addTestFolder(t, token, "Favorites")
	addTestFolder(t, token, "Rewatch")

	// Default category names in the tag list are implicit membership and dropped
	item := addTestItem(t, token, watchlist.AddItemRequest{
		Title:   "Dune",
		Type:    watchlist.MediaTypeMovies,
		Folders: []string{watchlist.MediaTypeMovies, "Favorites"},
	})
	require.Equal(t, []string{"Favorites"}, item.Folders)

	// More than one custom tag violates the invariant
	resp := doRequest(t, http.MethodPost, "/watchlist/items", token, watchlist.AddItemRequest{
		Title:   "Arrival",
		Type:    watchlist.MediaTypeMovies,
		Folders: []string{"Favorites", "Rewatch"},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
