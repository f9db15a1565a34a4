package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/api"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/shared"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
)

// APIError carries the structured failure body returned by the server, so
// callers can render a message without inspecting raw responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client is a typed client over the watchlist HTTP surface. It keeps a local
// snapshot of the owner's store and re-fetches it after every mutation, on
// success and on failure alike, so the snapshot never drifts from server
// truth. Mutations are fail-fast; retries are the caller's decision.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	mu       sync.RWMutex
	snapshot watchlist.WatchlistResponse
	hasData  bool
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: http.DefaultClient,
	}
}

// Snapshot returns the last fetched store. The second return is false before
// the first successful Refresh.
func (c *Client) Snapshot() (watchlist.WatchlistResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot, c.hasData
}

// Refresh re-fetches the whole store and replaces the local snapshot.
func (c *Client) Refresh(ctx context.Context) (watchlist.WatchlistResponse, error) {
	var list watchlist.WatchlistResponse
	if err := c.do(ctx, http.MethodGet, "/watchlist", nil, &list); err != nil {
		return watchlist.WatchlistResponse{}, err
	}

	c.mu.Lock()
	c.snapshot = list
	c.hasData = true
	c.mu.Unlock()

	return list, nil
}

func (c *Client) GetStats(ctx context.Context) (watchlist.StatsResponse, error) {
	var stats watchlist.StatsResponse
	err := c.do(ctx, http.MethodGet, "/watchlist/stats", nil, &stats)
	return stats, err
}

func (c *Client) AddItem(ctx context.Context, req watchlist.AddItemRequest) (watchlist.Item, error) {
	var item watchlist.Item
	err := c.do(ctx, http.MethodPost, "/watchlist/items", req, &item)
	return item, c.syncAfterMutation(ctx, err)
}

func (c *Client) UpdateItem(ctx context.Context, itemId string, req watchlist.UpdateItemRequest) (watchlist.Item, error) {
	var item watchlist.Item
	err := c.do(ctx, http.MethodPut, "/watchlist/items/"+itemId, req, &item)
	return item, c.syncAfterMutation(ctx, err)
}

func (c *Client) RemoveItem(ctx context.Context, itemId string) (watchlist.Item, error) {
	var item watchlist.Item
	err := c.do(ctx, http.MethodDelete, "/watchlist/items/"+itemId, nil, &item)
	return item, c.syncAfterMutation(ctx, err)
}

func (c *Client) AssignItemToFolder(ctx context.Context, itemId, folder string) (watchlist.Item, error) {
	var item watchlist.Item
	req := watchlist.AssignFolderRequest{Folder: folder}
	err := c.do(ctx, http.MethodPost, "/watchlist/items/"+itemId+"/folder", req, &item)
	return item, c.syncAfterMutation(ctx, err)
}

func (c *Client) CreateFolder(ctx context.Context, name string) (watchlist.CustomFolder, error) {
	var folder watchlist.CustomFolder
	req := watchlist.CreateFolderRequest{Name: name}
	err := c.do(ctx, http.MethodPost, "/watchlist/folders", req, &folder)
	return folder, c.syncAfterMutation(ctx, err)
}

func (c *Client) RenameFolder(ctx context.Context, folderId, name string) (watchlist.CustomFolder, error) {
	var folder watchlist.CustomFolder
	req := watchlist.RenameFolderRequest{Name: name}
	err := c.do(ctx, http.MethodPut, "/watchlist/folders/"+folderId, req, &folder)
	return folder, c.syncAfterMutation(ctx, err)
}

func (c *Client) DeleteFolder(ctx context.Context, folderId string) error {
	err := c.do(ctx, http.MethodDelete, "/watchlist/folders/"+folderId, nil, nil)
	return c.syncAfterMutation(ctx, err)
}

func (c *Client) ShareFolder(ctx context.Context, folderKey string) (string, error) {
	var resp watchlist.ShareFolderResponse
	err := c.do(ctx, http.MethodPost, "/watchlist/folders/"+folderKey+"/share", nil, &resp)
	return resp.ShareUrl, c.syncAfterMutation(ctx, err)
}

// GetSharedView reads a public shared folder; no token is attached since the
// endpoint is anonymous.
func (c *Client) GetSharedView(ctx context.Context, folderKey, ownerUserId string) (shared.SharedViewResponse, error) {
	path := "/shared/" + folderKey
	if ownerUserId != "" {
		path += "/" + ownerUserId
	}
	var view shared.SharedViewResponse
	err := c.do(ctx, http.MethodGet, path, nil, &view)
	return view, err
}

// syncAfterMutation re-establishes the snapshot after a mutation. When the
// mutation failed, the refresh reverts any local assumptions to server truth
// and the original error is returned; a refresh failure on that path is
// ignored. When the mutation succeeded, a refresh failure is surfaced, since
// the snapshot is then known stale.
func (c *Client) syncAfterMutation(ctx context.Context, mutationErr error) error {
	_, refreshErr := c.Refresh(ctx)
	if mutationErr != nil {
		return mutationErr
	}
	return refreshErr
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.ErrorMessage != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.ErrorMessage}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
