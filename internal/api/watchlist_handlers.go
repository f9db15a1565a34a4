package api

import (
	"encoding/json"
	"net/http"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/auth"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/logx"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/activities"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
)

func (api *API) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	list, err := watchlist.GetWatchlist(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch watchlist from database")
		return
	}

	respondWithJSON(w, http.StatusOK, list)
}

func (api *API) GetWatchlistStats(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	stats, err := watchlist.GetStats(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute watchlist stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

func (api *API) AddItem(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	var req watchlist.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := watchlist.AddItem(api.Db, r.Context(), user.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error adding item to watchlist")
		return
	}

	activities.Record(api.Db, r.Context(), user.Id, activities.TypeWatchlistAdd, item.Title,
		map[string]any{"mediaType": item.Type})

	respondWithJSON(w, http.StatusCreated, item)
}

func (api *API) UpdateItem(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	itemId := r.PathValue("itemId")
	if itemId == "" {
		respondWithError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	var req watchlist.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	item, err := watchlist.UpdateItem(api.Db, r.Context(), user.Id, itemId, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error while updating item")
		return
	}

	activityType := activities.TypeWatchlistUpdate
	details := map[string]any{"mediaType": item.Type}
	if req.Status != nil {
		activityType = activities.TypeMediaStatusChange
		details["status"] = item.Status
	}
	activities.Record(api.Db, r.Context(), user.Id, activityType, item.Title, details)

	respondWithJSON(w, http.StatusOK, item)
}

func (api *API) RemoveItem(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	itemId := r.PathValue("itemId")
	if itemId == "" {
		respondWithError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	item, err := watchlist.RemoveItem(api.Db, r.Context(), user.Id, itemId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error while removing item")
		return
	}

	activities.Record(api.Db, r.Context(), user.Id, activities.TypeWatchlistRemove, item.Title,
		map[string]any{"mediaType": item.Type})

	respondWithJSON(w, http.StatusOK, item)
}

func (api *API) AssignItemToFolder(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	itemId := r.PathValue("itemId")
	if itemId == "" {
		respondWithError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	var req watchlist.AssignFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Folder == "" {
		respondWithError(w, http.StatusBadRequest, "Folder name is required")
		return
	}

	item, err := watchlist.AssignItemToFolder(api.Db, r.Context(), user.Id, itemId, req.Folder)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error while moving item")
		return
	}

	respondWithJSON(w, http.StatusOK, item)
}
