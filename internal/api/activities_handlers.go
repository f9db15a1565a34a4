package api

import (
	"encoding/json"
	"net/http"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/auth"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/generics"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/logx"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/activities"
)

func (api *API) LogActivity(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	var req activities.NewActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	activity, err := activities.LogActivity(api.Db, r.Context(), user.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(activities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error logging activity")
		return
	}

	respondWithJSON(w, http.StatusCreated, activity)
}

func (api *API) GetActivities(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	size := generics.StringToInt(r.URL.Query().Get("size"))
	page := generics.StringToInt(r.URL.Query().Get("page"))
	// "limit" is accepted as an alias kept for older clients
	if size == 0 {
		size = generics.StringToInt(r.URL.Query().Get("limit"))
	}

	pageOfActivities, err := activities.GetPageOfActivities(api.Db, r.Context(), user.Id, size, page)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch activities from database")
		return
	}

	respondWithJSON(w, http.StatusOK, pageOfActivities)
}

func (api *API) ClearActivities(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	cleared, err := activities.ClearActivities(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to clear activities")
		return
	}

	respondWithJSON(w, http.StatusOK, cleared)
}

func (api *API) GetActivityStats(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	stats, err := activities.GetStats(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to compute activity stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
