package api

import (
	"net/http"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/logx"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/shared"
)

// GetSharedView serves the public read-only projection of a shared folder.
// The owner user id is optional for custom folders, since a shared custom
// folder can be located by its name alone.
func (api *API) GetSharedView(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	folderKey := r.PathValue("folder")
	if folderKey == "" {
		respondWithError(w, http.StatusBadRequest, "Folder name is required")
		return
	}
	ownerUserId := r.PathValue("userId")

	view, err := shared.GetSharedView(api.Db, r.Context(), folderKey, ownerUserId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(shared.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error loading shared folder")
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
