package api

import (
	"encoding/json"
	"net/http"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/auth"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/logx"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/activities"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
)

func (api *API) CreateFolder(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	var req watchlist.CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Folder name is required")
		return
	}

	folder, err := watchlist.CreateFolder(api.Db, r.Context(), user.Id, req.Name)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error creating folder")
		return
	}

	activities.Record(api.Db, r.Context(), user.Id, activities.TypeFolderCreate, folder.Name, nil)

	respondWithJSON(w, http.StatusCreated, folder)
}

func (api *API) RenameFolder(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	folderId := r.PathValue("folderId")
	if folderId == "" {
		respondWithError(w, http.StatusBadRequest, "Folder id is required")
		return
	}

	var req watchlist.RenameFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		respondWithError(w, http.StatusBadRequest, "Folder name is required")
		return
	}

	folder, err := watchlist.RenameFolder(api.Db, r.Context(), user.Id, folderId, req.Name)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error renaming folder")
		return
	}

	activities.Record(api.Db, r.Context(), user.Id, activities.TypeFolderRename, folder.Name, nil)

	respondWithJSON(w, http.StatusOK, folder)
}

func (api *API) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	folderId := r.PathValue("folderId")
	if folderId == "" {
		respondWithError(w, http.StatusBadRequest, "Folder id is required")
		return
	}

	err := watchlist.DeleteFolder(api.Db, r.Context(), user.Id, folderId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error deleting folder")
		return
	}

	activities.Record(api.Db, r.Context(), user.Id, activities.TypeFolderDelete, folderId, nil)

	respondWithJSON(w, http.StatusOK, "Folder deleted")
}

// ShareFolder accepts either a custom folder id, a custom folder name, or one
// of the default category names as the {key} path segment.
func (api *API) ShareFolder(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())

	folderKey := r.PathValue("key")
	if folderKey == "" {
		respondWithError(w, http.StatusBadRequest, "Folder key is required")
		return
	}

	shareUrl, err := watchlist.ShareFolder(api.Db, r.Context(), user.Id, folderKey)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(watchlist.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Error sharing folder")
		return
	}

	activities.Record(api.Db, r.Context(), user.Id, activities.TypeFolderShare, folderKey, nil)

	respondWithJSON(w, http.StatusOK, watchlist.ShareFolderResponse{ShareUrl: shareUrl})
}
