package api

import (
	"net/http"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
)

type API struct {
	Db     *mongodb.DB
	Secret *string
}

func NewAPI(db *mongodb.DB, secret *string) *API {
	return &API{Db: db, Secret: secret}
}

func (api *API) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
