package server

import (
	"log"
	"net/http"
	"os"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/api"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewServer builds the full handler chain around the given Mongo client.
// Tests use it directly with httptest instead of binding a port.
func NewServer(client *mongo.Client) http.Handler {
	db := mongodb.NewDB(client)

	tokenSecret := os.Getenv("TOKEN_SECRET")
	if tokenSecret == "" {
		tokenSecret = "secret-key-for-local-development"
	}

	apiHandlers := api.NewAPI(db, &tokenSecret)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", apiHandlers.HealthCheck)
	mux.HandleFunc("POST /users", apiHandlers.CreateUser)
	mux.HandleFunc("POST /login", apiHandlers.LoginHandler)
	mux.HandleFunc("GET /users", apiHandlers.GetUsers)

	mux.Handle("GET /shared/{folder}", RateLimitMiddleware(http.HandlerFunc(apiHandlers.GetSharedView)))
	mux.Handle("GET /shared/{folder}/{userId}", RateLimitMiddleware(http.HandlerFunc(apiHandlers.GetSharedView)))

	mux.HandleFunc("GET /watchlist", apiHandlers.GetWatchlist)
	mux.HandleFunc("GET /watchlist/stats", apiHandlers.GetWatchlistStats)
	mux.HandleFunc("POST /watchlist/items", apiHandlers.AddItem)
	mux.HandleFunc("PUT /watchlist/items/{itemId}", apiHandlers.UpdateItem)
	mux.HandleFunc("DELETE /watchlist/items/{itemId}", apiHandlers.RemoveItem)
	mux.HandleFunc("POST /watchlist/items/{itemId}/folder", apiHandlers.AssignItemToFolder)

	mux.HandleFunc("POST /watchlist/folders", apiHandlers.CreateFolder)
	mux.HandleFunc("PUT /watchlist/folders/{folderId}", apiHandlers.RenameFolder)
	mux.HandleFunc("DELETE /watchlist/folders/{folderId}", apiHandlers.DeleteFolder)
	mux.HandleFunc("POST /watchlist/folders/{key}/share", apiHandlers.ShareFolder)

	mux.HandleFunc("POST /activities", apiHandlers.LogActivity)
	mux.HandleFunc("GET /activities", apiHandlers.GetActivities)
	mux.HandleFunc("DELETE /activities", apiHandlers.ClearActivities)
	mux.HandleFunc("GET /activities/stats", apiHandlers.GetActivityStats)

	authMiddleware := AuthMiddleware(tokenSecret, db)

	return RequestIdMiddleware(authMiddleware(mux))
}

func ListenAndServe(client *mongo.Client) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewServer(client),
	}

	log.Println("Server is running on port " + port)
	return server.ListenAndServe()
}
