package main

import (
	"context"
	"log"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	if err := server.ListenAndServe(dbClient); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
