package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	dbClient, err := mongodb.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer dbClient.Disconnect(ctx)

	db := mongodb.NewDB(dbClient)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	fmt.Println("✅ All indexes created successfully!")
}
