package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates all indexes the application relies on. Safe to call on
// every startup.
func EnsureIndexes(ctx context.Context, db *DB) error {
	if err := ensureUserIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	if err := ensureWatchlistIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create watchlist indexes: %w", err)
	}
	if err := ensureActivityIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to create activity indexes: %w", err)
	}
	return nil
}

func ensureUserIndexes(ctx context.Context, db *DB) error {
	coll := db.Collection(UsersCollection)

	// Create unique index on email (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("email_unique").
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{"email": bson.M{"$exists": true, "$type": "string", "$gt": ""}}),
	}
	if err := createIndexIfNotExists(ctx, coll, emailIndex, "email_unique"); err != nil {
		return err
	}

	// Create unique index on username (case-insensitive)
	// Exclude empty strings and null values from uniqueness constraint
	usernameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "username", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("username_unique").
			SetCollation(&options.Collation{
				Locale:   "en",
				Strength: 2,
			}).
			SetPartialFilterExpression(bson.M{"username": bson.M{"$exists": true, "$type": "string", "$gt": ""}}),
	}
	return createIndexIfNotExists(ctx, coll, usernameIndex, "username_unique")
}

func ensureWatchlistIndexes(ctx context.Context, db *DB) error {
	coll := db.Collection(WatchlistsCollection)

	// One watchlist document per user
	userIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("userId_unique"),
	}
	return createIndexIfNotExists(ctx, coll, userIndex, "userId_unique")
}

func ensureActivityIndexes(ctx context.Context, db *DB) error {
	coll := db.Collection(ActivitiesCollection)

	timelineIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index().
			SetName("userId_1_timestamp_-1"),
	}
	if err := createIndexIfNotExists(ctx, coll, timelineIndex, "userId_1_timestamp_-1"); err != nil {
		return err
	}

	typeIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "type", Value: 1}},
		Options: options.Index().
			SetName("userId_1_type_1"),
	}
	return createIndexIfNotExists(ctx, coll, typeIndex, "userId_1_type_1")
}

// createIndexIfNotExists checks if an index exists and creates it if it doesn't
func createIndexIfNotExists(ctx context.Context, coll *mongo.Collection, indexModel mongo.IndexModel, indexName string) error {
	// List existing indexes
	cursor, err := coll.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	// Check if index already exists
	indexExists := false
	for cursor.Next(ctx) {
		var index bson.M
		if err := cursor.Decode(&index); err != nil {
			return fmt.Errorf("failed to decode index: %w", err)
		}

		if name, ok := index["name"].(string); ok && name == indexName {
			indexExists = true
			break
		}
	}

	if err := cursor.Err(); err != nil {
		return fmt.Errorf("cursor error: %w", err)
	}

	if indexExists {
		return nil
	}

	_, err = coll.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", indexName, err)
	}

	return nil
}
