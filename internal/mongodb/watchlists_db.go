package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

// One watchlist document per user. Every mutation is a read-modify-write on
// the whole document, saved with ReplaceWatchlist (document-level atomicity,
// last write wins).
type WatchlistDb struct {
	Id            string           `json:"id" bson:"_id"`
	UserId        string           `json:"userId" bson:"userId"`
	Items         []ItemDb         `json:"items" bson:"items"`
	CustomFolders []CustomFolderDb `json:"customFolders" bson:"customFolders"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt" bson:"updatedAt"`
}

type ItemDb struct {
	Id          string     `json:"id" bson:"itemId"`
	Title       string     `json:"title" bson:"title"`
	Type        string     `json:"type" bson:"type"`
	Status      string     `json:"status" bson:"status"`
	Rating      float64    `json:"rating" bson:"rating"`
	Progress    ProgressDb `json:"progress" bson:"progress"`
	Poster      string     `json:"poster" bson:"poster"`
	ReleaseDate string     `json:"releaseDate" bson:"releaseDate"`
	Genre       []string   `json:"genre" bson:"genre"`
	Description string     `json:"description" bson:"description"`
	Notes       string     `json:"notes" bson:"notes"`
	Folders     []string   `json:"folders" bson:"folders"`
	AddedDate   time.Time  `json:"addedDate" bson:"addedDate"`
	LastUpdated time.Time  `json:"lastUpdated" bson:"lastUpdated"`
}

type ProgressDb struct {
	Current int `json:"current" bson:"current"`
	Total   int `json:"total" bson:"total"`
}

type CustomFolderDb struct {
	Id          string    `json:"id" bson:"folderId"`
	Name        string    `json:"name" bson:"name"`
	IsShared    bool      `json:"isShared" bson:"isShared"`
	ShareUrl    string    `json:"shareUrl" bson:"shareUrl"`
	CreatedDate time.Time `json:"createdDate" bson:"createdDate"`
}

// ----- Methods for the database -----

func (db *DB) GetWatchlistByUserId(ctx context.Context, userId string) (WatchlistDb, error) {
	coll := db.Collection(WatchlistsCollection)

	var watchlist WatchlistDb
	err := coll.FindOne(ctx, bson.M{"userId": userId}).Decode(&watchlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return WatchlistDb{}, ErrRecordNotFound
		}
		return WatchlistDb{}, err
	}
	return watchlist, nil
}

// GetOrCreateWatchlist returns the user's watchlist, creating an empty one on
// first access.
func (db *DB) GetOrCreateWatchlist(ctx context.Context, userId string) (WatchlistDb, error) {
	watchlist, err := db.GetWatchlistByUserId(ctx, userId)
	if err == nil {
		return watchlist, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return WatchlistDb{}, err
	}

	coll := db.Collection(WatchlistsCollection)

	now := time.Now()
	watchlist = WatchlistDb{
		Id:            primitive.NewObjectID().Hex(),
		UserId:        userId,
		Items:         []ItemDb{},
		CustomFolders: []CustomFolderDb{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := coll.InsertOne(ctx, watchlist); err != nil {
		// Another session may have created it between the read and the insert
		if mongo.IsDuplicateKeyError(err) {
			return db.GetWatchlistByUserId(ctx, userId)
		}
		return WatchlistDb{}, err
	}
	return watchlist, nil
}

// ReplaceWatchlist persists the whole document in a single write.
func (db *DB) ReplaceWatchlist(ctx context.Context, watchlist WatchlistDb) (WatchlistDb, error) {
	coll := db.Collection(WatchlistsCollection)

	watchlist.UpdatedAt = time.Now()
	result, err := coll.ReplaceOne(ctx, bson.M{"_id": watchlist.Id}, watchlist)
	if err != nil {
		return WatchlistDb{}, err
	}
	if result.MatchedCount == 0 {
		return WatchlistDb{}, ErrRecordNotFound
	}
	return watchlist, nil
}

// FindWatchlistWithSharedFolder looks up the watchlist of userId that holds a
// custom folder with the given name and isShared set.
func (db *DB) FindWatchlistWithSharedFolder(ctx context.Context, userId, folderName string) (WatchlistDb, error) {
	coll := db.Collection(WatchlistsCollection)

	filter := bson.M{
		"userId": userId,
		"customFolders": bson.M{
			"$elemMatch": bson.M{"name": folderName, "isShared": true},
		},
	}

	var watchlist WatchlistDb
	err := coll.FindOne(ctx, filter).Decode(&watchlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return WatchlistDb{}, ErrRecordNotFound
		}
		return WatchlistDb{}, err
	}
	return watchlist, nil
}

func (db *DB) WatchlistExists(ctx context.Context, userId string) (bool, error) {
	coll := db.Collection(WatchlistsCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"userId": userId}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
