package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type ActivityDb struct {
	Id        string         `json:"id" bson:"_id"`
	UserId    string         `json:"userId" bson:"userId"`
	Type      string         `json:"type" bson:"type"`
	Title     string         `json:"title" bson:"title"`
	Details   map[string]any `json:"details" bson:"details"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}

type ActivityTypeCount struct {
	Type         string    `json:"type" bson:"_id"`
	Count        int       `json:"count" bson:"count"`
	LastActivity time.Time `json:"lastActivity" bson:"lastActivity"`
}

// Activities are capped per user; older entries beyond this are trimmed on
// every insert.
const maxActivitiesPerUser = 100

// ----- Methods for the database -----

func (db *DB) AddActivity(ctx context.Context, activity ActivityDb) (ActivityDb, error) {
	coll := db.Collection(ActivitiesCollection)

	activity.Id = primitive.NewObjectID().Hex()
	if activity.Details == nil {
		activity.Details = map[string]any{}
	}
	activity.Timestamp = time.Now()

	if _, err := coll.InsertOne(ctx, activity); err != nil {
		return ActivityDb{}, err
	}

	if err := db.trimOldActivities(ctx, activity.UserId); err != nil {
		return ActivityDb{}, err
	}

	return activity, nil
}

// trimOldActivities keeps only the most recent maxActivitiesPerUser entries.
func (db *DB) trimOldActivities(ctx context.Context, userId string) error {
	coll := db.Collection(ActivitiesCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64(maxActivitiesPerUser)).
		SetProjection(bson.M{"_id": 1})

	cursor, err := coll.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var overflow []struct {
		Id string `bson:"_id"`
	}
	if err := cursor.All(ctx, &overflow); err != nil {
		return err
	}
	if len(overflow) == 0 {
		return nil
	}

	ids := make([]string, len(overflow))
	for i, doc := range overflow {
		ids[i] = doc.Id
	}

	_, err = coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (db *DB) GetActivitiesByUserId(ctx context.Context, userId string, limit, skip int) ([]ActivityDb, error) {
	coll := db.Collection(ActivitiesCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := coll.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return []ActivityDb{}, err
	}
	defer cursor.Close(ctx)

	var activities []ActivityDb
	if err := cursor.All(ctx, &activities); err != nil {
		return []ActivityDb{}, err
	}
	return activities, nil
}

func (db *DB) CountActivitiesByUserId(ctx context.Context, userId string) (int, error) {
	coll := db.Collection(ActivitiesCollection)

	count, err := coll.CountDocuments(ctx, bson.M{"userId": userId})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (db *DB) DeleteActivitiesByUserId(ctx context.Context, userId string) (int64, error) {
	coll := db.Collection(ActivitiesCollection)

	result, err := coll.DeleteMany(ctx, bson.M{"userId": userId})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// AggregateActivityStats groups the user's activities by type, most frequent
// first.
func (db *DB) AggregateActivityStats(ctx context.Context, userId string) ([]ActivityTypeCount, error) {
	coll := db.Collection(ActivitiesCollection)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userId}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$type",
			"count":        bson.M{"$sum": 1},
			"lastActivity": bson.M{"$max": "$timestamp"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return []ActivityTypeCount{}, err
	}
	defer cursor.Close(ctx)

	var stats []ActivityTypeCount
	if err := cursor.All(ctx, &stats); err != nil {
		return []ActivityTypeCount{}, err
	}
	return stats, nil
}
