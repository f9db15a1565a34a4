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

type UserDb struct {
	Id           string     `json:"id" bson:"_id"`
	Name         string     `json:"name" bson:"name"`
	Username     string     `json:"username" bson:"username,omitempty"`
	Email        string     `json:"email" bson:"email,omitempty"`
	PasswordHash string     `json:"passwordHash" bson:"passwordHash"`
	IsActive     bool       `json:"isActive" bson:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (db *DB) GetUserById(ctx context.Context, id string) (UserDb, error) {
	coll := db.Collection(UsersCollection)
	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) GetUserByUsernameOrEmail(ctx context.Context, username, email string) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	var conditions []bson.M
	if username != "" {
		conditions = append(conditions, bson.M{"username": username})
	}
	if email != "" {
		conditions = append(conditions, bson.M{"email": email})
	}
	if len(conditions) == 0 {
		return UserDb{}, ErrRecordNotFound
	}

	var userDb UserDb
	if err := coll.FindOne(ctx, bson.M{"$or": conditions}).Decode(&userDb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return UserDb{}, ErrRecordNotFound
		}
		return UserDb{}, err
	}

	return userDb, nil
}

func (db *DB) AddUser(ctx context.Context, user UserDb) (UserDb, error) {
	coll := db.Collection(UsersCollection)

	user.Id = primitive.NewObjectID().Hex()
	now := time.Now()
	user.IsActive = true
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := coll.InsertOne(ctx, user)
	if err != nil {
		return UserDb{}, err
	}

	return user, nil
}

func (db *DB) GetAllUsers(ctx context.Context) ([]UserDb, error) {
	coll := db.Collection(UsersCollection)
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return []UserDb{}, err
	}
	defer cursor.Close(ctx)

	var allUsers []UserDb
	if err := cursor.All(ctx, &allUsers); err != nil {
		return []UserDb{}, err
	}
	return allUsers, nil
}

func (db *DB) UserExists(ctx context.Context, id string) (bool, error) {
	coll := db.Collection(UsersCollection)

	// Only ask MongoDB for the _id field
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})

	err := coll.FindOne(ctx, bson.M{"_id": id}, opts).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (db *DB) UpdateUserLastLogin(ctx context.Context, id string) error {
	coll := db.Collection(UsersCollection)

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"lastLoginAt": now,
			"updatedAt":   now,
		},
	}

	_, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
