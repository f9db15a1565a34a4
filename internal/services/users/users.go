package users

import (
	"context"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/auth"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

func AddUser(db *mongodb.DB, ctx context.Context, req NewUserRequest) (UserResponse, error) {
	if err := validateNewUser(req); err != nil {
		return UserResponse{}, err
	}

	if _, err := db.GetUserByUsernameOrEmail(ctx, req.Username, req.Email); err == nil {
		return UserResponse{}, ErrCredentialsAlreadyExists
	} else if err != mongodb.ErrRecordNotFound {
		return UserResponse{}, err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return UserResponse{}, err
	}

	userDb, err := db.AddUser(ctx, mongodb.UserDb{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		// The unique index catches the race between the duplicate check and
		// the insert
		if mongo.IsDuplicateKeyError(err) {
			return UserResponse{}, ErrCredentialsAlreadyExists
		}
		return UserResponse{}, err
	}

	return MapDbUserToApiUserResponse(userDb), nil
}

func GetUserDbByUsernameOrEmail(db *mongodb.DB, ctx context.Context, username, email string) (mongodb.UserDb, error) {
	userDb, err := db.GetUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return mongodb.UserDb{}, ErrUserNotFound
		}
		return mongodb.UserDb{}, err
	}
	return userDb, nil
}

// BuildLoginResponse refreshes the last-login timestamp and assembles the
// login payload.
func BuildLoginResponse(db *mongodb.DB, ctx context.Context, userDb mongodb.UserDb, token string) (LoginResponse, error) {
	if err := db.UpdateUserLastLogin(ctx, userDb.Id); err != nil {
		return LoginResponse{}, err
	}
	return MapDbUserToApiLoginResponse(userDb, token), nil
}

func GetAllUsers(db *mongodb.DB, ctx context.Context) ([]UserResponse, error) {
	allUsersDb, err := db.GetAllUsers(ctx)
	if err != nil {
		return []UserResponse{}, err
	}

	allUsers := make([]UserResponse, 0, len(allUsersDb))
	for _, userDb := range allUsersDb {
		allUsers = append(allUsers, MapDbUserToApiUserResponse(userDb))
	}
	return allUsers, nil
}

func validateNewUser(req NewUserRequest) error {
	if req.Username != "" {
		if len(req.Username) < 3 {
			return ErrInvalidUsernameSize
		}
		if !IsValidUsername(req.Username) {
			return ErrInvalidUsername
		}
	}
	if req.Email != "" && !IsValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return ErrInvalidPassword
	}
	return nil
}
