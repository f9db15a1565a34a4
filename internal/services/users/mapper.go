package users

import (
	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
)

func MapDbUserToApiUserResponse(userDb mongodb.UserDb) UserResponse {
	return UserResponse{
		Id:          userDb.Id,
		Name:        userDb.Name,
		Username:    userDb.Username,
		Email:       userDb.Email,
		LastLoginAt: userDb.LastLoginAt,
		CreatedAt:   userDb.CreatedAt,
		UpdatedAt:   userDb.UpdatedAt,
	}
}

func MapDbUserToApiLoginResponse(userDb mongodb.UserDb, token string) LoginResponse {
	return LoginResponse{
		Id:          userDb.Id,
		Name:        userDb.Name,
		Username:    userDb.Username,
		Email:       userDb.Email,
		LastLoginAt: userDb.LastLoginAt,
		AccessToken: token,
	}
}
