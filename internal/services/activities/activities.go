package activities

import (
	"context"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/generics"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/logx"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
)

func LogActivity(db *mongodb.DB, ctx context.Context, userId string, req NewActivityRequest) (Activity, error) {
	if req.Type == "" || req.Title == "" {
		return Activity{}, ErrTypeAndTitleRequired
	}

	activityDb, err := db.AddActivity(ctx, mongodb.ActivityDb{
		UserId:  userId,
		Type:    req.Type,
		Title:   req.Title,
		Details: req.Details,
	})
	if err != nil {
		return Activity{}, err
	}

	return mapDbActivityToApiActivity(activityDb), nil
}

// Record is the fire-and-forget entry point used after watchlist mutations.
// Logging failures never escalate to the caller; they are only logged.
func Record(db *mongodb.DB, ctx context.Context, userId, activityType, title string, details map[string]any) {
	_, err := LogActivity(db, ctx, userId, NewActivityRequest{
		Type:    activityType,
		Title:   title,
		Details: details,
	})
	if err != nil {
		logx.FromContext(ctx).Printf("WARN: failed to log activity %q: %v", activityType, err)
	}
}

func GetPageOfActivities(db *mongodb.DB, ctx context.Context, userId string, size, page int) (generics.Page[Activity], error) {
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	if page == 0 {
		page = 1
	}
	skip := (page - 1) * size

	total, err := db.CountActivitiesByUserId(ctx, userId)
	if err != nil {
		return generics.Page[Activity]{}, err
	}

	activitiesDb, err := db.GetActivitiesByUserId(ctx, userId, size, skip)
	if err != nil {
		return generics.Page[Activity]{}, err
	}

	activities := make([]Activity, 0, len(activitiesDb))
	for _, activityDb := range activitiesDb {
		activities = append(activities, mapDbActivityToApiActivity(activityDb))
	}

	totalPages := (total + size - 1) / size
	if total == 0 {
		totalPages = 1
	}

	return generics.Page[Activity]{
		TotalResults: total,
		Size:         size,
		Page:         page,
		TotalPages:   totalPages,
		Content:      activities,
	}, nil
}

func ClearActivities(db *mongodb.DB, ctx context.Context, userId string) (ClearResponse, error) {
	deleted, err := db.DeleteActivitiesByUserId(ctx, userId)
	if err != nil {
		return ClearResponse{}, err
	}
	return ClearResponse{Deleted: deleted}, nil
}

func GetStats(db *mongodb.DB, ctx context.Context, userId string) (StatsResponse, error) {
	byType, err := db.AggregateActivityStats(ctx, userId)
	if err != nil {
		return StatsResponse{}, err
	}

	total, err := db.CountActivitiesByUserId(ctx, userId)
	if err != nil {
		return StatsResponse{}, err
	}

	return StatsResponse{Total: total, ByType: byType}, nil
}

func mapDbActivityToApiActivity(activityDb mongodb.ActivityDb) Activity {
	details := activityDb.Details
	if details == nil {
		details = map[string]any{}
	}

	return Activity{
		Id:        activityDb.Id,
		UserId:    activityDb.UserId,
		Type:      activityDb.Type,
		Title:     activityDb.Title,
		Details:   details,
		Timestamp: activityDb.Timestamp,
	}
}
