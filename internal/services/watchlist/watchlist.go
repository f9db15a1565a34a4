package watchlist

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetWatchlist returns the user's watchlist, creating an empty one on first
// access.
func GetWatchlist(db *mongodb.DB, ctx context.Context, userId string) (WatchlistResponse, error) {
	watchlist, err := db.GetOrCreateWatchlist(ctx, userId)
	if err != nil {
		return WatchlistResponse{}, err
	}
	return MapDbWatchlistToApiResponse(watchlist), nil
}

func AddItem(db *mongodb.DB, ctx context.Context, userId string, req AddItemRequest) (Item, error) {
	if req.Title == "" {
		return Item{}, ErrTitleRequired
	}
	if !IsValidMediaType(req.Type) {
		return Item{}, ErrInvalidMediaType
	}
	if req.Rating < 0 || req.Rating > 10 {
		return Item{}, ErrInvalidRating
	}

	watchlist, err := db.GetOrCreateWatchlist(ctx, userId)
	if err != nil {
		return Item{}, err
	}

	// Uniqueness is per title+type within one user's store
	for _, item := range watchlist.Items {
		if item.Title == req.Title && item.Type == req.Type {
			return Item{}, ErrDuplicateItem
		}
	}

	// Raw statuses from metadata providers must not leak in: only a value
	// already in the watchlist status set is accepted, everything else gets
	// the media type default.
	status := DefaultStatus(req.Type)
	if IsWatchlistStatus(req.Status) {
		status = req.Status
	}

	folders, err := normalizeFolderTags(req.Folders, watchlist.CustomFolders)
	if err != nil {
		return Item{}, err
	}

	genre := req.Genre
	if genre == nil {
		genre = []string{}
	}

	now := time.Now()
	itemDb := mongodb.ItemDb{
		Id:          primitive.NewObjectID().Hex(),
		Title:       req.Title,
		Type:        req.Type,
		Status:      status,
		Rating:      req.Rating,
		Progress:    mongodb.ProgressDb{Current: req.Progress.Current, Total: req.Progress.Total},
		Poster:      req.Poster,
		ReleaseDate: req.ReleaseDate,
		Genre:       genre,
		Description: req.Description,
		Notes:       req.Notes,
		Folders:     folders,
		AddedDate:   now,
		LastUpdated: now,
	}

	watchlist.Items = append(watchlist.Items, itemDb)
	if _, err := db.ReplaceWatchlist(ctx, watchlist); err != nil {
		return Item{}, err
	}

	return MapDbItemToApiItem(itemDb), nil
}

func UpdateItem(db *mongodb.DB, ctx context.Context, userId, itemId string, req UpdateItemRequest) (Item, error) {
	watchlist, err := db.GetWatchlistByUserId(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Item{}, ErrWatchlistNotFound
		}
		return Item{}, err
	}

	index := findItemIndex(watchlist.Items, itemId)
	if index < 0 {
		return Item{}, ErrItemNotFound
	}
	item := &watchlist.Items[index]

	if req.Title != nil && *req.Title != "" {
		newTitle := *req.Title
		for _, other := range watchlist.Items {
			if other.Id != item.Id && other.Title == newTitle && other.Type == item.Type {
				return Item{}, ErrDuplicateItem
			}
		}
		item.Title = newTitle
	}
	if req.Status != nil {
		// Loose external vocabulary is normalized onto the watchlist set
		item.Status = MapToWatchlistStatus(*req.Status, item.Type)
	}
	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > 10 {
			return Item{}, ErrInvalidRating
		}
		item.Rating = *req.Rating
	}
	if req.Progress != nil {
		item.Progress = mongodb.ProgressDb{Current: req.Progress.Current, Total: req.Progress.Total}
	}
	if req.Poster != nil {
		item.Poster = *req.Poster
	}
	if req.ReleaseDate != nil {
		item.ReleaseDate = *req.ReleaseDate
	}
	if req.Genre != nil {
		item.Genre = *req.Genre
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Folders != nil {
		folders, err := normalizeFolderTags(*req.Folders, watchlist.CustomFolders)
		if err != nil {
			return Item{}, err
		}
		item.Folders = folders
	}

	item.LastUpdated = time.Now()

	if _, err := db.ReplaceWatchlist(ctx, watchlist); err != nil {
		return Item{}, err
	}

	return MapDbItemToApiItem(*item), nil
}

func RemoveItem(db *mongodb.DB, ctx context.Context, userId, itemId string) (Item, error) {
	watchlist, err := db.GetWatchlistByUserId(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Item{}, ErrWatchlistNotFound
		}
		return Item{}, err
	}

	index := findItemIndex(watchlist.Items, itemId)
	if index < 0 {
		return Item{}, ErrItemNotFound
	}

	removed := watchlist.Items[index]
	watchlist.Items = append(watchlist.Items[:index], watchlist.Items[index+1:]...)

	if _, err := db.ReplaceWatchlist(ctx, watchlist); err != nil {
		return Item{}, err
	}

	return MapDbItemToApiItem(removed), nil
}

func CreateFolder(db *mongodb.DB, ctx context.Context, userId, name string) (CustomFolder, error) {
	if IsDefaultCategory(name) {
		return CustomFolder{}, ErrReservedFolderName
	}

	watchlist, err := db.GetOrCreateWatchlist(ctx, userId)
	if err != nil {
		return CustomFolder{}, err
	}

	for _, folder := range watchlist.CustomFolders {
		if folder.Name == name {
			return CustomFolder{}, ErrDuplicateFolder
		}
	}

	folderDb := mongodb.CustomFolderDb{
		Id:          primitive.NewObjectID().Hex(),
		Name:        name,
		IsShared:    false,
		ShareUrl:    "",
		CreatedDate: time.Now(),
	}

	watchlist.CustomFolders = append(watchlist.CustomFolders, folderDb)
	if _, err := db.ReplaceWatchlist(ctx, watchlist); err != nil {
		return CustomFolder{}, err
	}

	return MapDbFolderToApiFolder(folderDb), nil
}

// RenameFolder renames a custom folder and keeps the tags on its member items
// consistent. A stored share URL is rebuilt since it embeds the folder name.
func RenameFolder(db *mongodb.DB, ctx context.Context, userId, folderId, newName string) (CustomFolder, error) {
	if IsDefaultCategory(newName) {
		return CustomFolder{}, ErrReservedFolderName
	}

	watchlist, err := db.GetWatchlistByUserId(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return CustomFolder{}, ErrWatchlistNotFound
		}
		return CustomFolder{}, err
	}

	index := findFolderIndex(watchlist.CustomFolders, folderId)
	if index < 0 {
		return CustomFolder{}, ErrFolderNotFound
	}
	folder := &watchlist.CustomFolders[index]

	for _, other := range watchlist.CustomFolders {
		if other.Id != folder.Id && other.Name == newName {
			return CustomFolder{}, ErrDuplicateFolder
		}
	}

	oldName := folder.Name
	folder.Name = newName
	if folder.IsShared {
		folder.ShareUrl = BuildShareUrl(newName, userId)
	}

	for i := range watchlist.Items {
		for j, tag := range watchlist.Items[i].Folders {
			if tag == oldName {
				watchlist.Items[i].Folders[j] = newName
				watchlist.Items[i].LastUpdated = time.Now()
			}
		}
	}

	if _, err := db.ReplaceWatchlist(ctx, watchlist); err != nil {
		return CustomFolder{}, err
	}

	return MapDbFolderToApiFolder(*folder), nil
}

// DeleteFolder removes the folder and untags its member items. The items
// themselves are kept and stay visible under their default categories.
func DeleteFolder(db *mongodb.DB, ctx context.Context, userId, folderId string) error {
	watchlist, err := db.GetWatchlistByUserId(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrWatchlistNotFound
		}
		return err
	}

	index := findFolderIndex(watchlist.CustomFolders, folderId)
	if index < 0 {
		return ErrFolderNotFound
	}
	folderName := watchlist.CustomFolders[index].Name

	watchlist.CustomFolders = append(watchlist.CustomFolders[:index], watchlist.CustomFolders[index+1:]...)

	for i := range watchlist.Items {
		filtered := watchlist.Items[i].Folders[:0]
		for _, tag := range watchlist.Items[i].Folders {
			if tag != folderName {
				filtered = append(filtered, tag)
			}
		}
		watchlist.Items[i].Folders = filtered
	}

	_, err = db.ReplaceWatchlist(ctx, watchlist)
	return err
}

// AssignItemToFolder moves an item between groupings. Assigning to a default
// category clears the custom tag (the item always belongs to its media type
// grouping anyway); assigning to a custom folder replaces any existing tag,
// so an item carries at most one.
func AssignItemToFolder(db *mongodb.DB, ctx context.Context, userId, itemId, folderName string) (Item, error) {
	watchlist, err := db.GetWatchlistByUserId(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return Item{}, ErrWatchlistNotFound
		}
		return Item{}, err
	}

	index := findItemIndex(watchlist.Items, itemId)
	if index < 0 {
		return Item{}, ErrItemNotFound
	}
	item := &watchlist.Items[index]

	if IsDefaultCategory(folderName) {
		item.Folders = []string{}
	} else {
		if findFolderByName(watchlist.CustomFolders, folderName) < 0 {
			return Item{}, ErrFolderNotFound
		}
		item.Folders = []string{folderName}
	}
	item.LastUpdated = time.Now()

	if _, err := db.ReplaceWatchlist(ctx, watchlist); err != nil {
		return Item{}, err
	}

	return MapDbItemToApiItem(*item), nil
}

// ShareFolder produces a public share URL. Default categories have no folder
// record to mark, so the URL alone (category name + owner) is the share; for
// custom folders the folder is flagged as shared and the URL stored.
// Re-sharing refreshes the same URL.
func ShareFolder(db *mongodb.DB, ctx context.Context, userId, folderKey string) (string, error) {
	if IsDefaultCategory(folderKey) {
		return BuildShareUrl(folderKey, userId), nil
	}

	watchlist, err := db.GetWatchlistByUserId(ctx, userId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return "", ErrWatchlistNotFound
		}
		return "", err
	}

	index := findFolderIndex(watchlist.CustomFolders, folderKey)
	if index < 0 {
		// Callers may share by name as well as by id
		index = findFolderByName(watchlist.CustomFolders, folderKey)
	}
	if index < 0 {
		return "", ErrFolderNotFound
	}
	folder := &watchlist.CustomFolders[index]

	shareUrl := BuildShareUrl(folder.Name, userId)
	folder.IsShared = true
	folder.ShareUrl = shareUrl

	if _, err := db.ReplaceWatchlist(ctx, watchlist); err != nil {
		return "", err
	}

	return shareUrl, nil
}

// GetStats aggregates the user's watchlist into counts by status and type
// plus the average rating over rated items.
func GetStats(db *mongodb.DB, ctx context.Context, userId string) (StatsResponse, error) {
	watchlist, err := db.GetOrCreateWatchlist(ctx, userId)
	if err != nil {
		return StatsResponse{}, err
	}

	stats := StatsResponse{
		Total:    len(watchlist.Items),
		ByStatus: map[string]int{},
		ByType:   map[string]int{},
	}

	var ratingSum float64
	var ratedCount int
	for _, item := range watchlist.Items {
		stats.ByStatus[item.Status]++
		stats.ByType[item.Type]++
		if item.Rating > 0 {
			ratingSum += item.Rating
			ratedCount++
		}
	}
	if ratedCount > 0 {
		stats.AverageRating = ratingSum / float64(ratedCount)
	}

	return stats, nil
}

// BuildShareUrl points at the client application, not this server.
func BuildShareUrl(folderName, userId string) string {
	clientUrl := os.Getenv("CLIENT_URL")
	if clientUrl == "" {
		clientUrl = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/shared/%s/%s", clientUrl, url.PathEscape(folderName), userId)
}

// normalizeFolderTags enforces the at-most-one custom folder invariant on
// tags supplied by clients and rejects names that do not match an existing
// custom folder. Default category names are dropped rather than stored, since
// that membership is implicit.
func normalizeFolderTags(tags []string, customFolders []mongodb.CustomFolderDb) ([]string, error) {
	normalized := []string{}
	for _, tag := range tags {
		if IsDefaultCategory(tag) {
			continue
		}
		if findFolderByName(customFolders, tag) < 0 {
			return nil, ErrFolderNotFound
		}
		normalized = append(normalized, tag)
	}
	if len(normalized) > 1 {
		return nil, ErrTooManyFolders
	}
	return normalized, nil
}

func findItemIndex(items []mongodb.ItemDb, itemId string) int {
	for i, item := range items {
		if item.Id == itemId {
			return i
		}
	}
	return -1
}

func findFolderIndex(folders []mongodb.CustomFolderDb, folderId string) int {
	for i, folder := range folders {
		if folder.Id == folderId {
			return i
		}
	}
	return -1
}

func findFolderByName(folders []mongodb.CustomFolderDb, name string) int {
	for i, folder := range folders {
		if folder.Name == name {
			return i
		}
	}
	return -1
}
