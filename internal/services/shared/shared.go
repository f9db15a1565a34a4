package shared

import (
	"context"
	"time"

	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
)

// GetSharedView builds the read-only public projection of a folder. The key
// is either one of the five default category names (owner id required, since
// every user has those folders) or a custom folder name, which must be marked
// shared on the owner's watchlist.
func GetSharedView(db *mongodb.DB, ctx context.Context, folderKey, ownerUserId string) (SharedViewResponse, error) {
	if watchlist.IsDefaultCategory(folderKey) {
		return getDefaultCategoryView(db, ctx, folderKey, ownerUserId)
	}
	return getCustomFolderView(db, ctx, folderKey, ownerUserId)
}

func getDefaultCategoryView(db *mongodb.DB, ctx context.Context, category, ownerUserId string) (SharedViewResponse, error) {
	if ownerUserId == "" {
		return SharedViewResponse{}, ErrOwnerRequired
	}

	owner, err := db.GetUserById(ctx, ownerUserId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return SharedViewResponse{}, ErrOwnerNotFound
		}
		return SharedViewResponse{}, err
	}

	watchlistDb, err := db.GetWatchlistByUserId(ctx, ownerUserId)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return SharedViewResponse{}, ErrOwnerNotFound
		}
		return SharedViewResponse{}, err
	}

	items := []SharedItem{}
	for _, item := range watchlistDb.Items {
		if item.Type == category {
			items = append(items, mapDbItemToSharedItem(item))
		}
	}

	return SharedViewResponse{
		Folder: FolderInfo{
			Name:     category,
			IsShared: true,
			Type:     "default",
		},
		Items:      items,
		User:       OwnerInfo{Name: owner.Name, Email: owner.Email},
		SharedDate: time.Now(),
	}, nil
}

func getCustomFolderView(db *mongodb.DB, ctx context.Context, folderName, ownerUserId string) (SharedViewResponse, error) {
	if ownerUserId == "" {
		return SharedViewResponse{}, ErrNotSharedOrMissing
	}

	watchlistDb, err := db.FindWatchlistWithSharedFolder(ctx, ownerUserId, folderName)
	if err != nil {
		if err == mongodb.ErrRecordNotFound {
			return SharedViewResponse{}, ErrNotSharedOrMissing
		}
		return SharedViewResponse{}, err
	}

	var folder *mongodb.CustomFolderDb
	for i := range watchlistDb.CustomFolders {
		if watchlistDb.CustomFolders[i].Name == folderName {
			folder = &watchlistDb.CustomFolders[i]
			break
		}
	}
	if folder == nil || !folder.IsShared {
		return SharedViewResponse{}, ErrNotSharedOrMissing
	}

	items := []SharedItem{}
	for _, item := range watchlistDb.Items {
		for _, tag := range item.Folders {
			if tag == folder.Name {
				items = append(items, mapDbItemToSharedItem(item))
				break
			}
		}
	}

	owner := OwnerInfo{Name: "Anonymous User"}
	if ownerDb, err := db.GetUserById(ctx, watchlistDb.UserId); err == nil {
		owner = OwnerInfo{Name: ownerDb.Name, Email: ownerDb.Email}
	}

	createdDate := folder.CreatedDate
	return SharedViewResponse{
		Folder: FolderInfo{
			Name:        folder.Name,
			IsShared:    folder.IsShared,
			Type:        "custom",
			CreatedDate: &createdDate,
		},
		Items:      items,
		User:       owner,
		SharedDate: folder.CreatedDate,
	}, nil
}

func mapDbItemToSharedItem(item mongodb.ItemDb) SharedItem {
	genre := item.Genre
	if genre == nil {
		genre = []string{}
	}

	return SharedItem{
		Id:          item.Id,
		Title:       item.Title,
		Type:        item.Type,
		Status:      item.Status,
		Rating:      item.Rating,
		Progress:    watchlist.Progress{Current: item.Progress.Current, Total: item.Progress.Total},
		Poster:      item.Poster,
		ReleaseDate: item.ReleaseDate,
		Genre:       genre,
		Description: item.Description,
		AddedDate:   item.AddedDate,
	}
}
