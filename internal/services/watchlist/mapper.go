package watchlist

import (
	"github.com/Talha-3921/nexlist-watchlist-app/internal/mongodb"
)

func MapDbItemToApiItem(item mongodb.ItemDb) Item {
	genre := item.Genre
	if genre == nil {
		genre = []string{}
	}
	folders := item.Folders
	if folders == nil {
		folders = []string{}
	}

	return Item{
		Id:          item.Id,
		Title:       item.Title,
		Type:        item.Type,
		Status:      item.Status,
		Rating:      item.Rating,
		Progress:    Progress{Current: item.Progress.Current, Total: item.Progress.Total},
		Poster:      item.Poster,
		ReleaseDate: item.ReleaseDate,
		Genre:       genre,
		Description: item.Description,
		Notes:       item.Notes,
		Folders:     folders,
		AddedDate:   item.AddedDate,
		LastUpdated: item.LastUpdated,
	}
}

func MapDbFolderToApiFolder(folder mongodb.CustomFolderDb) CustomFolder {
	return CustomFolder{
		Id:          folder.Id,
		Name:        folder.Name,
		IsShared:    folder.IsShared,
		ShareUrl:    folder.ShareUrl,
		CreatedDate: folder.CreatedDate,
	}
}

func MapDbWatchlistToApiResponse(watchlist mongodb.WatchlistDb) WatchlistResponse {
	response := WatchlistResponse{
		Id:            watchlist.Id,
		UserId:        watchlist.UserId,
		Items:         []Item{},
		CustomFolders: []CustomFolder{},
	}

	for _, item := range watchlist.Items {
		response.Items = append(response.Items, MapDbItemToApiItem(item))
	}
	for _, folder := range watchlist.CustomFolders {
		response.CustomFolders = append(response.CustomFolders, MapDbFolderToApiFolder(folder))
	}

	return response
}
