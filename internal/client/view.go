package client

import (
	"github.com/Talha-3921/nexlist-watchlist-app/internal/services/watchlist"
)

// GroupByFolder computes the grouped view fresh from the item and folder
// lists. Every item appears under its media type's default category; an item
// tagged into a custom folder additionally appears under that folder. Custom
// folders with no members still get an entry, so the UI can render empty
// tabs. statusFilter narrows every group to items with that exact status;
// the empty string keeps everything.
//
// The result is always derived from scratch, never patched incrementally, so
// it cannot drift from the underlying lists.
func GroupByFolder(items []watchlist.Item, customFolders []watchlist.CustomFolder, statusFilter string) map[string][]watchlist.Item {
	groups := make(map[string][]watchlist.Item, len(watchlist.DefaultCategories)+len(customFolders))

	for _, category := range watchlist.DefaultCategories {
		groups[category] = []watchlist.Item{}
	}
	for _, folder := range customFolders {
		groups[folder.Name] = []watchlist.Item{}
	}

	for _, item := range items {
		if statusFilter != "" && item.Status != statusFilter {
			continue
		}

		groups[item.Type] = append(groups[item.Type], item)

		for _, tag := range item.Folders {
			if _, ok := groups[tag]; ok {
				groups[tag] = append(groups[tag], item)
			}
		}
	}

	return groups
}

// ResolveActiveTab keeps the current tab if it still names a default category
// or an existing custom folder. Otherwise it falls back to the first default
// category. Used after folder deletes and renames so the view never points
// at a vanished tab.
func ResolveActiveTab(current string, customFolders []watchlist.CustomFolder) string {
	if watchlist.IsDefaultCategory(current) {
		return current
	}
	for _, folder := range customFolders {
		if folder.Name == current {
			return current
		}
	}

	return watchlist.DefaultCategories[0]
}
