package utils

import "sort"

// Countable is implemented by rows ranked by a purchase total.
type Countable interface {
	GetPurchaseCount() int
}

// TopByCount sorts items by count descending and truncates to limit.
// The input slice is sorted in place; the returned slice aliases it.
func TopByCount[T Countable](items []T, limit int) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GetPurchaseCount() > items[j].GetPurchaseCount()
	})
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
