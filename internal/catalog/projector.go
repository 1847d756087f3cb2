// Package catalog holds pure in-memory projections over fetched
// product and feed-post collections.
package catalog

// Tagged is any item carrying a category tag
type Tagged interface {
	CategoryTag() string
}

// ByCategory projects items down to the given category. An empty
// category is the identity projection: the source slice is returned
// unchanged. Otherwise the result is the order-preserving subsequence
// whose tag equals category. No I/O, no mutation of the source.
func ByCategory[T Tagged](items []T, category string) []T {
	if category == "" {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.CategoryTag() == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
