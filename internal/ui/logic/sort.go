package logic

import (
	"sort"
	"strings"

	"movieflix/internal/domain"
)

// SortMode represents the ordering of the watched list
type SortMode int

const (
	SortByAdded SortMode = iota
	SortByTitle
	SortByUserRating
	SortByIMDbRating
	SortByRuntime
)

// sortModeCount is the number of modes Next cycles through
const sortModeCount = 5

// String returns the label shown in the watched panel header
func (m SortMode) String() string {
	switch m {
	case SortByAdded:
		return "added"
	case SortByTitle:
		return "title"
	case SortByUserRating:
		return "your rating"
	case SortByIMDbRating:
		return "imdb rating"
	case SortByRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows m, wrapping around
func (m SortMode) Next() SortMode {
	return SortMode((int(m) + 1) % sortModeCount)
}

// SortEntries returns a sorted copy of entries. The input keeps its
// insertion order. Ties fall back to insertion order.
func SortEntries(entries []domain.WatchedEntry, mode SortMode) []domain.WatchedEntry {
	out := make([]domain.WatchedEntry, len(entries))
	copy(out, entries)

	switch mode {
	case SortByTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortByUserRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UserRating > out[j].UserRating
		})
	case SortByIMDbRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IMDbRating > out[j].IMDbRating
		})
	case SortByRuntime:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RuntimeMinutes > out[j].RuntimeMinutes
		})
	}
	return out
}
