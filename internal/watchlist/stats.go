package watchlist

import (
	"math"
	"strconv"

	"movieflix/internal/domain"
)

// Stats is the summary shown above the watched list
type Stats struct {
	Count      int
	AvgIMDb    float64
	AvgUser    float64
	AvgRuntime float64
}

// Average returns the arithmetic mean of values, and 0 for no values
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Summarize computes the averages over entries. Unknown IMDb ratings
// and runtimes are left out of their averages.
func Summarize(entries []domain.WatchedEntry) Stats {
	imdb := make([]float64, 0, len(entries))
	user := make([]float64, 0, len(entries))
	runtime := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.IMDbRating.Known() {
			imdb = append(imdb, float64(e.IMDbRating))
		}
		if e.RuntimeMinutes.Known() {
			runtime = append(runtime, float64(e.RuntimeMinutes))
		}
		user = append(user, float64(e.UserRating))
	}
	return Stats{
		Count:      len(entries),
		AvgIMDb:    Average(imdb),
		AvgUser:    Average(user),
		AvgRuntime: Average(runtime),
	}
}

// FormatRating renders a rating average with one decimal ("8.0")
func FormatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatRuntime renders whole minutes without decimals ("120") and
// anything else with one decimal ("97.5")
func FormatRuntime(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
