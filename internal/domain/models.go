package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Movie is one row of a title search result
type Movie struct {
	ID        string
	Title     string
	Year      string
	PosterURL string
}

// MovieDetail is the full record shown in the detail panel
type MovieDetail struct {
	ID             string
	Title          string
	Year           string
	Poster         string
	Runtime        string // raw runtime text, e.g. "142 min"
	RuntimeMinutes int    // 0 when the runtime is missing or malformed
	IMDbRating     string // raw rating text, "N/A" when unrated
	Plot           string
	Released       string
	Actors         string
	Director       string
	Genre          string
}

// WatchedEntry is a rated movie stored in the watchlist
type WatchedEntry struct {
	ID             string    `json:"imdbID"`
	Title          string    `json:"title"`
	IMDbRating     Number    `json:"imdbRating,omitempty"`
	UserRating     int       `json:"userRating"`
	Poster         string    `json:"poster"`
	RuntimeMinutes Number    `json:"runtime,omitempty"`
	AddedAt        time.Time `json:"addedAt"`
}

// Rating bounds accepted for WatchedEntry.UserRating
const (
	MinUserRating = 1
	MaxUserRating = 10
)

// Number is a float that also decodes from numeric strings. Snapshots
// written by older versions stored ratings as text ("7.5"); "N/A" and
// empty strings decode to 0. Zero means the value is unknown.
type Number float64

// Known reports whether the value was present and parsable
func (n Number) Known() bool {
	return n > 0
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" || strings.EqualFold(s, "n/a") {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}
