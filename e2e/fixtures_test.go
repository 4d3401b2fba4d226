//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type fakeMovie struct {
	ID      string
	Title   string
	Year    string
	Runtime string
	Rating  string
	Plot    string
}

var defaultMovies = []fakeMovie{
	{ID: "tt1375666", Title: "Inception", Year: "2010", Runtime: "148 min", Rating: "8.8", Plot: "A thief who steals corporate secrets."},
	{ID: "tt1255953", Title: "Incendies", Year: "2010", Runtime: "131 min", Rating: "8.3", Plot: "Twins journey to the Middle East."},
	{ID: "tt0078748", Title: "Alien", Year: "1979", Runtime: "117 min", Rating: "8.5", Plot: "The crew of a commercial spacecraft."},
}

// fakeOMDb serves search and detail lookups over a fixed catalogue
type fakeOMDb struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
	movies  []fakeMovie
}

func newFakeOMDb(movies []fakeMovie) *fakeOMDb {
	f := &fakeOMDb{movies: movies}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *fakeOMDb) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query()

	if id := q.Get("i"); id != "" {
		for _, m := range f.movies {
			if m.ID == id {
				_ = json.NewEncoder(w).Encode(map[string]string{
					"Title": m.Title, "Year": m.Year, "Runtime": m.Runtime,
					"imdbRating": m.Rating, "imdbID": m.ID, "Plot": m.Plot,
					"Poster": "N/A", "Response": "True",
				})
				return
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Incorrect IMDb ID."})
		return
	}

	s := q.Get("s")
	f.mu.Lock()
	f.queries = append(f.queries, s)
	f.mu.Unlock()

	var hits []map[string]string
	for _, m := range f.movies {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(s)) {
			hits = append(hits, map[string]string{"Title": m.Title, "Year": m.Year, "imdbID": m.ID, "Type": "movie", "Poster": "N/A"})
		}
	}
	if len(hits) == 0 {
		_ = json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Movie not found!"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"Search": hits, "totalResults": fmt.Sprint(len(hits)), "Response": "True"})
}

// Queries returns every search term the app sent
func (f *fakeOMDb) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

// CreateTestWorkspace creates a temporary directory with a config
// pointing at a fresh fake OMDb server
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	tf.omdb = newFakeOMDb(defaultMovies)

	config := fmt.Sprintf(`version = 1

[api]
base_url = %q
requests_per_second = 50
timeout = "5s"

[storage]
backend = "file"
dir = %q
key = "watched"

[log]
level = "debug"
file = %q
`, tf.omdb.URL+"/", filepath.Join(tmpDir, "data"), filepath.Join(tmpDir, "movieflix.log"))

	if err := os.WriteFile(tf.ConfigPath(), []byte(config), 0644); err != nil {
		return "", err
	}
	return tmpDir, nil
}

// ConfigPath returns the config file used by StartApp
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// WatchedSnapshot returns the stored watched list
func (tf *TUITestFramework) WatchedSnapshot() (string, error) {
	data, err := os.ReadFile(filepath.Join(tf.workspace, "data", "watched.json"))
	return string(data), err
}

// SeedWatched writes a watched list before the app starts
func (tf *TUITestFramework) SeedWatched(raw string) error {
	dir := filepath.Join(tf.workspace, "data")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "watched.json"), []byte(raw), 0644)
}
