// Package omdb is a small client for the OMDb movie metadata API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"movieflix/internal/domain"
)

const (
	defaultBaseURL = "https://www.omdbapi.com/"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// MovieAPI is the remote catalogue consumed by the UI
type MovieAPI interface {
	Search(ctx context.Context, query string) ([]domain.Movie, error)
	Details(ctx context.Context, id string) (domain.MovieDetail, error)
}

// Options configures a Client
type Options struct {
	BaseURL           string
	Key               string
	Timeout           time.Duration
	RequestsPerSecond float64 // <= 0 disables limiting
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Client talks to OMDb over HTTP
type Client struct {
	baseURL *url.URL
	key     string
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

var _ MovieAPI = (*Client)(nil)

// NewClient builds a Client from opts
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		raw = defaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", raw)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL: u,
		key:     opts.Key,
		http:    hc,
		limiter: limiter,
		log:     log.With("component", "omdb"),
	}, nil
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type detailResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Search looks movies up by title. Duplicate IDs in the response are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	params := url.Values{}
	params.Set("s", strings.TrimSpace(query))

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}
	if strings.EqualFold(resp.Response, "False") {
		return nil, apiError(resp.Error)
	}

	seen := make(map[string]bool, len(resp.Search))
	movies := make([]domain.Movie, 0, len(resp.Search))
	for _, item := range resp.Search {
		if item.ImdbID == "" || seen[item.ImdbID] {
			continue
		}
		seen[item.ImdbID] = true
		movies = append(movies, domain.Movie{
			ID:        item.ImdbID,
			Title:     item.Title,
			Year:      item.Year,
			PosterURL: cleanPoster(item.Poster),
		})
	}
	return movies, nil
}

// Details fetches the full record for one IMDb id
func (c *Client) Details(ctx context.Context, id string) (domain.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", strings.TrimSpace(id))
	params.Set("plot", "full")

	var resp detailResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return domain.MovieDetail{}, err
	}
	if strings.EqualFold(resp.Response, "False") {
		return domain.MovieDetail{}, apiError(resp.Error)
	}

	detail := domain.MovieDetail{
		ID:         resp.ImdbID,
		Title:      resp.Title,
		Year:       resp.Year,
		Poster:     cleanPoster(resp.Poster),
		Runtime:    resp.Runtime,
		IMDbRating: resp.ImdbRating,
		Plot:       resp.Plot,
		Released:   resp.Released,
		Actors:     resp.Actors,
		Director:   resp.Director,
		Genre:      resp.Genre,
	}
	if detail.ID == "" {
		detail.ID = id
	}
	if mins, err := ParseRuntime(resp.Runtime); err == nil {
		detail.RuntimeMinutes = mins
	} else {
		c.log.Debug("unparsable runtime", "id", id, "runtime", resp.Runtime)
	}
	return detail, nil
}

// get performs one rate limited GET and decodes the JSON body into out
func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	reqID := uuid.NewString()
	log := c.log.With("request_id", reqID)
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return canceled(ctx)
		}
		return networkError("", err)
	}

	params.Set("apikey", c.key)
	u := *c.baseURL
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return networkError("", fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("request started", "s", params.Get("s"), "i", params.Get("i"))
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			log.Debug("request canceled", "elapsed", time.Since(start))
			return canceled(ctx)
		}
		log.Warn("request failed", "error", err, "elapsed", time.Since(start))
		return networkError("", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("unexpected status", "status", resp.StatusCode)
		return networkError("", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return canceled(ctx)
		}
		log.Warn("decode failed", "error", err)
		return networkError("", fmt.Errorf("decode response: %w", err))
	}

	log.Debug("request finished", "status", resp.StatusCode, "elapsed", time.Since(start))
	return nil
}

func canceled(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
}
