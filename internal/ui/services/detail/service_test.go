package detail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieflix/internal/domain"
	"movieflix/internal/omdb"
)

func newTestService() *Service {
	return NewService(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBeginResetsRecordAndRating(t *testing.T) {
	s := newTestService()

	ticket := s.Begin("tt1")
	require.True(t, s.Resolve(ticket.Generation, "tt1", domain.MovieDetail{ID: "tt1", Title: "Alien"}, nil))
	s.SetUserRating(8)

	next := s.Begin("tt2")
	assert.ErrorIs(t, ticket.Ctx.Err(), context.Canceled)
	assert.NoError(t, next.Ctx.Err())
	assert.True(t, s.Loading())
	assert.Equal(t, 0, s.UserRating())
	_, ok := s.Detail()
	assert.False(t, ok)
}

func TestStaleDetailIsDropped(t *testing.T) {
	s := newTestService()

	first := s.Begin("tt1")
	second := s.Begin("tt2")

	assert.False(t, s.Resolve(first.Generation, "tt1", domain.MovieDetail{ID: "tt1"}, nil))
	assert.True(t, s.Loading())

	assert.True(t, s.Resolve(second.Generation, "tt2", domain.MovieDetail{ID: "tt2", Title: "Heat"}, nil))
	d, ok := s.Detail()
	require.True(t, ok)
	assert.Equal(t, "Heat", d.Title)
	assert.False(t, s.Loading())
}

func TestReselectSameIDDropsOlderResponse(t *testing.T) {
	s := newTestService()

	first := s.Begin("tt1")
	s.Clear()
	second := s.Begin("tt1")

	assert.False(t, s.Resolve(first.Generation, "tt1", domain.MovieDetail{Title: "old"}, nil))
	assert.True(t, s.Resolve(second.Generation, "tt1", domain.MovieDetail{Title: "new"}, nil))

	d, _ := s.Detail()
	assert.Equal(t, "new", d.Title)
	assert.Equal(t, "tt1", d.ID)
}

func TestResolveAfterClearIsIgnored(t *testing.T) {
	s := newTestService()

	ticket := s.Begin("tt1")
	s.Clear()

	assert.ErrorIs(t, ticket.Ctx.Err(), context.Canceled)
	assert.False(t, s.Resolve(ticket.Generation, "tt1", domain.MovieDetail{}, nil))
	assert.Empty(t, s.ID())
}

func TestErrorsAreStoredCancellationIsNot(t *testing.T) {
	s := newTestService()

	ticket := s.Begin("tt1")
	assert.False(t, s.Resolve(ticket.Generation, "tt1", domain.MovieDetail{}, omdb.ErrCanceled))
	assert.Empty(t, s.Error())
	assert.True(t, s.Loading())

	assert.True(t, s.Resolve(ticket.Generation, "tt1", domain.MovieDetail{}, errors.New("Incorrect IMDb ID.")))
	assert.Equal(t, "Incorrect IMDb ID.", s.Error())
	assert.False(t, s.Loading())
}

func TestSetUserRatingBounds(t *testing.T) {
	s := newTestService()
	s.Begin("tt1")

	s.SetUserRating(10)
	assert.Equal(t, 10, s.UserRating())
	s.SetUserRating(11)
	assert.Equal(t, 0, s.UserRating())
	s.SetUserRating(1)
	assert.Equal(t, 1, s.UserRating())
	s.SetUserRating(0)
	assert.Equal(t, 0, s.UserRating())
}
