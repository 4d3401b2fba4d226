package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"movieflix/internal/domain"
)

func TestEntryFromDetail(t *testing.T) {
	e := EntryFromDetail(domain.MovieDetail{
		ID: "tt1", Title: "Heat", IMDbRating: "7.5", Runtime: "120 min", RuntimeMinutes: 120,
	}, 8)

	assert.Equal(t, "tt1", e.ID)
	assert.Equal(t, 8, e.UserRating)
	assert.Equal(t, domain.Number(7.5), e.IMDbRating)
	assert.Equal(t, domain.Number(120), e.RuntimeMinutes)
}

func TestEntryFromDetailLeavesMissingValuesUnknown(t *testing.T) {
	e := EntryFromDetail(domain.MovieDetail{ID: "tt2", Title: "Short", IMDbRating: "N/A", Runtime: "N/A"}, 6)

	assert.False(t, e.IMDbRating.Known())
	assert.False(t, e.RuntimeMinutes.Known())
}
