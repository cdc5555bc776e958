package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/concert-watch-rooms/internal/model"
)

func TestParseInfo(t *testing.T) {
	ev := ParseInfo("x", "Artist: SZA\nDate: March 20th 2021\n\nTime: 10:00 AM PST\ngarbage line\nGenre: R&B \nDescription: Ctrl: the tour")
	assert.Equal(t, "x", ev.ID)
	assert.Equal(t, "SZA", ev.ArtistName)
	assert.Equal(t, "March 20th 2021", ev.ScheduledDate)
	assert.Equal(t, "10:00 AM PST", ev.ScheduledTime)
	assert.Equal(t, "R&B", ev.Genre)
	assert.Equal(t, "Ctrl: the tour", ev.Description)
	assert.Equal(t, model.DefaultPrice, ev.Price)
}

func TestParseInfo_CaseInsensitiveKeys(t *testing.T) {
	ev := ParseInfo("y", "ARTIST: Owl City\nprice: $5")
	assert.Equal(t, "Owl City", ev.ArtistName)
	assert.Equal(t, "$5", ev.Price)
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 15, c.Len())

	list := c.List()
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "Nicki Minaj", list[0].ArtistName)
	assert.Equal(t, "Frank Ocean", list[10].ArtistName)

	ev, err := c.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "Taylor Swift", ev.ArtistName)
	assert.Equal(t, "Alternative", ev.Genre)
	assert.Equal(t, "Free", ev.Price)

	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrConcertNotFound)
}

func TestList_ReturnsCopy(t *testing.T) {
	c := Default()
	list := c.List()
	list[0].ArtistName = "changed"
	ev, _ := c.Get("1")
	assert.Equal(t, "Nicki Minaj", ev.ArtistName)
}

func TestSearch(t *testing.T) {
	c := Default()
	assert.Len(t, c.Search(""), 15)

	hits := c.Search("nicki")
	require.Len(t, hits, 2)
	assert.Equal(t, "1", hits[0].ID)
	assert.Equal(t, "9", hits[1].ID)

	assert.Len(t, c.Search("AFROBEATS"), 3)
	assert.Empty(t, c.Search("polka"))
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]model.ConcertEvent{{ID: "a"}, {ID: "a"}})
	assert.Error(t, err)

	_, err = New([]model.ConcertEvent{{ID: ""}})
	assert.Error(t, err)
}
