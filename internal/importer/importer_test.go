package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
)

func TestImportSynthesizesNotes(t *testing.T) {
	countdown, err := Import(model.SourceEvent{
		Name:       "Jazz Night",
		Date:       "2030-01-01T20:00:00Z",
		Venue:      "Blue Note",
		City:       "NYC",
		PriceRange: "$20-$40",
		URL:        "http://x",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Jazz Night", countdown.Title)
	assert.Equal(t,
		"Venue: Blue Note, NYC\nPrice Range: $20-$40\n\nTickets & more info: http://x",
		countdown.Notes)
	assert.NotContains(t, countdown.Notes, "Genre:")
}

func TestImportPrefersLocationOverVenue(t *testing.T) {
	countdown, err := Import(model.SourceEvent{
		Name:     "Stadium Show",
		Date:     "2030-05-01",
		Location: "Big Arena, Austin, TX, USA",
		Venue:    "Big Arena",
		City:     "Austin",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Location: Big Arena, Austin, TX, USA", countdown.Notes)
}

func TestImportGenreLine(t *testing.T) {
	countdown, err := Import(model.SourceEvent{
		Name:     "Rock Fest",
		Date:     "2030-07-04T18:00:00Z",
		Category: "Music",
		Genre:    "Rock",
		SubGenre: "Hard Rock",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Genre: Rock / Hard Rock", countdown.Notes)

	// Genre equal to category is dropped entirely.
	countdown, err = Import(model.SourceEvent{
		Name:     "Misc Night",
		Date:     "2030-07-04",
		Category: "Music",
		Genre:    "Music",
	}, nil)
	require.NoError(t, err)
	assert.Empty(t, countdown.Notes)

	// SubGenre identical to genre is not repeated.
	countdown, err = Import(model.SourceEvent{
		Name:     "Indie Night",
		Date:     "2030-07-04",
		Category: "Music",
		Genre:    "Indie",
		SubGenre: "Indie",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Genre: Indie", countdown.Notes)
}

func TestImportRequiresNameAndDate(t *testing.T) {
	_, err := Import(model.SourceEvent{Date: "2030-01-01"}, nil)
	assert.ErrorIs(t, err, ErrInvalidSourceEvent)

	_, err = Import(model.SourceEvent{Name: "No Date"}, nil)
	assert.ErrorIs(t, err, ErrInvalidSourceEvent)

	_, err = Import(model.SourceEvent{Name: "Bad Date", Date: "sometime soon"}, nil)
	assert.ErrorIs(t, err, ErrInvalidSourceEvent)
}

func TestImportDefaults(t *testing.T) {
	countdown, err := Import(model.SourceEvent{
		Name:  "Mystery Event",
		Date:  "2030-01-01T20:00:00Z",
		Image: "http://img",
	}, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, countdown.ID)
	assert.Equal(t, "Event", countdown.Category)
	assert.Equal(t, "#4CAF50", countdown.Color)
	assert.True(t, countdown.Reminder)
	assert.Equal(t, 1, countdown.ReminderDays)
	assert.Equal(t, "http://img", countdown.ImageURL)
	assert.Equal(t, time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC), countdown.Date)
}

func TestImportSegmentColors(t *testing.T) {
	for category, want := range map[string]string{
		"Music":          "#FF5722",
		"Sports":         "#2196F3",
		"Arts & Theatre": "#9C27B0",
		"Film":           "#F44336",
		"Miscellaneous":  "#607D8B",
		"Something Else": "#4CAF50",
	} {
		countdown, err := Import(model.SourceEvent{Name: "E", Date: "2030-01-01", Category: category}, nil)
		require.NoError(t, err)
		assert.Equal(t, want, countdown.Color, "category %s", category)
	}
}

func TestImportCustomResolver(t *testing.T) {
	countdown, err := Import(model.SourceEvent{Name: "E", Date: "2030-01-01", Category: "Music"},
		func(string) string { return "#123456" })
	require.NoError(t, err)
	assert.Equal(t, "#123456", countdown.Color)
}
