// Package importer converts externally-sourced event records into
// countdowns.
package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
)

// ErrInvalidSourceEvent marks a source event missing its required name
// or date, or carrying a date that cannot be parsed.
var ErrInvalidSourceEvent = errors.New("invalid source event")

// ColorResolver maps a category name to a display color.
type ColorResolver func(name string) string

// Defaults applied to every imported event.
const (
	defaultCategory     = "Event"
	defaultReminderDays = 1
)

// Import converts a source event into a countdown. Name and date are
// required; everything else is optional and simply omitted from the
// synthesized notes when absent. Pass a nil resolver to use the fixed
// event-segment color table.
func Import(ev model.SourceEvent, resolve ColorResolver) (*model.Countdown, error) {
	if ev.Name == "" || ev.Date == "" {
		return nil, fmt.Errorf("%w: name and date are required", ErrInvalidSourceEvent)
	}

	date, err := parseEventDate(ev.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSourceEvent, err)
	}

	category := ev.Category
	if category == "" {
		category = defaultCategory
	}

	if resolve == nil {
		resolve = model.EventCategoryColor
	}

	return &model.Countdown{
		ID:           uuid.NewString(),
		Title:        ev.Name,
		Date:         date,
		Category:     category,
		Color:        resolve(category),
		Notes:        buildNotes(ev),
		Reminder:     true,
		ReminderDays: defaultReminderDays,
		ImageURL:     ev.Image,
	}, nil
}

// buildNotes concatenates whichever optional fields are present, in
// fixed order: location, price range, genre, then a trailing link line.
func buildNotes(ev model.SourceEvent) string {
	var notes strings.Builder

	if ev.Location != "" {
		fmt.Fprintf(&notes, "Location: %s\n", ev.Location)
	} else if ev.Venue != "" {
		notes.WriteString("Venue: " + ev.Venue)
		if ev.City != "" {
			notes.WriteString(", " + ev.City)
		}
		if ev.State != "" {
			notes.WriteString(", " + ev.State)
		}
		if ev.Country != "" {
			notes.WriteString(", " + ev.Country)
		}
		notes.WriteByte('\n')
	}

	if ev.PriceRange != "" {
		fmt.Fprintf(&notes, "Price Range: %s\n", ev.PriceRange)
	}

	if ev.Genre != "" && ev.Genre != ev.Category {
		notes.WriteString("Genre: " + ev.Genre)
		if ev.SubGenre != "" && ev.SubGenre != ev.Genre {
			notes.WriteString(" / " + ev.SubGenre)
		}
		notes.WriteByte('\n')
	}

	if ev.URL != "" {
		fmt.Fprintf(&notes, "\nTickets & more info: %s", ev.URL)
	}

	return strings.TrimSpace(notes.String())
}

func parseEventDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", raw)
}
