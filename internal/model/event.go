package model

// DefaultEventColor covers imported events whose segment has no entry
// in EventCategoryColors.
const DefaultEventColor = "#4CAF50"

// EventCategoryColors maps the ticketing API's segment taxonomy to
// display colors for imported countdowns.
var EventCategoryColors = map[string]string{
	"Music":          "#FF5722",
	"Sports":         "#2196F3",
	"Arts & Theatre": "#9C27B0",
	"Film":           "#F44336",
	"Miscellaneous":  "#607D8B",
	"Event":          "#4CAF50",
}

// EventCategoryColor looks up the segment color, falling back to the
// default event color.
func EventCategoryColor(name string) string {
	if color, ok := EventCategoryColors[name]; ok {
		return color
	}
	return DefaultEventColor
}

// SourceEvent is an externally-sourced event record, as returned by the
// ticketing search or supplied to the importer. Every field is optional
// at the type level; the importer validates what it needs.
type SourceEvent struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Date       string `json:"date,omitempty"`
	LocalDate  string `json:"localDate,omitempty"`
	LocalTime  string `json:"localTime,omitempty"`
	Venue      string `json:"venue,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	Location   string `json:"location,omitempty"`
	Image      string `json:"image,omitempty"`
	URL        string `json:"url,omitempty"`
	Category   string `json:"category,omitempty"`
	Genre      string `json:"genre,omitempty"`
	SubGenre   string `json:"subGenre,omitempty"`
	PriceRange string `json:"priceRange,omitempty"`
}
