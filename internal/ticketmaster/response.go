package ticketmaster

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huiyuan-aiad/CountdownVibes/internal/model"
)

// Wire types for the Discovery API response, limited to the fields the
// reshape reads.

type discoveryResponse struct {
	Embedded *struct {
		Events []discoveryEvent `json:"events"`
	} `json:"_embedded"`
	Page  *Pagination     `json:"page"`
	Links json.RawMessage `json:"_links"`
}

type discoveryEvent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Images []struct {
		Ratio string `json:"ratio"`
		URL   string `json:"url"`
		Width int    `json:"width"`
	} `json:"images"`
	Dates struct {
		Start struct {
			DateTime  string `json:"dateTime"`
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
	} `json:"dates"`
	PriceRanges []struct {
		Min      float64 `json:"min"`
		Max      float64 `json:"max"`
		Currency string  `json:"currency"`
	} `json:"priceRanges"`
	Classifications []struct {
		Segment  *namedRef `json:"segment"`
		Genre    *namedRef `json:"genre"`
		SubGenre *namedRef `json:"subGenre"`
	} `json:"classifications"`
	Embedded *struct {
		Venues []discoveryVenue `json:"venues"`
	} `json:"_embedded"`
}

type discoveryVenue struct {
	Name string `json:"name"`
	City *struct {
		Name string `json:"name"`
	} `json:"city"`
	State *struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
	Country *struct {
		Name string `json:"name"`
	} `json:"country"`
}

type namedRef struct {
	Name string `json:"name"`
}

func (r *namedRef) name() string {
	if r == nil {
		return ""
	}
	return r.Name
}

func reshape(decoded discoveryResponse) *SearchResult {
	result := &SearchResult{
		Events:     []model.SourceEvent{},
		Pagination: decoded.Page,
		Links:      decoded.Links,
	}
	if decoded.Embedded == nil {
		return result
	}

	for _, ev := range decoded.Embedded.Events {
		result.Events = append(result.Events, reshapeEvent(ev))
	}
	return result
}

func reshapeEvent(ev discoveryEvent) model.SourceEvent {
	var venue discoveryVenue
	if ev.Embedded != nil && len(ev.Embedded.Venues) > 0 {
		venue = ev.Embedded.Venues[0]
	}

	venueName := venue.Name
	if venueName == "" {
		venueName = "Unknown venue"
	}
	cityName := "Unknown city"
	if venue.City != nil && venue.City.Name != "" {
		cityName = venue.City.Name
	}
	countryName := "Unknown country"
	if venue.Country != nil && venue.Country.Name != "" {
		countryName = venue.Country.Name
	}
	stateCode := ""
	if venue.State != nil {
		stateCode = venue.State.StateCode
	}

	var locationParts []string
	for _, part := range []string{venue.Name, cityOrEmpty(venue), stateCode, countryOrEmpty(venue)} {
		if part != "" {
			locationParts = append(locationParts, part)
		}
	}

	var priceRange string
	if len(ev.PriceRanges) > 0 {
		r := ev.PriceRanges[0]
		priceRange = fmt.Sprintf("%v-%v %s", r.Min, r.Max, r.Currency)
	}

	category := "Event"
	genre := ""
	subGenre := ""
	if len(ev.Classifications) > 0 {
		c := ev.Classifications[0]
		if name := c.Segment.name(); name != "" {
			category = name
		}
		genre = c.Genre.name()
		subGenre = c.SubGenre.name()
	}

	return model.SourceEvent{
		ID:         ev.ID,
		Name:       ev.Name,
		Date:       ev.Dates.Start.DateTime,
		LocalDate:  ev.Dates.Start.LocalDate,
		LocalTime:  ev.Dates.Start.LocalTime,
		Venue:      venueName,
		City:       cityName,
		State:      stateCode,
		Country:    countryName,
		Location:   strings.Join(locationParts, ", "),
		Image:      bestImage(ev),
		URL:        ev.URL,
		Category:   category,
		Genre:      genre,
		SubGenre:   subGenre,
		PriceRange: priceRange,
	}
}

func cityOrEmpty(v discoveryVenue) string {
	if v.City != nil {
		return v.City.Name
	}
	return ""
}

func countryOrEmpty(v discoveryVenue) string {
	if v.Country != nil {
		return v.Country.Name
	}
	return ""
}

// bestImage prefers a wide 16:9 image over 500px, then any image over
// 500px, then whatever comes first.
func bestImage(ev discoveryEvent) string {
	for _, img := range ev.Images {
		if img.Ratio == "16_9" && img.Width > 500 {
			return img.URL
		}
	}
	for _, img := range ev.Images {
		if img.Width > 500 {
			return img.URL
		}
	}
	if len(ev.Images) > 0 {
		return ev.Images[0].URL
	}
	return ""
}
