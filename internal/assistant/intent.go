package assistant

import (
	"regexp"
	"strings"
)

// Intent is what a chat message asks for: either a plain question or an
// event search with extracted query, location and type.
type Intent struct {
	EventSearch bool
	Query       string
	Location    string
	EventType   string
}

// eventSearchTerms flag a message as an event-search request.
var eventSearchTerms = []string{
	"find", "search", "look for", "discover", "show me",
	"events", "concerts", "festivals",
	"movie", "movies", "film", "films", "cinema",
	"theater", "theatre", "show", "shows",
	"sports", "game", "games", "match", "matches",
}

// eventTypeKeywords maps message keywords to search event types;
// matched in declaration order.
var eventTypeKeywords = []struct {
	term string
	kind string
}{
	{"concert", "music"},
	{"concerts", "music"},
	{"music", "music"},
	{"festival", "music"},
	{"festivals", "music"},
	{"movie", "film"},
	{"movies", "film"},
	{"film", "film"},
	{"films", "film"},
	{"cinema", "film"},
	{"theater", "arts"},
	{"theatre", "arts"},
	{"play", "arts"},
	{"art", "arts"},
	{"arts", "arts"},
	{"sports", "sports"},
	{"sport", "sports"},
	{"game", "sports"},
	{"games", "sports"},
	{"match", "sports"},
}

func keywordEventType(term string) (string, bool) {
	for _, kw := range eventTypeKeywords {
		if kw.term == term {
			return kw.kind, true
		}
	}
	return "", false
}

var (
	actionWords  = regexp.MustCompile(`(?i)find|search|look for|discover|show me`)
	coreTermForm = regexp.MustCompile(`(?i)^(a |the )?(concert|movie|film|game|match|show|play)s?$`)
	articles     = regexp.MustCompile(`(?i)^(a |the )`)
)

// Parse extracts the intent from a chat message. Keyword matching only,
// no model round-trip.
func Parse(message string) Intent {
	lower := strings.ToLower(message)

	intent := Intent{}
	for _, term := range eventSearchTerms {
		if strings.Contains(lower, term) {
			intent.EventSearch = true
			break
		}
	}
	if !intent.EventSearch {
		return intent
	}

	for _, kw := range eventTypeKeywords {
		if strings.Contains(lower, kw.term) {
			intent.EventType = kw.kind
			break
		}
	}

	if strings.Contains(lower, " in ") {
		parts := strings.SplitN(lower, " in ", 2)
		intent.Query = strings.TrimSpace(actionWords.ReplaceAllString(parts[0], ""))
		intent.Location = strings.TrimSpace(parts[1])

		// A query that is just an event type collapses to its core term.
		if coreTermForm.MatchString(intent.Query) {
			core := strings.TrimSuffix(articles.ReplaceAllString(intent.Query, ""), "s")
			if eventType, ok := keywordEventType(core); ok {
				intent.EventType = eventType
			}
			intent.Query = core
		}
	} else {
		intent.Query = strings.TrimSpace(actionWords.ReplaceAllString(lower, ""))
	}

	return intent
}
