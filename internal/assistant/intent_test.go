package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlainQuestion(t *testing.T) {
	intent := Parse("how many days until my birthday?")
	assert.False(t, intent.EventSearch)
	assert.Empty(t, intent.Query)
}

func TestParseEventSearchWithLocation(t *testing.T) {
	intent := Parse("find concerts in Austin")
	assert.True(t, intent.EventSearch)
	assert.Equal(t, "music", intent.EventType)
	assert.Equal(t, "concert", intent.Query)
	assert.Equal(t, "austin", intent.Location)
}

func TestParseCoreTermCollapse(t *testing.T) {
	intent := Parse("show me a movie in Chicago")
	assert.True(t, intent.EventSearch)
	assert.Equal(t, "film", intent.EventType)
	assert.Equal(t, "movie", intent.Query)
	assert.Equal(t, "chicago", intent.Location)
}

func TestParseWithoutLocation(t *testing.T) {
	intent := Parse("search for basketball games")
	assert.True(t, intent.EventSearch)
	assert.Equal(t, "sports", intent.EventType)
	assert.Equal(t, "for basketball games", intent.Query)
	assert.Empty(t, intent.Location)
}
