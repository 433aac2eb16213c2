package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(language.AmericanEnglish, Match())
	assert.Equal(language.AmericanEnglish, Match("en-GB"))
	assert.Equal(language.AmericanEnglish, Match("fr-FR"))
	assert.Equal(language.AmericanEnglish, Match("not a locale"))
	assert.Equal(language.German, Match("de-AT", "en-US"))
	assert.Equal(language.German, Match("xx", "de"))
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(Match())

	SetLanguage(language.AmericanEnglish)
	assert.Equal("idle", From("idle"))
	assert.Equal("line 3 oops", From("line %d %v", 3, "oops"))
	assert.Equal("no translation 5", From("no translation %d", 5))

	SetLanguage(language.German)
	assert.Equal("bereit", From("idle"))
	assert.Equal("Zeile 3 oops", From("line %d %v", 3, "oops"))
	assert.Equal("no translation 5", From("no translation %d", 5))
}
