package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestUse(t *testing.T) {
	assert := assert.New(t)

	defer Use(language.AmericanEnglish)

	Use(language.AmericanEnglish)
	assert.Equal("label start missing", From("label %v missing", "start"))
	assert.Equal("1,024 steps", From("%d steps", 1024))

	Use(language.German)
	assert.Equal("1.024 steps", From("%d steps", 1024))
}
