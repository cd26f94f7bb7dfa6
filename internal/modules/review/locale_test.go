package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateLayout(t *testing.T) {
	cases := map[string]string{
		"":                       "1/2/2006",
		"en-US,en;q=0.9":         "1/2/2006",
		"en-GB":                  "02/01/2006",
		"de-DE,de;q=0.9":         "2.1.2006",
		"fr-FR":                  "02/01/2006",
		"ru":                     "02.01.2006",
		"ja-JP":                  "2006/1/2",
		"xx":                     "1/2/2006",
		"not a language header!": "1/2/2006",
	}

	for header, want := range cases {
		assert.Equal(t, want, DateLayout(header), header)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "3/7/2026", FormatDate("2026-03-07", "1/2/2006"))
	assert.Equal(t, "07.03.2026", FormatDate("2026-03-07T10:00:00+03:00", "02.01.2006"))
	assert.Equal(t, "1/15/2024", FormatDate("2024-01-15T10:00:00", "1/2/2006"))
	assert.Equal(t, "15.1.2024", FormatDate("2024-01-15T23:59", "2.1.2006"))
	assert.Equal(t, "yesterday", FormatDate("yesterday", "1/2/2006"))
	assert.Equal(t, "", FormatDate("", "1/2/2006"))
}
