package review

import (
	"time"

	"golang.org/x/text/language"
)

var dateLocales = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Russian, "02.01.2006"},
	{language.Japanese, "2006/1/2"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(dateLocales))
	for _, l := range dateLocales {
		tags = append(tags, l.tag)
	}
	return language.NewMatcher(tags)
}()

// DateLayout picks a date layout for an Accept-Language header value.
// Unknown or missing languages fall back to US English.
func DateLayout(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return dateLocales[0].layout
	}

	_, idx, conf := dateMatcher.Match(tags...)
	if conf == language.No {
		return dateLocales[0].layout
	}
	return dateLocales[idx].layout
}

// inputLayouts are the date shapes the backend is known to send. A datetime
// without a zone keeps its wall-clock date.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDate reformats a date in one of inputLayouts. Anything else is returned untouched.
func FormatDate(raw, layout string) string {
	for _, in := range inputLayouts {
		if t, err := time.Parse(in, raw); err == nil {
			return t.Format(layout)
		}
	}
	return raw
}
