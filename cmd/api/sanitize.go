package main

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()

	// markup matches a complete tag, comment or doctype such as <b>, </i>,
	// <img src=x> or <!-- x -->.
	markup = regexp.MustCompile(`<[!/]?[a-zA-Z!-][^<>]*>`)
)

// sanitize strips markup from visitor supplied text. Text without anything
// shaped like a tag is kept as typed, so "x<y" or "I <3 it" survive.
// StrictPolicy escapes entities; they are decoded again because values are
// stored and served as plain text, not HTML.
func sanitize(s string) string {
	if !markup.MatchString(s) {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := sanitize(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
