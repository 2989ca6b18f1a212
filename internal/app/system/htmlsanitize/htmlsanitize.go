// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans untrusted HTML before it is persisted.
// Assessment item notes are the one field that accepts rich text; everything
// else in the API is plain strings. The policy allows basic formatting,
// lists, tables, code blocks, and http(s) links, and strips scripts, event
// handler attributes, iframes, and style blocks.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	notesPolicy  = buildNotesPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

func buildNotesPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td")
	return p
}

// Sanitize returns s with disallowed markup removed. Safe formatting is
// preserved as-is; link elements gain rel="nofollow".
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return notesPolicy.Sanitize(s)
}

// StripTags removes all markup and returns the text content only. Used when
// rich-text fields are rendered into logs or plain-text exports.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return strictPolicy.Sanitize(s)
}

// IsPlainText reports whether s contains no HTML tags. A lone angle bracket
// does not count as a tag.
func IsPlainText(s string) bool {
	lt := strings.Index(s, "<")
	if lt == -1 {
		return true
	}
	return !strings.Contains(s[lt:], ">")
}
