// internal/app/system/inputval/inputval.go

// Package inputval holds pure input validators used by handlers before any
// core or store call. Validators take strings or scalars and return booleans;
// mapping failures to field error responses happens in the feature layer.
package inputval

import (
	"regexp"
	"strings"
)

// Score bounds for assessment items.
const (
	MinScore = 0
	MaxScore = 10
)

// Template version pattern: "1", "1.2", "1.2.3", with "*" allowed as the
// final segment ("1.2.*").
var semVerRe = regexp.MustCompile(`^(\d+\.)?(\d+\.)?(\*|\d+)$`)

// IsValidSemVer reports whether v is an acceptable template version string.
func IsValidSemVer(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	return semVerRe.MatchString(v)
}

// IsValidScore reports whether n lies inside the scoring scale.
func IsValidScore(n int) bool {
	return n >= MinScore && n <= MaxScore
}

// NotesMaxLen caps free-text notes on an item.
const NotesMaxLen = 4000

// IsValidNotes reports whether raw notes text fits the storage cap. The
// check runs on the raw input; sanitization only ever shortens it.
func IsValidNotes(s string) bool {
	return len(s) <= NotesMaxLen
}

// IsValidSlug reports whether s is a lowercase URL slug (letters, digits,
// single hyphens, no leading or trailing hyphen).
func IsValidSlug(s string) bool {
	s = strings.TrimSpace(s)
	return slugRe.MatchString(s)
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
