// Package domain contains core concepts of the forum feed.
// This file defines Message records and related rules.
// Messages are immutable once appended to the feed.
package domain

import (
	"strings"
	"time"
)

// Message represents one immutable post of the feed.
type Message struct {
	ID                string // assigned by the store on append
	AuthorID          string
	AuthorDisplayName string // captured at post time, never re-resolved
	Text              string
	CreatedAt         time.Time // posting client's clock
}

// NormalizeText trims surrounding whitespace.
// An empty result means the submission must be dropped.
func NormalizeText(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, trimmed != ""
}
