package domain

import "time"

// FeedView is an oldest-first projection of the feed.
// It is recomputed on every load and never persisted.
type FeedView struct {
	Messages []Message
	LoadedAt time.Time
}

func (v FeedView) Len() int {
	return len(v.Messages)
}

// Last returns the most recent message of the view.
func (v FeedView) Last() (Message, bool) {
	if len(v.Messages) == 0 {
		return Message{}, false
	}
	return v.Messages[len(v.Messages)-1], true
}

// OrderField names the key a store sorts feed records by.
type OrderField string

const (
	// OrderByCreatedAt sorts on the client-assigned timestamp.
	OrderByCreatedAt OrderField = "createdAt"
	// OrderBySequence sorts on the store-assigned append sequence.
	OrderBySequence OrderField = "sequence"
)

func (f OrderField) Valid() bool {
	return f == OrderByCreatedAt || f == OrderBySequence
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}
