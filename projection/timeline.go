// Package projection builds the local feed view from a store scan.
// Handles ordering only; it does not talk to the store or the UI.
package projection

import (
	"forum/domain"
	"slices"
	"time"
)

// Timeline turns scanned records into an oldest-first view.
type Timeline struct {
	Direction domain.Direction // direction the records were scanned in
}

func NewTimeline(direction domain.Direction) Timeline {
	return Timeline{Direction: direction}
}

// Project never mutates scanned. Equal keys keep the relative order the
// store returned, so an unchanged store always yields the same view.
func (t Timeline) Project(scanned []domain.Message, loadedAt time.Time) domain.FeedView {
	messages := slices.Clone(scanned)
	if t.Direction == domain.Descending {
		slices.Reverse(messages)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return domain.FeedView{Messages: messages, LoadedAt: loadedAt}
}
