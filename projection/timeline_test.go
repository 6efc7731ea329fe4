package projection

import (
	"forum/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeline_Project_Descending_Scan(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	scanned := []domain.Message{
		{Text: "three", CreatedAt: now.Add(3 * time.Second)},
		{Text: "two", CreatedAt: now.Add(2 * time.Second)},
		{Text: "one", CreatedAt: now.Add(time.Second)},
	}

	view := NewTimeline(domain.Descending).Project(scanned, now)

	req.Len(view.Messages, 3)
	req.Equal("one", view.Messages[0].Text)
	req.Equal("two", view.Messages[1].Text)
	req.Equal("three", view.Messages[2].Text)
	req.Equal(now, view.LoadedAt)
	// The scan result is left as the store returned it
	req.Equal("three", scanned[0].Text)
}

func TestTimeline_Project_Ascending_Scan(t *testing.T) {
	req := require.New(t)
	scanned := []domain.Message{{Text: "one"}, {Text: "two"}}

	view := NewTimeline(domain.Ascending).Project(scanned, time.Now())

	req.Equal(scanned, view.Messages)
}

func TestTimeline_Project_Empty(t *testing.T) {
	req := require.New(t)
	view := NewTimeline(domain.Descending).Project(nil, time.Now())
	req.NotNil(view.Messages)
	req.Empty(view.Messages)
}
