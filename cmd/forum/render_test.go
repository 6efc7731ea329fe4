package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"forum/domain"

	"github.com/stretchr/testify/require"
)

func TestRenderFeed_Oldest_First(t *testing.T) {
	req := require.New(t)

	now := time.Now()
	view := domain.FeedView{Messages: []domain.Message{
		{ID: "1", AuthorDisplayName: "Alice", Text: "first post", CreatedAt: now},
		{ID: "2", AuthorDisplayName: "Bob", Text: "second post", CreatedAt: now.Add(time.Minute)},
	}}

	var buf bytes.Buffer
	renderFeed(&buf, view)
	out := buf.String()

	req.Contains(out, "Alice")
	req.Contains(out, "Bob")
	req.Less(strings.Index(out, "first post"), strings.Index(out, "second post"))
}
