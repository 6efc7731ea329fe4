package main

import (
	"io"
	"time"

	"forum/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var authorStyle = color.New(color.FgCyan, color.OpBold)

// renderFeed prints the view oldest first, one row per message.
func renderFeed(w io.Writer, view domain.FeedView) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Time", "Author", "Message"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range view.Messages {
		table.Append([]string{
			m.CreatedAt.Local().Format(time.DateTime),
			authorStyle.Render(m.AuthorDisplayName),
			m.Text,
		})
	}
	table.Render()
}
