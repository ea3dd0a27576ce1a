package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/minichat/internal/client/client"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.Green.Sprintf(format, args...))
}

func failure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.Red.Sprintf(format, args...))
}

func info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, color.Cyan.Sprintf(format, args...))
}

// renderMessages prints msgs as a table, or a notice when there are none.
func renderMessages(w io.Writer, msgs []client.Message) {
	if len(msgs) == 0 {
		info(w, "No messages")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "User", "Message"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(lo.Map(msgs, func(m client.Message, _ int) []string {
		return []string{strconv.FormatUint(m.Sequence, 10), m.Username, m.Text}
	}))
	table.Render()
}
