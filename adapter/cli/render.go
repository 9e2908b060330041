package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	meetingQueries "github.com/felixgeelhaar/meetdesk/internal/meetings/application/queries"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// DateLayout is the format for every date read or printed by the CLI.
const DateLayout = "2006-01-02 15:04"

var (
	successStyle = color.New(color.FgGreen, color.OpBold)
	failureStyle = color.New(color.FgRed, color.OpBold)
	headerStyle  = color.New(color.BgBlack, color.FgGreen)
)

// ParseDateTime reads a local date in DateLayout.
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-MM-dd HH:mm", value)
	}
	return t, nil
}

// FormatDateTime prints t in DateLayout, local time.
func FormatDateTime(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// Success prints a green status line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Failure prints a red status line.
func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, failureStyle.Render(fmt.Sprintf(format, args...)))
}

// RenderMeetings prints meetings as a table.
func RenderMeetings(w io.Writer, meetings []meetingQueries.MeetingDTO) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Organizer", "Category", "Type", "From", "To", "Attendees", "Description"})
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

	for _, m := range meetings {
		table.Append([]string{
			m.Name,
			m.Organizer,
			m.Category,
			m.Kind,
			FormatDateTime(m.From),
			FormatDateTime(m.To),
			strconv.Itoa(len(m.Attendees)),
			m.Description,
		})
	}
	table.Render()
}

// RenderMeeting prints one meeting and its attendees.
func RenderMeeting(w io.Writer, m meetingQueries.MeetingDTO) {
	fmt.Fprintln(w, headerStyle.Render(" "+m.Name+" "))
	fmt.Fprintf(w, "  Organizer:   %s\n", m.Organizer)
	fmt.Fprintf(w, "  Description: %s\n", m.Description)
	fmt.Fprintf(w, "  Category:    %s\n", m.Category)
	fmt.Fprintf(w, "  Type:        %s\n", m.Kind)
	fmt.Fprintf(w, "  When:        %s - %s\n", FormatDateTime(m.From), FormatDateTime(m.To))
	fmt.Fprintf(w, "  ID:          %s\n", m.ID)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Attendee", "From", "To"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, a := range m.Attendees {
		table.Append([]string{a.Username, FormatDateTime(a.From), FormatDateTime(a.To)})
	}
	table.Render()
}
