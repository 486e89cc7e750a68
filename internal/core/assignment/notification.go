package assignment

import (
	"fmt"
	"strings"
	"time"
)

// Line is one house entry in a notification body.
type Line struct {
	HouseName string
	Quantity  int
	Note      string
}

// Subject returns the notification subject for a formatted date.
func Subject(dateFormatted string) string {
	return fmt.Sprintf("Work Assignment - %s", dateFormatted)
}

// Body renders the deterministic notification template: greeting, date
// line, one line per house, closing line.
func Body(workerName string, lines []Line, dateFormatted string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s,\n\n", workerName)
	fmt.Fprintf(&b, "Date: %s\n", dateFormatted)
	b.WriteString("You have been assigned to the following houses:\n\n")

	parts := make([]string, len(lines))
	for i, line := range lines {
		part := fmt.Sprintf("- %s → %d bedding sets", line.HouseName, line.Quantity)
		if line.Note != "" {
			part += fmt.Sprintf(" | Note: %s", line.Note)
		}
		parts[i] = part
	}
	b.WriteString(strings.Join(parts, "\n"))

	b.WriteString("\n\nGood luck with your work!")

	return b.String()
}

// FormatDate converts a YYYY-MM-DD date to the DD.MM.YYYY display form.
// Unparseable input is returned unchanged so legacy rows still render.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006")
}

// FormatTimestamp renders a record timestamp as DD.MM.YYYY HH:MM.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}
