// Package ics emits a day plan as an iCalendar document that Google
// Calendar, Apple Calendar, and Outlook can import.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/yeskala/dayplan/internal/models"
	"github.com/yeskala/dayplan/internal/planner"
)

const prodID = "-//Dayplan//AI Time Planner//EN"

// timestampLayout is local wall-clock time with no zone suffix.
const timestampLayout = "20060102T150405"

// Build renders blocks as a VCALENDAR document for the given day. Blocks
// whose start or end does not parse as HH:MM are silently skipped. Lines are
// CRLF-terminated per RFC 5545.
func Build(day time.Time, now time.Time, blocks []models.ScheduleBlock) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for idx, block := range blocks {
		start, ok := combine(day, block.Start)
		if !ok {
			continue
		}
		end, ok := combine(day, block.End)
		if !ok {
			continue
		}

		task := block.Task
		if task == "" {
			task = "Block"
		}

		lines = append(lines,
			"BEGIN:VEVENT",
			fmt.Sprintf("UID:%s-%d@dayplan", day.Format("20060102"), idx),
			"DTSTAMP:"+now.Format(timestampLayout),
			"DTSTART:"+start.Format(timestampLayout),
			"DTEND:"+end.Format(timestampLayout),
			"SUMMARY:"+task,
		)

		if block.Note != "" {
			lines = append(lines, "DESCRIPTION:"+Escape(block.Note))
		}

		lines = append(lines, "END:VEVENT")
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

// Escape applies the RFC 5545 TEXT escaping rules: backslash first, then
// newline, comma, and semicolon.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ";", `\;`)
	return s
}

// combine attaches an HH:MM wall-clock string to the given day.
func combine(day time.Time, clock string) (time.Time, bool) {
	hour, minute, err := planner.ParseClock(clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), true
}
