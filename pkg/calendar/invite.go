// Package calendar builds iCalendar (RFC 5545) meeting invites suitable for
// attaching to notification emails with METHOD:REQUEST.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

const (
	prodID    = "-//Veloce Technology//Website//EN"
	uidDomain = "veloce-technology.com"
)

// Invite describes a single-event calendar document. All fields are plain
// text; Render handles escaping and timestamp formatting.
type Invite struct {
	UID            string
	Stamp          time.Time // document creation time (DTSTAMP)
	Start          time.Time
	End            time.Time
	Summary        string
	Description    string
	OrganizerName  string
	OrganizerEmail string
	AttendeeName   string
	AttendeeEmail  string
}

// NewUID derives an event identifier from the given instant.
// Millisecond precision is sufficient at the site's request rates; it is not
// globally unique under concurrent same-millisecond requests.
func NewUID(now time.Time) string {
	return fmt.Sprintf("%d@%s", now.UnixMilli(), uidDomain)
}

// Render serializes the invite as a VCALENDAR document with CRLF line
// endings. The attendee is marked NEEDS-ACTION while the event itself is
// CONFIRMED; mail clients treat the document as a pending invitation either
// way, so both values are kept as the site has always sent them.
func (inv Invite) Render() string {
	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	writeLine("BEGIN:VCALENDAR")
	writeLine("VERSION:2.0")
	writeLine("PRODID:" + prodID)
	writeLine("METHOD:REQUEST")
	writeLine("BEGIN:VEVENT")
	writeLine("UID:" + inv.UID)
	writeLine("DTSTAMP:" + FormatUTC(inv.Stamp))
	writeLine("DTSTART:" + FormatUTC(inv.Start))
	writeLine("DTEND:" + FormatUTC(inv.End))
	writeLine("SUMMARY:" + escapeText(inv.Summary))
	writeLine("DESCRIPTION:" + escapeText(inv.Description))
	writeLine(fmt.Sprintf("ORGANIZER;CN=%q:mailto:%s", inv.OrganizerName, inv.OrganizerEmail))
	writeLine(fmt.Sprintf("ATTENDEE;RSVP=TRUE;CN=%q;PARTSTAT=NEEDS-ACTION;ROLE=REQ-PARTICIPANT:mailto:%s",
		inv.AttendeeName, inv.AttendeeEmail))
	writeLine("STATUS:CONFIRMED")
	writeLine("END:VEVENT")
	b.WriteString("END:VCALENDAR")

	return b.String()
}

// FormatUTC renders t in the iCalendar UTC "basic" format (YYYYMMDDTHHMMSSZ).
func FormatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeText escapes TEXT property values per RFC 5545 section 3.3.11:
// backslash, semicolon, comma, and newline.
func escapeText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
