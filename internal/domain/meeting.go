package domain

import (
	"context"
	"time"
)

// Scheduling endpoint messages and defaults.
const (
	MsgMeetingScheduled = "Meeting scheduled successfully!"
	ErrMeetingRequired  = "Name, email, date, and time are required."
	ErrMeetingBadFormat = "Invalid date or time format."
	ErrMeetingFailed    = "Failed to schedule meeting."

	// Topic fallbacks. The invite summary, the invite description, and the
	// notification body each use a different label when topic is omitted;
	// these match what the site has always sent.
	DefaultSummaryTopic = "Consultation"
	DefaultTopic        = "General Inquiry"
	EmailTopicFallback  = "N/A"

	OrganizerName = "Veloce Admin"

	// MeetingDuration is fixed; requests cannot ask for longer slots.
	MeetingDuration = 30 * time.Minute
)

// MeetingRequest represents a meeting-scheduling form submission.
// Date is an ISO date (bare YYYY-MM-DD or a full RFC 3339 instant whose
// time-of-day is discarded); Time is a 24-hour HH:MM string.
type MeetingRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Topic string `json:"topic"`
}

// MeetingWindow is the derived start/end of a requested meeting, in server
// local time.
type MeetingWindow struct {
	Start time.Time
	End   time.Time
}

// MeetingUsecase defines the interface for meeting-scheduling operations
type MeetingUsecase interface {
	// ScheduleMeeting validates the request, builds the calendar invite, and
	// sends the notification email
	ScheduleMeeting(ctx context.Context, req *MeetingRequest) error
}
