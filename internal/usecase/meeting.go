package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"go-veloce-backend/internal/domain"
	"go-veloce-backend/pkg/apperror"
	"go-veloce-backend/pkg/calendar"
	"go-veloce-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

type meetingUsecase struct {
	sender         email.Sender
	validate       *validator.Validate
	adminEmail     string
	organizerEmail string
	now            func() time.Time
}

// NewMeetingUsecase creates a new meeting usecase. organizerEmail is the
// outbound address the invite's ORGANIZER line is bound to.
func NewMeetingUsecase(sender email.Sender, validate *validator.Validate, adminEmail, organizerEmail string) domain.MeetingUsecase {
	return &meetingUsecase{
		sender:         sender,
		validate:       validate,
		adminEmail:     adminEmail,
		organizerEmail: organizerEmail,
		now:            time.Now,
	}
}

// meetingEmailTemplate is the HTML body for meeting notifications
const meetingEmailTemplate = `<h3>New Meeting Request</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Date:</strong> {{.When}}</p>
<p><strong>Topic:</strong> {{.Topic}}</p>
`

type meetingEmailData struct {
	Name  string
	Email string
	When  string
	Topic string
}

// ScheduleMeeting validates the request, derives the 30-minute meeting
// window, builds the calendar invite, and sends one notification email to
// the admin address with the submitter as CC.
func (uc *meetingUsecase) ScheduleMeeting(ctx context.Context, req *domain.MeetingRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return err
	}

	window, err := ComputeMeetingWindow(req.Date, req.Time)
	if err != nil {
		return apperror.BadRequest(domain.ErrMeetingBadFormat)
	}

	name := strings.TrimSpace(req.Name)
	attendeeEmail := strings.TrimSpace(req.Email)
	topic := strings.TrimSpace(req.Topic)

	summaryTopic := topic
	if summaryTopic == "" {
		summaryTopic = domain.DefaultSummaryTopic
	}
	descriptionTopic := topic
	if descriptionTopic == "" {
		descriptionTopic = domain.DefaultTopic
	}
	emailTopic := topic
	if emailTopic == "" {
		emailTopic = domain.EmailTopicFallback
	}

	now := uc.now()
	invite := calendar.Invite{
		UID:            calendar.NewUID(now),
		Stamp:          now,
		Start:          window.Start,
		End:            window.End,
		Summary:        fmt.Sprintf("Meeting with %s: %s", name, summaryTopic),
		Description:    fmt.Sprintf("Name: %s\nEmail: %s\nTopic: %s", name, attendeeEmail, descriptionTopic),
		OrganizerName:  domain.OrganizerName,
		OrganizerEmail: uc.organizerEmail,
		AttendeeName:   name,
		AttendeeEmail:  attendeeEmail,
	}

	when := window.Start.Format("Jan 2, 2006 at 3:04 PM")

	tmpl, err := template.New("meeting").Parse(meetingEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}
	var htmlBody bytes.Buffer
	data := meetingEmailData{
		Name:  name,
		Email: attendeeEmail,
		When:  when,
		Topic: emailTopic,
	}
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	textBody := fmt.Sprintf(
		"You have a new meeting request from %s (%s) for %s. Topic: %s",
		name, attendeeEmail, when, emailTopic,
	)

	msg := &email.Message{
		To:      []string{uc.adminEmail},
		Cc:      []string{attendeeEmail}, // submitter receives a copy with the invite
		Subject: fmt.Sprintf("New Meeting Request: %s", name),
		Text:    textBody,
		HTML:    htmlBody.String(),
		Attachment: &email.Attachment{
			Filename:    "meeting.ics",
			ContentType: "text/calendar; charset=UTF-8; method=REQUEST",
			Content:     []byte(invite.Render()),
		},
	}

	if err := uc.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send meeting email: %w", err)
	}

	return nil
}

func (uc *meetingUsecase) validateRequest(req *domain.MeetingRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return apperror.BadRequest(domain.ErrMeetingRequired)
	}
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Date) == "" ||
		strings.TrimSpace(req.Time) == "" {
		return apperror.BadRequest(domain.ErrMeetingRequired)
	}
	return nil
}

// ComputeMeetingWindow combines the calendar day of dateStr with the HH:MM
// of timeStr into a start instant in server local time. Any time-of-day
// carried by dateStr is discarded. The end is always start plus the fixed
// meeting duration.
func ComputeMeetingWindow(dateStr, timeStr string) (domain.MeetingWindow, error) {
	hour, minute, err := parseClock(timeStr)
	if err != nil {
		return domain.MeetingWindow{}, err
	}

	day, err := parseDay(dateStr)
	if err != nil {
		return domain.MeetingWindow{}, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
	return domain.MeetingWindow{
		Start: start,
		End:   start.Add(domain.MeetingDuration),
	}, nil
}

// parseClock parses a 24-hour "HH:MM" string.
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time out of range %q", s)
	}
	return hour, minute, nil
}

// parseDay accepts a bare ISO date or a full RFC 3339 instant. Instants are
// converted to local time before the calendar day is taken.
func parseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(time.Local), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
