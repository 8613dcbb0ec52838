package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-veloce-backend/internal/domain"
	"go-veloce-backend/internal/usecase"
	"go-veloce-backend/pkg/apperror"
	"go-veloce-backend/pkg/email"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testAdmin     = "admin@veloce-technology.com"
	testOrganizer = "noreply@veloce-technology.com"
)

// MockSender records dispatched messages
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(msg *email.Message) error {
	return m.Called(msg).Error(0)
}

func newContactUC(sender email.Sender) domain.ContactUsecase {
	return usecase.NewContactUsecase(sender, validator.New(), testAdmin)
}

func newMeetingUC(sender email.Sender) domain.MeetingUsecase {
	return usecase.NewMeetingUsecase(sender, validator.New(), testAdmin, testOrganizer)
}

func TestContactValidation(t *testing.T) {
	cases := []struct {
		name string
		req  domain.ContactRequest
	}{
		{"missing name", domain.ContactRequest{Email: "jane@x.com", Message: "Hello"}},
		{"missing email", domain.ContactRequest{Name: "Jane", Message: "Hello"}},
		{"missing message", domain.ContactRequest{Name: "Jane", Email: "jane@x.com"}},
		{"whitespace only message", domain.ContactRequest{Name: "Jane", Email: "jane@x.com", Message: "   "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockSender)
			uc := newContactUC(sender)

			err := uc.SendContactMessage(context.Background(), &tc.req)

			var appErr *apperror.AppError
			assert.Error(t, err)
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, domain.ErrContactRequired, appErr.Message)
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestContactSend(t *testing.T) {
	t.Run("routes to admin with reply-to submitter", func(t *testing.T) {
		sender := new(MockSender)
		var sent *email.Message
		sender.On("Send", mock.AnythingOfType("*email.Message")).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(0).(*email.Message)
		})

		uc := newContactUC(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			Name:    "Jane",
			Email:   "jane@x.com",
			Message: "Hello there, need help.",
		})

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 1)
		assert.Equal(t, []string{testAdmin}, sent.To)
		assert.Empty(t, sent.Cc)
		assert.Equal(t, "jane@x.com", sent.ReplyTo)
		assert.Equal(t, "New Contact Form Submission from Jane", sent.Subject)
		assert.Nil(t, sent.Attachment)
	})

	t.Run("omitted company falls back to placeholder", func(t *testing.T) {
		sender := new(MockSender)
		var sent *email.Message
		sender.On("Send", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(0).(*email.Message)
		})

		uc := newContactUC(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			Name:    "Jane",
			Email:   "jane@x.com",
			Message: "Hello",
		})

		assert.NoError(t, err)
		assert.Contains(t, sent.Text, "Company: "+domain.DefaultCompany)
		assert.Contains(t, sent.HTML, domain.DefaultCompany)
	})

	t.Run("message newlines become line breaks in HTML", func(t *testing.T) {
		sender := new(MockSender)
		var sent *email.Message
		sender.On("Send", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(0).(*email.Message)
		})

		uc := newContactUC(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			Name:    "Jane",
			Email:   "jane@x.com",
			Company: "Acme",
			Message: "line one\nline two",
		})

		assert.NoError(t, err)
		assert.Contains(t, sent.HTML, "line one<br>line two")
		assert.Contains(t, sent.HTML, "Acme")
	})

	t.Run("send failure is not a client error", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything).Return(errors.New("smtp: 535 auth failed"))

		uc := newContactUC(sender)
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			Name:    "Jane",
			Email:   "jane@x.com",
			Message: "Hello",
		})

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}

func TestMeetingValidation(t *testing.T) {
	valid := domain.MeetingRequest{
		Name:  "Jane",
		Email: "jane@x.com",
		Date:  "2024-03-15",
		Time:  "14:30",
	}

	cases := []struct {
		name   string
		mutate func(*domain.MeetingRequest)
	}{
		{"missing name", func(r *domain.MeetingRequest) { r.Name = "" }},
		{"missing email", func(r *domain.MeetingRequest) { r.Email = "" }},
		{"missing date", func(r *domain.MeetingRequest) { r.Date = "" }},
		{"missing time", func(r *domain.MeetingRequest) { r.Time = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockSender)
			uc := newMeetingUC(sender)

			req := valid
			tc.mutate(&req)
			err := uc.ScheduleMeeting(context.Background(), &req)

			var appErr *apperror.AppError
			assert.Error(t, err)
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, domain.ErrMeetingRequired, appErr.Message)
			sender.AssertNotCalled(t, "Send")
		})
	}

	t.Run("unparseable time is rejected before any send", func(t *testing.T) {
		sender := new(MockSender)
		uc := newMeetingUC(sender)

		req := valid
		req.Time = "half past two"
		err := uc.ScheduleMeeting(context.Background(), &req)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, domain.ErrMeetingBadFormat, appErr.Message)
		sender.AssertNotCalled(t, "Send")
	})
}

func TestComputeMeetingWindow(t *testing.T) {
	t.Run("bare date plus clock", func(t *testing.T) {
		window, err := usecase.ComputeMeetingWindow("2024-03-15", "14:30")
		assert.NoError(t, err)

		wantStart := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
		assert.True(t, window.Start.Equal(wantStart), "start = %v", window.Start)
		assert.True(t, window.End.Equal(wantStart.Add(30*time.Minute)), "end = %v", window.End)
	})

	t.Run("rfc3339 date discards time of day", func(t *testing.T) {
		// Build the input in local time so the calendar day is stable in
		// whatever zone the test runs in.
		dateStr := time.Date(2024, 3, 15, 8, 45, 12, 0, time.Local).Format(time.RFC3339)

		window, err := usecase.ComputeMeetingWindow(dateStr, "14:30")
		assert.NoError(t, err)

		wantStart := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
		assert.True(t, window.Start.Equal(wantStart), "start = %v", window.Start)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, in := range [][2]string{
			{"2024-03-15", "25:00"},
			{"2024-03-15", "14:61"},
			{"2024-03-15", "1430"},
			{"March 15th", "14:30"},
		} {
			_, err := usecase.ComputeMeetingWindow(in[0], in[1])
			assert.Error(t, err, "date=%q time=%q", in[0], in[1])
		}
	})
}

func TestMeetingSend(t *testing.T) {
	t.Run("admin recipient with submitter in cc", func(t *testing.T) {
		sender := new(MockSender)
		var sent *email.Message
		sender.On("Send", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(0).(*email.Message)
		})

		uc := newMeetingUC(sender)
		err := uc.ScheduleMeeting(context.Background(), &domain.MeetingRequest{
			Name:  "Jane",
			Email: "jane@x.com",
			Date:  "2024-03-15",
			Time:  "14:30",
			Topic: "Cloud migration",
		})

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 1)
		assert.Equal(t, []string{testAdmin}, sent.To)
		assert.Equal(t, []string{"jane@x.com"}, sent.Cc)
		assert.Empty(t, sent.ReplyTo, "scheduling uses cc, not reply-to")
		assert.Equal(t, "New Meeting Request: Jane", sent.Subject)

		assert.NotNil(t, sent.Attachment)
		assert.Equal(t, "meeting.ics", sent.Attachment.Filename)
		assert.Contains(t, sent.Attachment.ContentType, "method=REQUEST")

		ics := string(sent.Attachment.Content)
		assert.Contains(t, ics, "SUMMARY:Meeting with Jane: Cloud migration")
		assert.Contains(t, ics, "PARTSTAT=NEEDS-ACTION")
		assert.Contains(t, ics, "mailto:jane@x.com")
		assert.Contains(t, ics, "mailto:"+testOrganizer)
	})

	t.Run("omitted topic uses the documented fallbacks", func(t *testing.T) {
		sender := new(MockSender)
		var sent *email.Message
		sender.On("Send", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			sent = args.Get(0).(*email.Message)
		})

		uc := newMeetingUC(sender)
		err := uc.ScheduleMeeting(context.Background(), &domain.MeetingRequest{
			Name:  "Jane",
			Email: "jane@x.com",
			Date:  "2024-03-15",
			Time:  "14:30",
		})

		assert.NoError(t, err)
		ics := string(sent.Attachment.Content)
		assert.Contains(t, ics, "Meeting with Jane: "+domain.DefaultSummaryTopic)
		assert.Contains(t, ics, "Topic: "+domain.DefaultTopic)
		assert.True(t, strings.HasSuffix(sent.Text, "Topic: "+domain.EmailTopicFallback))
		assert.Contains(t, sent.HTML, domain.EmailTopicFallback)
	})

	t.Run("send failure is not a client error", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything).Return(errors.New("dial tcp: connection refused"))

		uc := newMeetingUC(sender)
		err := uc.ScheduleMeeting(context.Background(), &domain.MeetingRequest{
			Name:  "Jane",
			Email: "jane@x.com",
			Date:  "2024-03-15",
			Time:  "14:30",
		})

		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.False(t, errors.As(err, &appErr))
	})
}
