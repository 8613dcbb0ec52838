package v1

import (
	"errors"
	"net/http"

	"go-veloce-backend/internal/delivery/http/response"
	"go-veloce-backend/internal/domain"
	"go-veloce-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	meetingUC domain.MeetingUsecase
}

// NewScheduleHandler registers the meeting-scheduling routes (public, no auth required)
func NewScheduleHandler(public *gin.RouterGroup, meetingUC domain.MeetingUsecase) {
	handler := &ScheduleHandler{
		meetingUC: meetingUC,
	}

	public.POST("/schedule", handler.ScheduleMeeting)
}

// ScheduleMeeting godoc
// @Summary      Schedule a Meeting
// @Description  Request a 30-minute meeting slot. Sends a notification email with an iCalendar invite to the Veloce admin address, with the submitter in CC.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        meeting  body      domain.MeetingRequest  true  "Meeting Request Data"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /schedule [post]
func (h *ScheduleHandler) ScheduleMeeting(c *gin.Context) {
	var req domain.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(domain.ErrMeetingRequired))
		return
	}

	if err := h.meetingUC.ScheduleMeeting(c.Request.Context(), &req); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.Error(appErr)
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, domain.ErrMeetingFailed, err))
		return
	}

	response.Message(c, http.StatusOK, domain.MsgMeetingScheduled)
}
