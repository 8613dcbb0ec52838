package v1

import (
	"errors"
	"net/http"

	"go-veloce-backend/internal/delivery/http/response"
	"go-veloce-backend/internal/domain"
	"go-veloce-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the website contact form. The notification email goes to the Veloce admin address with reply-to set to the submitter.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.MessageResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed bodies take the same path as missing fields
		c.Error(apperror.BadRequest(domain.ErrContactRequired))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.Error(appErr)
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, domain.ErrContactFailed, err))
		return
	}

	response.Message(c, http.StatusOK, domain.MsgContactSent)
}
