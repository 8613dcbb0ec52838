package response

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the success body returned by the form endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body returned by the form endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Message sends a success response
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
