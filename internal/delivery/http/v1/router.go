package v1

import (
	"net/http"
	"time"

	"go-veloce-backend/config"
	"go-veloce-backend/internal/delivery/http/middleware"
	"go-veloce-backend/internal/delivery/http/response"
	"go-veloce-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	MeetingUC domain.MeetingUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	globalLimit := middleware.DefaultRateLimitConfig()
	globalLimit.Limit = deps.Config.RateLimitGlobalThreshold
	globalLimit.Window = window

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(globalLimit))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Message(c, http.StatusOK, "System operational")
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Form endpoints get a tighter window since they trigger outbound email
	formLimit := middleware.FormRateLimitConfig()
	formLimit.Limit = deps.Config.RateLimitFormThreshold
	formLimit.Window = window

	forms := api.Group("")
	forms.Use(middleware.RateLimitMiddleware(formLimit))
	{
		NewContactHandler(forms, deps.ContactUC)
		NewScheduleHandler(forms, deps.MeetingUC)
	}

	return r
}
