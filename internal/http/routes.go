package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Metrics())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rl := NewRateLimiter(h.RateLimitPerMin, time.Minute)

	api := r.Group("/api/announcements")
	{
		api.GET("/active", RateLimitPublic(h.Redis, rl, h.RateLimitPerMin, time.Minute), h.ListActive)
		api.GET("", h.ListAll)
		api.POST("", h.Create)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
	}

	// older clients call with a trailing slash; gin's default
	// RedirectTrailingSlash covers them

	return r
}
