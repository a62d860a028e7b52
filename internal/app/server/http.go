package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/eslsoft/coursecatalog/internal/adapter/transport"
	"github.com/eslsoft/coursecatalog/internal/config"
	"github.com/eslsoft/coursecatalog/internal/logger"
)

// NewHTTPHandler wires the gin handlers into a router ready for serving.
func NewHTTPHandler(
	cfg config.Config,
	log *logger.Logger,
	tp trace.TracerProvider,
	auth *transport.Authenticator,
	limiter *transport.RateLimiter,
	courses *transport.CourseHandler,
	lessons *transport.LessonHandler,
	engagement *transport.EngagementHandler,
	directory *transport.DirectoryHandler,
	activities *transport.ActivityHandler,
) http.Handler {
	switch strings.ToLower(cfg.LogMode) {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	}

	return transport.NewRouter(transport.RouterConfig{
		Logger:           log,
		AllowedOrigins:   cfg.Origins(),
		ServiceName:      serviceName,
		TracerProvider:   tp,
		Auth:             auth,
		RateLimiter:      limiter,
		CommentRateLimit: cfg.CommentRateLimit,
		Courses:          courses,
		Lessons:          lessons,
		Engagement:       engagement,
		Directory:        directory,
		Activities:       activities,
	})
}
