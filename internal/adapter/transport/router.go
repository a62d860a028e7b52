package transport

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"github.com/eslsoft/coursecatalog/internal/logger"
)

// RouterConfig carries everything NewRouter mounts.
type RouterConfig struct {
	Logger           *logger.Logger
	AllowedOrigins   []string
	ServiceName      string
	TracerProvider   trace.TracerProvider
	Auth             *Authenticator
	RateLimiter      *RateLimiter
	CommentRateLimit int

	Courses    *CourseHandler
	Lessons    *LessonHandler
	Engagement *EngagementHandler
	Directory  *DirectoryHandler
	Activities *ActivityHandler
}

// NewRouter builds the HTTP surface. Course routes share the ":course" and
// ":lesson" parameter names so static segments win over slugs.
func NewRouter(cfg RouterConfig) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracerProvider != nil {
		r.Use(otelgin.Middleware(cfg.ServiceName, otelgin.WithTracerProvider(cfg.TracerProvider)))
	}
	r.Use(RequestLogger(cfg.Logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(NewErrorInterceptor(cfg.Logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	requireAuth := cfg.Auth.RequireAuth()
	optionalAuth := cfg.Auth.OptionalAuth()
	commentLimit := cfg.RateLimiter.Limit("comment", cfg.CommentRateLimit, time.Minute)

	courses := r.Group("/api/v1/courses")
	{
		courses.GET("/", cfg.Directory.ListCourses)
		courses.GET("/get_front_courses/", cfg.Directory.ListFrontCourses)
		courses.GET("/get_categories/", cfg.Directory.ListCategories)
		courses.GET("/get_author_courses/:user/", optionalAuth, cfg.Directory.GetAuthorCourses)
		courses.POST("/create/", requireAuth, cfg.Courses.CreateCourse)
		courses.PUT("/update/:slug/", requireAuth, cfg.Courses.UpdateCourse)

		courses.GET("/:course/", optionalAuth, cfg.Directory.GetCourse)
		courses.POST("/:course/lessons/create/", requireAuth, cfg.Lessons.CreateLesson)
		courses.PUT("/:course/:lesson/update/", requireAuth, cfg.Lessons.UpdateLesson)
		courses.POST("/:course/:lesson/", requireAuth, commentLimit, cfg.Engagement.AddComment)
		courses.GET("/:course/:lesson/get-comments/", optionalAuth, cfg.Engagement.ListComments)
		courses.GET("/:course/:lesson/get-quiz/", optionalAuth, cfg.Engagement.ListQuizzes)
	}

	activities := r.Group("/api/v1/activities", requireAuth)
	{
		activities.POST("/track_started/:course/:lesson/", cfg.Activities.TrackStarted)
		activities.POST("/mark_as_done/:course/:lesson/", cfg.Activities.MarkAsDone)
		activities.GET("/get_active_courses/", cfg.Activities.ListActiveCourses)
	}

	return r
}
