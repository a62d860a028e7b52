package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// ActivityHandler serves learner progress routes. All routes require authentication.
type ActivityHandler struct {
	service core.ActivityService
}

func NewActivityHandler(service core.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func (h *ActivityHandler) TrackStarted(c *gin.Context) {
	activity, err := h.service.TrackStarted(c.Request.Context(), callerID(c), c.Param("course"), c.Param("lesson"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toActivityResponse(activity))
}

func (h *ActivityHandler) MarkAsDone(c *gin.Context) {
	activity, err := h.service.MarkAsDone(c.Request.Context(), callerID(c), c.Param("course"), c.Param("lesson"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toActivityResponse(activity))
}

// ListActiveCourses returns the courses the caller has started.
func (h *ActivityHandler) ListActiveCourses(c *gin.Context) {
	courses, err := h.service.ListActiveCourses(c.Request.Context(), callerID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toCourseSummaries(courses))
}
