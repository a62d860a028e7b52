package transport

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// DirectoryHandler serves the public catalog.
type DirectoryHandler struct {
	service core.DirectoryService
}

// NewDirectoryHandler constructs a directory handler backed by the provided service.
func NewDirectoryHandler(service core.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// ListCourses returns published courses, optionally narrowed by ?category_id=.
func (h *DirectoryHandler) ListCourses(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			_ = c.Error(fmt.Errorf("%w: category_id must be a UUID", core.ErrValidation))
			return
		}
		categoryID = &id
	}

	courses, err := h.service.ListCourses(c.Request.Context(), categoryID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toCourseSummaries(courses))
}

func (h *DirectoryHandler) ListFrontCourses(c *gin.Context) {
	courses, err := h.service.ListFrontCourses(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toCourseSummaries(courses))
}

func (h *DirectoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponses(categories))
}

// GetAuthorCourses returns an author's profile with their published courses.
func (h *DirectoryHandler) GetAuthorCourses(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user"))
	if err != nil {
		_ = c.Error(fmt.Errorf("user %q: %w", c.Param("user"), core.ErrNotFound))
		return
	}

	result, err := h.service.GetAuthorCourses(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"courses":    toCourseSummaries(result.Courses),
		"created_by": toUserResponse(&result.Author),
	})
}

// GetCourse returns a published course. Anonymous callers get an empty course
// object next to the full lesson list.
func (h *DirectoryHandler) GetCourse(c *gin.Context) {
	view, err := h.service.GetCourse(c.Request.Context(), c.Param("course"), identityFrom(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var course any = gin.H{}
	if view.Course != nil {
		course = toCourseDetail(view.Course)
	}
	c.JSON(http.StatusOK, gin.H{
		"course":  course,
		"lessons": toLessonResponses(view.Lessons),
	})
}
