package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// LessonHandler serves lesson authoring routes.
type LessonHandler struct {
	service core.LessonService
}

// NewLessonHandler constructs a lesson handler backed by the provided service.
func NewLessonHandler(service core.LessonService) *LessonHandler {
	return &LessonHandler{service: service}
}

type createLessonRequest struct {
	Title            string `json:"title" binding:"required"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
}

type updateLessonRequest struct {
	Title            *string `json:"title"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
	Status           *string `json:"status"`
}

// CreateLesson appends a draft lesson to a course owned by the caller.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req createLessonRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	lesson, err := h.service.CreateLesson(c.Request.Context(), core.CreateLessonParams{
		AuthorID:         callerID(c),
		CourseSlug:       c.Param("course"),
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson created", "lesson_id": lesson.ID})
}

// UpdateLesson applies a partial update to a lesson of a course owned by the caller.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	var req updateLessonRequest
	if err := bindPatch(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	patch := core.LessonPatch{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
	}
	if req.Status != nil {
		patch.Status = lo.ToPtr(core.LessonStatus(*req.Status))
	}

	lesson, err := h.service.UpdateLesson(c.Request.Context(), callerID(c), c.Param("course"), c.Param("lesson"), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson updated successfully", "lesson_id": lesson.ID})
}
