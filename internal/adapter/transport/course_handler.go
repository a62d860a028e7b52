package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// CourseHandler serves course authoring routes.
type CourseHandler struct {
	service core.CourseService
}

// NewCourseHandler constructs a course handler backed by the provided service.
func NewCourseHandler(service core.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type lessonDraftRequest struct {
	Title            string `json:"title" binding:"required"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Status           string `json:"status"`
}

type createCourseRequest struct {
	Title            string               `json:"title" binding:"required"`
	ShortDescription string               `json:"short_description"`
	LongDescription  string               `json:"long_description"`
	Status           string               `json:"status"`
	Categories       []uuid.UUID          `json:"categories"`
	Lessons          []lessonDraftRequest `json:"lessons" binding:"dive"`
}

type updateCourseRequest struct {
	Title            *string      `json:"title"`
	ShortDescription *string      `json:"short_description"`
	LongDescription  *string      `json:"long_description"`
	Status           *string      `json:"status"`
	Categories       *[]uuid.UUID `json:"categories"`
}

// CreateCourse creates a draft course with its nested lessons.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), core.CreateCourseParams{
		AuthorID:         callerID(c),
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Status:           core.CourseStatus(req.Status),
		CategoryIDs:      req.Categories,
		Lessons: lo.Map(req.Lessons, func(l lessonDraftRequest, _ int) core.LessonDraft {
			return core.LessonDraft{
				Title:            l.Title,
				ShortDescription: l.ShortDescription,
				LongDescription:  l.LongDescription,
				Status:           core.LessonStatus(l.Status),
			}
		}),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"course_id": course.ID})
}

// UpdateCourse applies a partial update to a course owned by the caller.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req updateCourseRequest
	if err := bindPatch(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	patch := core.CoursePatch{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		CategoryIDs:      req.Categories,
	}
	if req.Status != nil {
		patch.Status = lo.ToPtr(core.CourseStatus(*req.Status))
	}

	course, err := h.service.UpdateCourse(c.Request.Context(), callerID(c), c.Param("slug"), patch)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course updated successfully", "course_id": course.ID})
}
