package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// EngagementHandler serves lesson comments and quizzes.
type EngagementHandler struct {
	service core.EngagementService
}

func NewEngagementHandler(service core.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

type addCommentRequest struct {
	Name    string `json:"name"`
	Content string `json:"content" binding:"required"`
}

func (h *EngagementHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.service.ListQuizzes(c.Request.Context(), c.Param("course"), c.Param("lesson"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toQuizResponses(quizzes))
}

func (h *EngagementHandler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("course"), c.Param("lesson"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toCommentResponses(comments))
}

// AddComment records a comment by the caller and echoes it back.
func (h *EngagementHandler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), core.AddCommentParams{
		CourseSlug: c.Param("course"),
		LessonSlug: c.Param("lesson"),
		AuthorID:   callerID(c),
		Name:       req.Name,
		Content:    req.Content,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toCommentResponse(*comment))
}
