package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// EngagementService coordinates comments and quizzes on lessons.
//
// Lessons are resolved by slug alone; the course slug in the route does not
// narrow the lookup.
type EngagementService struct {
	courses    core.CourseRepository
	engagement core.EngagementRepository
	now        func() time.Time
}

// NewEngagementService constructs an EngagementService.
func NewEngagementService(courses core.CourseRepository, engagement core.EngagementRepository) *EngagementService {
	return &EngagementService{courses: courses, engagement: engagement, now: time.Now}
}

// WithClock allows tests to override the clock used by the service.
func (s *EngagementService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.EngagementService = (*EngagementService)(nil)

// ListQuizzes returns every quiz of the lesson.
func (s *EngagementService) ListQuizzes(ctx context.Context, _ string, lessonSlug string) ([]core.Quiz, error) {
	lesson, err := s.findLesson(ctx, lessonSlug)
	if err != nil {
		return nil, err
	}
	return s.engagement.ListQuizzes(ctx, lesson.ID)
}

// ListComments returns every comment of the lesson.
func (s *EngagementService) ListComments(ctx context.Context, _ string, lessonSlug string) ([]core.Comment, error) {
	lesson, err := s.findLesson(ctx, lessonSlug)
	if err != nil {
		return nil, err
	}
	return s.engagement.ListComments(ctx, lesson.ID)
}

// AddComment records a comment against the course and lesson named by slug.
// The two are looked up independently.
func (s *EngagementService) AddComment(ctx context.Context, params core.AddCommentParams) (*core.Comment, error) {
	if params.AuthorID == uuid.Nil {
		return nil, core.ErrUnauthenticated
	}
	if strings.TrimSpace(params.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", core.ErrValidation)
	}

	course, err := s.courses.GetCourseBySlug(ctx, params.CourseSlug, core.CourseQueryOptions{})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("course %q: %w", params.CourseSlug, core.ErrNotFound)
		}
		return nil, err
	}
	lesson, err := s.findLesson(ctx, params.LessonSlug)
	if err != nil {
		return nil, err
	}

	comment := core.Comment{
		ID:        uuid.New(),
		CourseID:  course.ID,
		LessonID:  lesson.ID,
		Name:      params.Name,
		Content:   params.Content,
		CreatedBy: params.AuthorID,
		CreatedAt: s.now().UTC(),
	}

	return s.engagement.CreateComment(ctx, comment)
}

func (s *EngagementService) findLesson(ctx context.Context, slug string) (*core.Lesson, error) {
	lesson, err := s.courses.FindLessonBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("lesson %q: %w", slug, core.ErrNotFound)
		}
		return nil, err
	}
	return lesson, nil
}
