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

// LessonService coordinates lesson use cases within an author's courses.
type LessonService struct {
	repo core.CourseRepository
	now  func() time.Time
}

// NewLessonService constructs a lesson service backed by the provided repository.
func NewLessonService(repo core.CourseRepository) *LessonService {
	return &LessonService{repo: repo, now: time.Now}
}

// WithClock allows tests to override the clock used by the service.
func (s *LessonService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.LessonService = (*LessonService)(nil)

// CreateLesson appends a draft lesson to a course owned by the caller.
func (s *LessonService) CreateLesson(ctx context.Context, params core.CreateLessonParams) (*core.Lesson, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", core.ErrValidation)
	}

	course, err := s.repo.GetCourseBySlug(ctx, params.CourseSlug, core.CourseQueryOptions{OwnerID: &params.AuthorID})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, &core.AccessError{Resource: "Course"}
		}
		return nil, err
	}

	now := s.now().UTC()
	lesson := core.Lesson{
		ID:               uuid.New(),
		CourseID:         course.ID,
		Title:            params.Title,
		Slug:             Slugify(params.Title),
		ShortDescription: params.ShortDescription,
		LongDescription:  params.LongDescription,
		Status:           core.LessonStatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return s.repo.CreateLesson(ctx, lesson)
}

// UpdateLesson applies a partial update to a lesson of a course owned by the
// caller. The slug is recomputed from the resulting title on every update and
// the status is stored exactly as sent.
func (s *LessonService) UpdateLesson(ctx context.Context, authorID uuid.UUID, courseSlug, lessonSlug string, patch core.LessonPatch) (*core.Lesson, error) {
	denied := &core.AccessError{Resource: "Lesson or Course"}

	course, err := s.repo.GetCourseBySlug(ctx, courseSlug, core.CourseQueryOptions{OwnerID: &authorID})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, denied
		}
		return nil, err
	}

	lesson, err := s.repo.GetLesson(ctx, course.ID, lessonSlug)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, denied
		}
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be blank", core.ErrValidation)
		}
		lesson.Title = *patch.Title
	}
	lesson.Slug = Slugify(lesson.Title)
	if patch.ShortDescription != nil {
		lesson.ShortDescription = *patch.ShortDescription
	}
	if patch.LongDescription != nil {
		lesson.LongDescription = *patch.LongDescription
	}
	if patch.Status != nil {
		lesson.Status = *patch.Status
	}
	lesson.UpdatedAt = s.now().UTC()

	return s.repo.UpdateLesson(ctx, *lesson)
}
