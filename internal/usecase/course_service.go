package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/coursecatalog/internal/core"
)

const maxSlugAttempts = 5

// CourseService coordinates course authoring use cases.
type CourseService struct {
	repo   core.CourseRepository
	now    func() time.Time
	suffix func() int
}

// NewCourseService constructs a CourseService backed by the provided repository.
func NewCourseService(repo core.CourseRepository) *CourseService {
	return &CourseService{
		repo:   repo,
		now:    time.Now,
		suffix: randomSlugSuffix,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *CourseService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// WithSlugSuffix allows tests to override the random slug suffix source.
func (s *CourseService) WithSlugSuffix(fn func() int) {
	if fn != nil {
		s.suffix = fn
	}
}

var _ core.CourseService = (*CourseService)(nil)

// CreateCourse persists a new course together with its nested lessons. Authors
// cannot publish on create, and nested lessons always start as drafts.
func (s *CourseService) CreateCourse(ctx context.Context, params core.CreateCourseParams) (*core.Course, error) {
	if params.AuthorID == uuid.Nil {
		return nil, core.ErrUnauthenticated
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", core.ErrValidation)
	}
	for i, lesson := range params.Lessons {
		if strings.TrimSpace(lesson.Title) == "" {
			return nil, fmt.Errorf("%w: lessons[%d]: title is required", core.ErrValidation, i)
		}
	}

	now := s.now().UTC()
	course := core.Course{
		ID:               uuid.New(),
		Title:            params.Title,
		ShortDescription: params.ShortDescription,
		LongDescription:  params.LongDescription,
		Status:           normalizeCourseStatus(params.Status),
		CreatedBy:        params.AuthorID,
		CategoryIDs:      lo.Uniq(params.CategoryIDs),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	course.Lessons = lo.Map(params.Lessons, func(draft core.LessonDraft, i int) core.Lesson {
		return core.Lesson{
			ID:               uuid.New(),
			CourseID:         course.ID,
			Seq:              i + 1,
			Title:            draft.Title,
			Slug:             Slugify(draft.Title),
			ShortDescription: draft.ShortDescription,
			LongDescription:  draft.LongDescription,
			Status:           core.LessonStatusDraft,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	})

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		course.Slug = courseSlug(params.Title, s.suffix())
		created, err := s.repo.CreateCourse(ctx, course)
		if errors.Is(err, core.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}

	return nil, fmt.Errorf("%w: no free slug for %q after %d attempts", core.ErrConflict, params.Title, maxSlugAttempts)
}

// UpdateCourse applies a partial update to a course owned by authorID. The slug
// never changes.
func (s *CourseService) UpdateCourse(ctx context.Context, authorID uuid.UUID, slug string, patch core.CoursePatch) (*core.Course, error) {
	course, err := s.repo.GetCourseBySlug(ctx, slug, core.CourseQueryOptions{OwnerID: &authorID})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, &core.AccessError{Resource: "Course"}
		}
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be blank", core.ErrValidation)
		}
		course.Title = *patch.Title
	}
	if patch.ShortDescription != nil {
		course.ShortDescription = *patch.ShortDescription
	}
	if patch.LongDescription != nil {
		course.LongDescription = *patch.LongDescription
	}
	// An edit without a status re-applies the current one, so it can unpublish.
	status := course.Status
	if patch.Status != nil {
		status = *patch.Status
	}
	course.Status = normalizeCourseStatus(status)

	var opts core.CourseUpdateOptions
	if patch.CategoryIDs != nil {
		course.CategoryIDs = lo.Uniq(*patch.CategoryIDs)
		opts.ReplaceCategories = true
	}

	course.UpdatedAt = s.now().UTC()

	return s.repo.UpdateCourse(ctx, *course, opts)
}

// normalizeCourseStatus downgrades "published" to draft. Other values pass through.
func normalizeCourseStatus(status core.CourseStatus) core.CourseStatus {
	switch status {
	case core.CourseStatusPublished, "":
		return core.CourseStatusDraft
	default:
		return status
	}
}
