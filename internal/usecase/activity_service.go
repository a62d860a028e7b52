package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// ActivityService tracks learner progress per lesson.
type ActivityService struct {
	courses    core.CourseRepository
	activities core.ActivityRepository
	now        func() time.Time
}

// NewActivityService constructs an ActivityService.
func NewActivityService(courses core.CourseRepository, activities core.ActivityRepository) *ActivityService {
	return &ActivityService{courses: courses, activities: activities, now: time.Now}
}

// WithClock allows tests to override the clock used by the service.
func (s *ActivityService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.ActivityService = (*ActivityService)(nil)

// TrackStarted returns the caller's activity for the lesson, creating a started one if needed.
func (s *ActivityService) TrackStarted(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*core.Activity, error) {
	return s.ensure(ctx, userID, courseSlug, lessonSlug, func(*core.Activity) bool { return false })
}

// MarkAsDone sets the caller's activity for the lesson to done.
func (s *ActivityService) MarkAsDone(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*core.Activity, error) {
	return s.ensure(ctx, userID, courseSlug, lessonSlug, func(activity *core.Activity) bool {
		if activity.Status == core.ActivityStatusDone {
			return false
		}
		activity.Status = core.ActivityStatusDone
		return true
	})
}

// ListActiveCourses returns the courses the caller has any activity on.
func (s *ActivityService) ListActiveCourses(ctx context.Context, userID uuid.UUID) ([]core.Course, error) {
	if userID == uuid.Nil {
		return nil, core.ErrUnauthenticated
	}
	return s.activities.ListActiveCourses(ctx, userID)
}

// ensure loads or creates the activity and applies mutate; mutate reports whether
// an existing activity needs saving. New activities start as started unless
// mutate changes them.
func (s *ActivityService) ensure(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string, mutate func(*core.Activity) bool) (*core.Activity, error) {
	if userID == uuid.Nil {
		return nil, core.ErrUnauthenticated
	}

	course, lesson, err := s.resolve(ctx, courseSlug, lessonSlug)
	if err != nil {
		return nil, err
	}

	existing, err := s.activities.GetActivity(ctx, userID, lesson.ID)
	switch {
	case err == nil:
		if !mutate(existing) {
			return existing, nil
		}
		existing.UpdatedAt = s.now().UTC()
		return s.activities.UpdateActivity(ctx, *existing)
	case !errors.Is(err, core.ErrNotFound):
		return nil, err
	}

	now := s.now().UTC()
	activity := core.Activity{
		ID:        uuid.New(),
		CreatedBy: userID,
		CourseID:  course.ID,
		LessonID:  lesson.ID,
		Status:    core.ActivityStatusStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	mutate(&activity)

	created, err := s.activities.CreateActivity(ctx, activity)
	if errors.Is(err, core.ErrConflict) {
		// Lost a race with a concurrent request for the same lesson.
		return s.activities.GetActivity(ctx, userID, lesson.ID)
	}
	return created, err
}

func (s *ActivityService) resolve(ctx context.Context, courseSlug, lessonSlug string) (*core.Course, *core.Lesson, error) {
	course, err := s.courses.GetCourseBySlug(ctx, courseSlug, core.CourseQueryOptions{})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, nil, fmt.Errorf("course %q: %w", courseSlug, core.ErrNotFound)
		}
		return nil, nil, err
	}
	lesson, err := s.courses.GetLesson(ctx, course.ID, lessonSlug)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, nil, fmt.Errorf("lesson %q: %w", lessonSlug, core.ErrNotFound)
		}
		return nil, nil, err
	}
	return course, lesson, nil
}
