package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

func activityCourses(courseID, lessonID uuid.UUID) *stubCourseRepo {
	return &stubCourseRepo{
		getCourseBySlugFn: func(ctx context.Context, slug string, opts core.CourseQueryOptions) (*core.Course, error) {
			return &core.Course{ID: courseID, Slug: slug}, nil
		},
		getLessonFn: func(ctx context.Context, id uuid.UUID, slug string) (*core.Lesson, error) {
			if id != courseID {
				return nil, core.ErrNotFound
			}
			return &core.Lesson{ID: lessonID, CourseID: id, Slug: slug}, nil
		},
	}
}

func TestActivityService_TrackStartedCreates(t *testing.T) {
	fixedNow := time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC)
	userID, courseID, lessonID := uuid.New(), uuid.New(), uuid.New()
	var created core.Activity

	activities := &stubActivityRepo{
		createActivityFn: func(ctx context.Context, activity core.Activity) (*core.Activity, error) {
			created = activity
			return &activity, nil
		},
	}
	service := NewActivityService(activityCourses(courseID, lessonID), activities)
	service.WithClock(func() time.Time { return fixedNow })

	got, err := service.TrackStarted(context.Background(), userID, "go-1000", "basics")
	if err != nil {
		t.Fatalf("TrackStarted() error = %v", err)
	}
	if got.Status != core.ActivityStatusStarted {
		t.Fatalf("expected started, got %q", got.Status)
	}
	if created.CreatedBy != userID || created.CourseID != courseID || created.LessonID != lessonID {
		t.Fatalf("unexpected activity %#v", created)
	}
	if created.CreatedAt != fixedNow {
		t.Fatalf("expected CreatedAt %v, got %v", fixedNow, created.CreatedAt)
	}
}

func TestActivityService_TrackStartedReturnsExisting(t *testing.T) {
	existing := core.Activity{ID: uuid.New(), Status: core.ActivityStatusDone}
	activities := &stubActivityRepo{
		getActivityFn: func(ctx context.Context, userID, lessonID uuid.UUID) (*core.Activity, error) {
			copy := existing
			return &copy, nil
		},
		createActivityFn: func(ctx context.Context, activity core.Activity) (*core.Activity, error) {
			return nil, errors.New("should not be called")
		},
		updateActivityFn: func(ctx context.Context, activity core.Activity) (*core.Activity, error) {
			return nil, errors.New("should not be called")
		},
	}
	service := NewActivityService(activityCourses(uuid.New(), uuid.New()), activities)

	got, err := service.TrackStarted(context.Background(), uuid.New(), "c", "l")
	if err != nil {
		t.Fatalf("TrackStarted() error = %v", err)
	}
	if got.ID != existing.ID || got.Status != core.ActivityStatusDone {
		t.Fatalf("expected existing activity untouched, got %#v", got)
	}
}

func TestActivityService_MarkAsDone(t *testing.T) {
	existing := core.Activity{ID: uuid.New(), Status: core.ActivityStatusStarted}
	var updated core.Activity
	activities := &stubActivityRepo{
		getActivityFn: func(ctx context.Context, userID, lessonID uuid.UUID) (*core.Activity, error) {
			copy := existing
			return &copy, nil
		},
		updateActivityFn: func(ctx context.Context, activity core.Activity) (*core.Activity, error) {
			updated = activity
			return &activity, nil
		},
	}
	service := NewActivityService(activityCourses(uuid.New(), uuid.New()), activities)

	got, err := service.MarkAsDone(context.Background(), uuid.New(), "c", "l")
	if err != nil {
		t.Fatalf("MarkAsDone() error = %v", err)
	}
	if got.Status != core.ActivityStatusDone || updated.ID != existing.ID {
		t.Fatalf("expected existing activity marked done, got %#v", got)
	}
}

func TestActivityService_MarkAsDoneCreatesWhenMissing(t *testing.T) {
	var created core.Activity
	activities := &stubActivityRepo{
		createActivityFn: func(ctx context.Context, activity core.Activity) (*core.Activity, error) {
			created = activity
			return &activity, nil
		},
	}
	service := NewActivityService(activityCourses(uuid.New(), uuid.New()), activities)

	if _, err := service.MarkAsDone(context.Background(), uuid.New(), "c", "l"); err != nil {
		t.Fatalf("MarkAsDone() error = %v", err)
	}
	if created.Status != core.ActivityStatusDone {
		t.Fatalf("expected new activity with done status, got %q", created.Status)
	}
}

func TestActivityService_ConflictFallsBackToExisting(t *testing.T) {
	winner := core.Activity{ID: uuid.New(), Status: core.ActivityStatusStarted}
	lookups := 0
	activities := &stubActivityRepo{
		getActivityFn: func(ctx context.Context, userID, lessonID uuid.UUID) (*core.Activity, error) {
			lookups++
			if lookups == 1 {
				return nil, core.ErrNotFound
			}
			copy := winner
			return &copy, nil
		},
		createActivityFn: func(ctx context.Context, activity core.Activity) (*core.Activity, error) {
			return nil, core.ErrConflict
		},
	}
	service := NewActivityService(activityCourses(uuid.New(), uuid.New()), activities)

	got, err := service.TrackStarted(context.Background(), uuid.New(), "c", "l")
	if err != nil {
		t.Fatalf("TrackStarted() error = %v", err)
	}
	if got.ID != winner.ID {
		t.Fatalf("expected concurrent winner, got %#v", got)
	}
}

func TestActivityService_NotFoundAndAuth(t *testing.T) {
	service := NewActivityService(&stubCourseRepo{}, &stubActivityRepo{})

	if _, err := service.TrackStarted(context.Background(), uuid.Nil, "c", "l"); !errors.Is(err, core.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := service.TrackStarted(context.Background(), uuid.New(), "missing", "l"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.ListActiveCourses(context.Background(), uuid.Nil); !errors.Is(err, core.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
