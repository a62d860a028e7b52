package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

func TestActivityRepository_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv := setupDriver(t)
	courses := NewCourseRepository(drv)
	repo := NewActivityRepository(drv)
	author := createUserForTest(t, drv, "ada")
	learner := createUserForTest(t, drv, "bob")

	course := createCourseForTest(t, courses, core.Course{
		Slug:      "go-1000",
		Title:     "Go",
		CreatedBy: author.ID,
		Lessons: []core.Lesson{
			{Seq: 1, Title: "One", Slug: "one", Status: core.LessonStatusDraft},
			{Seq: 2, Title: "Two", Slug: "two", Status: core.LessonStatusDraft},
		},
	})
	createCourseForTest(t, courses, core.Course{Slug: "idle-1000", Title: "Idle", CreatedBy: author.ID})

	if _, err := repo.GetActivity(ctx, learner.ID, course.Lessons[0].ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, lesson := range course.Lessons {
		if _, err := repo.CreateActivity(ctx, core.Activity{
			ID:        uuid.New(),
			CreatedBy: learner.ID,
			CourseID:  course.ID,
			LessonID:  lesson.ID,
			Status:    core.ActivityStatusStarted,
			CreatedAt: testNow,
			UpdatedAt: testNow,
		}); err != nil {
			t.Fatalf("CreateActivity() error = %v", err)
		}
	}

	_, err := repo.CreateActivity(ctx, core.Activity{
		ID:        uuid.New(),
		CreatedBy: learner.ID,
		CourseID:  course.ID,
		LessonID:  course.Lessons[0].ID,
		Status:    core.ActivityStatusStarted,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	})
	if !errors.Is(err, core.ErrConflict) {
		t.Fatalf("expected ErrConflict for second activity on lesson, got %v", err)
	}

	activity, err := repo.GetActivity(ctx, learner.ID, course.Lessons[0].ID)
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	activity.Status = core.ActivityStatusDone
	activity.UpdatedAt = testNow.Add(time.Hour)
	if _, err := repo.UpdateActivity(ctx, *activity); err != nil {
		t.Fatalf("UpdateActivity() error = %v", err)
	}
	reloaded, err := repo.GetActivity(ctx, learner.ID, course.Lessons[0].ID)
	if err != nil {
		t.Fatalf("GetActivity() error = %v", err)
	}
	if reloaded.Status != core.ActivityStatusDone {
		t.Fatalf("expected done, got %q", reloaded.Status)
	}

	active, err := repo.ListActiveCourses(ctx, learner.ID)
	if err != nil {
		t.Fatalf("ListActiveCourses() error = %v", err)
	}
	if len(active) != 1 || active[0].ID != course.ID {
		t.Fatalf("expected one distinct active course, got %#v", active)
	}

	none, err := repo.ListActiveCourses(ctx, author.ID)
	if err != nil {
		t.Fatalf("ListActiveCourses(author) error = %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no active courses, got %d", len(none))
	}
}
