package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ActivityStatus tracks a learner's progress through a lesson.
type ActivityStatus string

const (
	ActivityStatusStarted ActivityStatus = "started"
	ActivityStatusDone    ActivityStatus = "done"
)

// Activity records a user's interaction with a lesson.
type Activity struct {
	ID        uuid.UUID
	CreatedBy uuid.UUID
	CourseID  uuid.UUID
	LessonID  uuid.UUID
	Status    ActivityStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActivityRepository persists activities.
type ActivityRepository interface {
	GetActivity(ctx context.Context, userID, lessonID uuid.UUID) (*Activity, error)
	CreateActivity(ctx context.Context, activity Activity) (*Activity, error)
	UpdateActivity(ctx context.Context, activity Activity) (*Activity, error)
	ListActiveCourses(ctx context.Context, userID uuid.UUID) ([]Course, error)
}

// ActivityService exposes learner progress use cases.
type ActivityService interface {
	TrackStarted(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*Activity, error)
	MarkAsDone(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*Activity, error)
	ListActiveCourses(ctx context.Context, userID uuid.UUID) ([]Course, error)
}
