package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LessonStatus is the lifecycle state of a lesson.
type LessonStatus string

const (
	LessonStatusDraft     LessonStatus = "draft"
	LessonStatusPublished LessonStatus = "published"
)

// Lesson represents a domain object describing a course lesson.
type Lesson struct {
	ID               uuid.UUID
	CourseID         uuid.UUID
	Seq              int
	Title            string
	Slug             string
	ShortDescription string
	LongDescription  string
	Status           LessonStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LessonDraft is a lesson payload nested in a course creation request.
type LessonDraft struct {
	Title            string
	ShortDescription string
	LongDescription  string
	Status           LessonStatus
}

// CreateLessonParams holds the input required to create a lesson.
type CreateLessonParams struct {
	AuthorID         uuid.UUID
	CourseSlug       string
	Title            string
	ShortDescription string
	LongDescription  string
}

// LessonPatch holds a partial lesson update. Nil fields are left untouched.
type LessonPatch struct {
	Title            *string
	ShortDescription *string
	LongDescription  *string
	Status           *LessonStatus
}

// LessonService exposes the author-facing lesson use cases.
type LessonService interface {
	CreateLesson(ctx context.Context, params CreateLessonParams) (*Lesson, error)
	UpdateLesson(ctx context.Context, authorID uuid.UUID, courseSlug, lessonSlug string, patch LessonPatch) (*Lesson, error)
}
