package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CourseStatus is the lifecycle state of a course. Values outside the known
// constants are stored as provided.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
)

// Course represents a persisted course.
type Course struct {
	ID               uuid.UUID
	Title            string
	Slug             string
	ShortDescription string
	LongDescription  string
	Status           CourseStatus
	CreatedBy        uuid.UUID
	CategoryIDs      []uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Loaded on demand.
	Author     *User
	Categories []Category
	Lessons    []Lesson
}

// CreateCourseParams describes an author's request to create a course with nested lessons.
type CreateCourseParams struct {
	AuthorID         uuid.UUID
	Title            string
	ShortDescription string
	LongDescription  string
	Status           CourseStatus
	CategoryIDs      []uuid.UUID
	Lessons          []LessonDraft
}

// CoursePatch holds a partial course update. Nil fields are left untouched.
type CoursePatch struct {
	Title            *string
	ShortDescription *string
	LongDescription  *string
	Status           *CourseStatus
	CategoryIDs      *[]uuid.UUID
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	Statuses   []CourseStatus
	CategoryID *uuid.UUID
	CreatedBy  *uuid.UUID
}

// CourseQueryOptions scope a single-course lookup and customise loaded associations.
type CourseQueryOptions struct {
	OwnerID          *uuid.UUID
	Status           *CourseStatus
	IncludeRelations bool
	IncludeLessons   bool
}

// CourseUpdateOptions controls side effects of UpdateCourse.
type CourseUpdateOptions struct {
	ReplaceCategories bool
}

// CourseRepository defines persistence operations for courses and their lessons.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course Course) (*Course, error)
	UpdateCourse(ctx context.Context, course Course, opts CourseUpdateOptions) (*Course, error)
	GetCourseBySlug(ctx context.Context, slug string, opts CourseQueryOptions) (*Course, error)
	ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error)

	CreateLesson(ctx context.Context, lesson Lesson) (*Lesson, error)
	UpdateLesson(ctx context.Context, lesson Lesson) (*Lesson, error)
	GetLesson(ctx context.Context, courseID uuid.UUID, slug string) (*Lesson, error)
	FindLessonBySlug(ctx context.Context, slug string) (*Lesson, error)
	ListLessons(ctx context.Context, courseID uuid.UUID) ([]Lesson, error)
}

// CourseService exposes the author-facing course use cases.
type CourseService interface {
	CreateCourse(ctx context.Context, params CreateCourseParams) (*Course, error)
	UpdateCourse(ctx context.Context, authorID uuid.UUID, slug string, patch CoursePatch) (*Course, error)
}
