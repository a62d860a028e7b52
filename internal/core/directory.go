package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category groups courses for browsing.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// User mirrors an identity issued by the external identity provider.
type User struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourseView is a published course as seen by a visitor. Course is nil for
// anonymous visitors; Lessons are always present.
type CourseView struct {
	Course  *Course
	Lessons []Lesson
}

// AuthorCourses bundles an author's public profile with their published courses.
type AuthorCourses struct {
	Author  User
	Courses []Course
}

// DirectoryRepository persists categories and users.
type DirectoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	CreateCategory(ctx context.Context, category Category) (*Category, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	UpsertUser(ctx context.Context, user User) (*User, error)
}

// DirectoryService exposes read-only browsing use cases.
type DirectoryService interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListFrontCourses(ctx context.Context) ([]Course, error)
	ListCourses(ctx context.Context, categoryID *uuid.UUID) ([]Course, error)
	GetCourse(ctx context.Context, slug string, viewer *Identity) (*CourseView, error)
	GetAuthorCourses(ctx context.Context, userID uuid.UUID) (*AuthorCourses, error)
}
