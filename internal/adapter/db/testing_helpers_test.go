package db

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/eslsoft/coursecatalog/internal/core"
)

var testNow = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func setupDriver(t *testing.T) dialect.Driver {
	t.Helper()
	db, err := stdsql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&_pragma=foreign_keys(1)", uuid.NewString()))
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	t.Cleanup(func() { _ = drv.Close() })

	if err := Migrate(context.Background(), drv); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}
	return drv
}

func createUserForTest(t *testing.T, drv dialect.Driver, username string) core.User {
	t.Helper()
	user, err := NewDirectoryRepository(drv).UpsertUser(context.Background(), core.User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	})
	if err != nil {
		t.Fatalf("UpsertUser() error = %v", err)
	}
	return *user
}

func createCategoryForTest(t *testing.T, drv dialect.Driver, name string) core.Category {
	t.Helper()
	category, err := NewDirectoryRepository(drv).CreateCategory(context.Background(), core.Category{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: testNow,
	})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	return *category
}

func createCourseForTest(t *testing.T, repo *CourseRepository, course core.Course) core.Course {
	t.Helper()
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if course.Slug == "" {
		course.Slug = "course-" + course.ID.String()[:8]
	}
	if course.Status == "" {
		course.Status = core.CourseStatusDraft
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = testNow
	}
	if course.UpdatedAt.IsZero() {
		course.UpdatedAt = course.CreatedAt
	}
	for i := range course.Lessons {
		course.Lessons[i].CourseID = course.ID
		if course.Lessons[i].ID == uuid.Nil {
			course.Lessons[i].ID = uuid.New()
		}
		if course.Lessons[i].CreatedAt.IsZero() {
			course.Lessons[i].CreatedAt = course.CreatedAt
			course.Lessons[i].UpdatedAt = course.CreatedAt
		}
	}
	created, err := repo.CreateCourse(context.Background(), course)
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	return *created
}
