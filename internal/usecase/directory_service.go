package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

var publishedOnly = []core.CourseStatus{core.CourseStatusPublished}

// DirectoryService serves the read-only catalog.
type DirectoryService struct {
	courses   core.CourseRepository
	directory core.DirectoryRepository
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(courses core.CourseRepository, directory core.DirectoryRepository) *DirectoryService {
	return &DirectoryService{courses: courses, directory: directory}
}

var _ core.DirectoryService = (*DirectoryService)(nil)

func (s *DirectoryService) ListCategories(ctx context.Context) ([]core.Category, error) {
	return s.directory.ListCategories(ctx)
}

func (s *DirectoryService) ListFrontCourses(ctx context.Context) ([]core.Course, error) {
	return s.courses.ListCourses(ctx, core.CourseFilter{Statuses: publishedOnly})
}

// ListCourses returns published courses, restricted to one category when categoryID is set.
func (s *DirectoryService) ListCourses(ctx context.Context, categoryID *uuid.UUID) ([]core.Course, error) {
	return s.courses.ListCourses(ctx, core.CourseFilter{
		Statuses:   publishedOnly,
		CategoryID: categoryID,
	})
}

// GetCourse resolves a published course by slug. Lessons are always returned;
// the course record itself only when viewer is authenticated.
func (s *DirectoryService) GetCourse(ctx context.Context, slug string, viewer *core.Identity) (*core.CourseView, error) {
	published := core.CourseStatusPublished
	course, err := s.courses.GetCourseBySlug(ctx, slug, core.CourseQueryOptions{
		Status:           &published,
		IncludeLessons:   true,
		IncludeRelations: viewer != nil,
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("course %q: %w", slug, core.ErrNotFound)
		}
		return nil, err
	}

	view := &core.CourseView{Lessons: course.Lessons}
	if viewer != nil {
		view.Course = course
	}
	return view, nil
}

// GetAuthorCourses returns the author's public profile and published courses.
func (s *DirectoryService) GetAuthorCourses(ctx context.Context, userID uuid.UUID) (*core.AuthorCourses, error) {
	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
		}
		return nil, err
	}

	courses, err := s.courses.ListCourses(ctx, core.CourseFilter{
		Statuses:  publishedOnly,
		CreatedBy: &userID,
	})
	if err != nil {
		return nil, err
	}

	return &core.AuthorCourses{Author: *user, Courses: courses}, nil
}
