package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

type stubCourseRepo struct {
	createCourseFn     func(ctx context.Context, course core.Course) (*core.Course, error)
	updateCourseFn     func(ctx context.Context, course core.Course, opts core.CourseUpdateOptions) (*core.Course, error)
	getCourseBySlugFn  func(ctx context.Context, slug string, opts core.CourseQueryOptions) (*core.Course, error)
	listCoursesFn      func(ctx context.Context, filter core.CourseFilter) ([]core.Course, error)
	createLessonFn     func(ctx context.Context, lesson core.Lesson) (*core.Lesson, error)
	updateLessonFn     func(ctx context.Context, lesson core.Lesson) (*core.Lesson, error)
	getLessonFn        func(ctx context.Context, courseID uuid.UUID, slug string) (*core.Lesson, error)
	findLessonBySlugFn func(ctx context.Context, slug string) (*core.Lesson, error)
	listLessonsFn      func(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error)
}

func (s *stubCourseRepo) CreateCourse(ctx context.Context, course core.Course) (*core.Course, error) {
	if s.createCourseFn != nil {
		return s.createCourseFn(ctx, course)
	}
	return nil, nil
}

func (s *stubCourseRepo) UpdateCourse(ctx context.Context, course core.Course, opts core.CourseUpdateOptions) (*core.Course, error) {
	if s.updateCourseFn != nil {
		return s.updateCourseFn(ctx, course, opts)
	}
	return nil, nil
}

func (s *stubCourseRepo) GetCourseBySlug(ctx context.Context, slug string, opts core.CourseQueryOptions) (*core.Course, error) {
	if s.getCourseBySlugFn != nil {
		return s.getCourseBySlugFn(ctx, slug, opts)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) ListCourses(ctx context.Context, filter core.CourseFilter) ([]core.Course, error) {
	if s.listCoursesFn != nil {
		return s.listCoursesFn(ctx, filter)
	}
	return nil, nil
}

func (s *stubCourseRepo) CreateLesson(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	if s.createLessonFn != nil {
		return s.createLessonFn(ctx, lesson)
	}
	return nil, nil
}

func (s *stubCourseRepo) UpdateLesson(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	if s.updateLessonFn != nil {
		return s.updateLessonFn(ctx, lesson)
	}
	return nil, nil
}

func (s *stubCourseRepo) GetLesson(ctx context.Context, courseID uuid.UUID, slug string) (*core.Lesson, error) {
	if s.getLessonFn != nil {
		return s.getLessonFn(ctx, courseID, slug)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) FindLessonBySlug(ctx context.Context, slug string) (*core.Lesson, error) {
	if s.findLessonBySlugFn != nil {
		return s.findLessonBySlugFn(ctx, slug)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) ListLessons(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	if s.listLessonsFn != nil {
		return s.listLessonsFn(ctx, courseID)
	}
	return nil, nil
}

type stubEngagementRepo struct {
	createCommentFn func(ctx context.Context, comment core.Comment) (*core.Comment, error)
	listCommentsFn  func(ctx context.Context, lessonID uuid.UUID) ([]core.Comment, error)
	createQuizFn    func(ctx context.Context, quiz core.Quiz) (*core.Quiz, error)
	listQuizzesFn   func(ctx context.Context, lessonID uuid.UUID) ([]core.Quiz, error)
}

func (s *stubEngagementRepo) CreateComment(ctx context.Context, comment core.Comment) (*core.Comment, error) {
	if s.createCommentFn != nil {
		return s.createCommentFn(ctx, comment)
	}
	return nil, nil
}

func (s *stubEngagementRepo) ListComments(ctx context.Context, lessonID uuid.UUID) ([]core.Comment, error) {
	if s.listCommentsFn != nil {
		return s.listCommentsFn(ctx, lessonID)
	}
	return nil, nil
}

func (s *stubEngagementRepo) CreateQuiz(ctx context.Context, quiz core.Quiz) (*core.Quiz, error) {
	if s.createQuizFn != nil {
		return s.createQuizFn(ctx, quiz)
	}
	return nil, nil
}

func (s *stubEngagementRepo) ListQuizzes(ctx context.Context, lessonID uuid.UUID) ([]core.Quiz, error) {
	if s.listQuizzesFn != nil {
		return s.listQuizzesFn(ctx, lessonID)
	}
	return nil, nil
}

type stubDirectoryRepo struct {
	listCategoriesFn    func(ctx context.Context) ([]core.Category, error)
	getCategoryByNameFn func(ctx context.Context, name string) (*core.Category, error)
	createCategoryFn    func(ctx context.Context, category core.Category) (*core.Category, error)
	getUserFn           func(ctx context.Context, id uuid.UUID) (*core.User, error)
	upsertUserFn        func(ctx context.Context, user core.User) (*core.User, error)
}

func (s *stubDirectoryRepo) ListCategories(ctx context.Context) ([]core.Category, error) {
	if s.listCategoriesFn != nil {
		return s.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (s *stubDirectoryRepo) GetCategoryByName(ctx context.Context, name string) (*core.Category, error) {
	if s.getCategoryByNameFn != nil {
		return s.getCategoryByNameFn(ctx, name)
	}
	return nil, core.ErrNotFound
}

func (s *stubDirectoryRepo) CreateCategory(ctx context.Context, category core.Category) (*core.Category, error) {
	if s.createCategoryFn != nil {
		return s.createCategoryFn(ctx, category)
	}
	return &category, nil
}

func (s *stubDirectoryRepo) GetUser(ctx context.Context, id uuid.UUID) (*core.User, error) {
	if s.getUserFn != nil {
		return s.getUserFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubDirectoryRepo) UpsertUser(ctx context.Context, user core.User) (*core.User, error) {
	if s.upsertUserFn != nil {
		return s.upsertUserFn(ctx, user)
	}
	return &user, nil
}

type stubActivityRepo struct {
	getActivityFn       func(ctx context.Context, userID, lessonID uuid.UUID) (*core.Activity, error)
	createActivityFn    func(ctx context.Context, activity core.Activity) (*core.Activity, error)
	updateActivityFn    func(ctx context.Context, activity core.Activity) (*core.Activity, error)
	listActiveCoursesFn func(ctx context.Context, userID uuid.UUID) ([]core.Course, error)
}

func (s *stubActivityRepo) GetActivity(ctx context.Context, userID, lessonID uuid.UUID) (*core.Activity, error) {
	if s.getActivityFn != nil {
		return s.getActivityFn(ctx, userID, lessonID)
	}
	return nil, core.ErrNotFound
}

func (s *stubActivityRepo) CreateActivity(ctx context.Context, activity core.Activity) (*core.Activity, error) {
	if s.createActivityFn != nil {
		return s.createActivityFn(ctx, activity)
	}
	return &activity, nil
}

func (s *stubActivityRepo) UpdateActivity(ctx context.Context, activity core.Activity) (*core.Activity, error) {
	if s.updateActivityFn != nil {
		return s.updateActivityFn(ctx, activity)
	}
	return &activity, nil
}

func (s *stubActivityRepo) ListActiveCourses(ctx context.Context, userID uuid.UUID) ([]core.Course, error) {
	if s.listActiveCoursesFn != nil {
		return s.listActiveCoursesFn(ctx, userID)
	}
	return nil, nil
}

func ptr[T any](v T) *T {
	return &v
}
