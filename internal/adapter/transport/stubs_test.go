package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
	"github.com/eslsoft/coursecatalog/internal/logger"
)

const testSecret = "test-secret"

type stubCourseService struct {
	createCourseFn func(ctx context.Context, params core.CreateCourseParams) (*core.Course, error)
	updateCourseFn func(ctx context.Context, authorID uuid.UUID, slug string, patch core.CoursePatch) (*core.Course, error)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, params core.CreateCourseParams) (*core.Course, error) {
	if s.createCourseFn != nil {
		return s.createCourseFn(ctx, params)
	}
	return &core.Course{ID: uuid.New()}, nil
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, authorID uuid.UUID, slug string, patch core.CoursePatch) (*core.Course, error) {
	if s.updateCourseFn != nil {
		return s.updateCourseFn(ctx, authorID, slug, patch)
	}
	return &core.Course{ID: uuid.New(), Slug: slug}, nil
}

type stubLessonService struct {
	createLessonFn func(ctx context.Context, params core.CreateLessonParams) (*core.Lesson, error)
	updateLessonFn func(ctx context.Context, authorID uuid.UUID, courseSlug, lessonSlug string, patch core.LessonPatch) (*core.Lesson, error)
}

func (s *stubLessonService) CreateLesson(ctx context.Context, params core.CreateLessonParams) (*core.Lesson, error) {
	if s.createLessonFn != nil {
		return s.createLessonFn(ctx, params)
	}
	return &core.Lesson{ID: uuid.New()}, nil
}

func (s *stubLessonService) UpdateLesson(ctx context.Context, authorID uuid.UUID, courseSlug, lessonSlug string, patch core.LessonPatch) (*core.Lesson, error) {
	if s.updateLessonFn != nil {
		return s.updateLessonFn(ctx, authorID, courseSlug, lessonSlug, patch)
	}
	return &core.Lesson{ID: uuid.New()}, nil
}

type stubEngagementService struct {
	listQuizzesFn  func(ctx context.Context, courseSlug, lessonSlug string) ([]core.Quiz, error)
	listCommentsFn func(ctx context.Context, courseSlug, lessonSlug string) ([]core.Comment, error)
	addCommentFn   func(ctx context.Context, params core.AddCommentParams) (*core.Comment, error)
}

func (s *stubEngagementService) ListQuizzes(ctx context.Context, courseSlug, lessonSlug string) ([]core.Quiz, error) {
	if s.listQuizzesFn != nil {
		return s.listQuizzesFn(ctx, courseSlug, lessonSlug)
	}
	return nil, nil
}

func (s *stubEngagementService) ListComments(ctx context.Context, courseSlug, lessonSlug string) ([]core.Comment, error) {
	if s.listCommentsFn != nil {
		return s.listCommentsFn(ctx, courseSlug, lessonSlug)
	}
	return nil, nil
}

func (s *stubEngagementService) AddComment(ctx context.Context, params core.AddCommentParams) (*core.Comment, error) {
	if s.addCommentFn != nil {
		return s.addCommentFn(ctx, params)
	}
	return &core.Comment{ID: uuid.New(), Name: params.Name, Content: params.Content}, nil
}

type stubDirectoryService struct {
	listCategoriesFn   func(ctx context.Context) ([]core.Category, error)
	listFrontCoursesFn func(ctx context.Context) ([]core.Course, error)
	listCoursesFn      func(ctx context.Context, categoryID *uuid.UUID) ([]core.Course, error)
	getCourseFn        func(ctx context.Context, slug string, viewer *core.Identity) (*core.CourseView, error)
	getAuthorCoursesFn func(ctx context.Context, userID uuid.UUID) (*core.AuthorCourses, error)
}

func (s *stubDirectoryService) ListCategories(ctx context.Context) ([]core.Category, error) {
	if s.listCategoriesFn != nil {
		return s.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (s *stubDirectoryService) ListFrontCourses(ctx context.Context) ([]core.Course, error) {
	if s.listFrontCoursesFn != nil {
		return s.listFrontCoursesFn(ctx)
	}
	return nil, nil
}

func (s *stubDirectoryService) ListCourses(ctx context.Context, categoryID *uuid.UUID) ([]core.Course, error) {
	if s.listCoursesFn != nil {
		return s.listCoursesFn(ctx, categoryID)
	}
	return nil, nil
}

func (s *stubDirectoryService) GetCourse(ctx context.Context, slug string, viewer *core.Identity) (*core.CourseView, error) {
	if s.getCourseFn != nil {
		return s.getCourseFn(ctx, slug, viewer)
	}
	return nil, core.ErrNotFound
}

func (s *stubDirectoryService) GetAuthorCourses(ctx context.Context, userID uuid.UUID) (*core.AuthorCourses, error) {
	if s.getAuthorCoursesFn != nil {
		return s.getAuthorCoursesFn(ctx, userID)
	}
	return nil, core.ErrNotFound
}

type stubActivityService struct {
	trackStartedFn      func(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*core.Activity, error)
	markAsDoneFn        func(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*core.Activity, error)
	listActiveCoursesFn func(ctx context.Context, userID uuid.UUID) ([]core.Course, error)
}

func (s *stubActivityService) TrackStarted(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*core.Activity, error) {
	if s.trackStartedFn != nil {
		return s.trackStartedFn(ctx, userID, courseSlug, lessonSlug)
	}
	return &core.Activity{ID: uuid.New(), CreatedBy: userID, Status: core.ActivityStatusStarted}, nil
}

func (s *stubActivityService) MarkAsDone(ctx context.Context, userID uuid.UUID, courseSlug, lessonSlug string) (*core.Activity, error) {
	if s.markAsDoneFn != nil {
		return s.markAsDoneFn(ctx, userID, courseSlug, lessonSlug)
	}
	return &core.Activity{ID: uuid.New(), CreatedBy: userID, Status: core.ActivityStatusDone}, nil
}

func (s *stubActivityService) ListActiveCourses(ctx context.Context, userID uuid.UUID) ([]core.Course, error) {
	if s.listActiveCoursesFn != nil {
		return s.listActiveCoursesFn(ctx, userID)
	}
	return nil, nil
}

type stubIdentityService struct {
	synced []core.Identity
	err    error
}

func (s *stubIdentityService) SyncUser(ctx context.Context, identity core.Identity) (*core.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.synced = append(s.synced, identity)
	return &core.User{ID: identity.UserID, Username: identity.Username}, nil
}

type testServices struct {
	courses    *stubCourseService
	lessons    *stubLessonService
	engagement *stubEngagementService
	directory  *stubDirectoryService
	activities *stubActivityService
	identities *stubIdentityService
}

func newTestServices() *testServices {
	return &testServices{
		courses:    &stubCourseService{},
		lessons:    &stubLessonService{},
		engagement: &stubEngagementService{},
		directory:  &stubDirectoryService{},
		activities: &stubActivityService{},
		identities: &stubIdentityService{},
	}
}

func (s *testServices) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	return NewRouter(RouterConfig{
		Logger:      log,
		Auth:        NewAuthenticator(testSecret, s.identities, log),
		RateLimiter: NewRateLimiter(nil, log),
		Courses:     NewCourseHandler(s.courses),
		Lessons:     NewLessonHandler(s.lessons),
		Engagement:  NewEngagementHandler(s.engagement),
		Directory:   NewDirectoryHandler(s.directory),
		Activities:  NewActivityHandler(s.activities),
	})
}

func signToken(t *testing.T, subject string, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		PreferredUsername: "ada",
		GivenName:         "Ada",
		FamilyName:        "Lovelace",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return token
}

func doRequest(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
