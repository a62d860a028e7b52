package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// CatalogSeeder loads reference data that has no HTTP write path.
type CatalogSeeder struct {
	directory  core.DirectoryRepository
	courses    core.CourseRepository
	engagement core.EngagementRepository
	now        func() time.Time
}

// NewCatalogSeeder constructs a CatalogSeeder.
func NewCatalogSeeder(directory core.DirectoryRepository, courses core.CourseRepository, engagement core.EngagementRepository) *CatalogSeeder {
	return &CatalogSeeder{directory: directory, courses: courses, engagement: engagement, now: time.Now}
}

// WithClock allows tests to override the clock used by the seeder.
func (s *CatalogSeeder) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// Apply creates missing categories by name and adds quizzes whose question is
// not yet on the lesson, so running it twice changes nothing. Every entry is
// validated and resolved before the first write.
func (s *CatalogSeeder) Apply(ctx context.Context, catalog core.SeedCatalog) (core.SeedReport, error) {
	var report core.SeedReport

	names := make([]string, 0, len(catalog.Categories))
	for i, seed := range catalog.Categories {
		name := strings.TrimSpace(seed.Name)
		if name == "" {
			return report, fmt.Errorf("%w: categories[%d]: name is required", core.ErrValidation, i)
		}
		names = append(names, name)
	}

	quizzes := make([]core.Quiz, 0, len(catalog.Quizzes))
	for i, seed := range catalog.Quizzes {
		if strings.TrimSpace(seed.Question) == "" {
			return report, fmt.Errorf("%w: quizzes[%d]: question is required", core.ErrValidation, i)
		}
		course, err := s.courses.GetCourseBySlug(ctx, seed.Course, core.CourseQueryOptions{})
		if err != nil {
			return report, fmt.Errorf("quizzes[%d]: course %q: %w", i, seed.Course, err)
		}
		lesson, err := s.courses.GetLesson(ctx, course.ID, seed.Lesson)
		if err != nil {
			return report, fmt.Errorf("quizzes[%d]: lesson %q: %w", i, seed.Lesson, err)
		}
		quizzes = append(quizzes, core.Quiz{
			LessonID: lesson.ID,
			Question: seed.Question,
			Answer:   seed.Answer,
			Op1:      seed.Op1,
			Op2:      seed.Op2,
			Op3:      seed.Op3,
		})
	}

	for _, name := range names {
		_, err := s.directory.GetCategoryByName(ctx, name)
		if err == nil {
			report.CategoriesSkipped++
			continue
		}
		if !errors.Is(err, core.ErrNotFound) {
			return report, err
		}
		if _, err := s.directory.CreateCategory(ctx, core.Category{
			ID:        uuid.New(),
			Name:      name,
			CreatedAt: s.now().UTC(),
		}); err != nil {
			return report, fmt.Errorf("create category %q: %w", name, err)
		}
		report.CategoriesCreated++
	}

	// Questions already on each lesson, loaded once per lesson.
	questions := map[uuid.UUID]map[string]bool{}
	for i, quiz := range quizzes {
		known, ok := questions[quiz.LessonID]
		if !ok {
			existing, err := s.engagement.ListQuizzes(ctx, quiz.LessonID)
			if err != nil {
				return report, fmt.Errorf("quizzes[%d]: %w", i, err)
			}
			known = make(map[string]bool, len(existing))
			for _, q := range existing {
				known[q.Question] = true
			}
			questions[quiz.LessonID] = known
		}
		if known[quiz.Question] {
			report.QuizzesSkipped++
			continue
		}

		quiz.ID = uuid.New()
		quiz.CreatedAt = s.now().UTC()
		if _, err := s.engagement.CreateQuiz(ctx, quiz); err != nil {
			return report, fmt.Errorf("quizzes[%d]: %w", i, err)
		}
		known[quiz.Question] = true
		report.QuizzesCreated++
	}

	return report, nil
}
