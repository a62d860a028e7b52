package db

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/coursecatalog/internal/core"
)

var courseColumns = []string{
	"id", "title", "slug", "short_description", "long_description",
	"status", "created_by", "created_at", "updated_at",
}

// CourseRepository persists courses, their category links and lessons.
type CourseRepository struct {
	drv dialect.Driver
}

// NewCourseRepository constructs a repository on top of an ent SQL driver.
func NewCourseRepository(drv dialect.Driver) *CourseRepository {
	return &CourseRepository{drv: drv}
}

var _ core.CourseRepository = (*CourseRepository)(nil)

// CreateCourse inserts the course, its category links and nested lessons in one transaction.
func (r *CourseRepository) CreateCourse(ctx context.Context, course core.Course) (*core.Course, error) {
	b := builder(r.drv)
	err := withTx(ctx, r.drv, func(tx dialect.Tx) error {
		insert := b.Insert(CoursesTable.Name).
			Columns(courseColumns...).
			Values(
				course.ID, course.Title, course.Slug, course.ShortDescription, course.LongDescription,
				string(course.Status), course.CreatedBy, course.CreatedAt, course.UpdatedAt,
			)
		if err := execStmt(ctx, tx, insert); err != nil {
			return err
		}
		if err := insertCourseCategories(ctx, b, tx, course.ID, course.CategoryIDs); err != nil {
			return err
		}
		if len(course.Lessons) == 0 {
			return nil
		}
		lessons := b.Insert(LessonsTable.Name).Columns(lessonColumns...)
		for _, lesson := range course.Lessons {
			lessons.Values(lessonValues(lesson)...)
		}
		return execStmt(ctx, tx, lessons)
	})
	if err != nil {
		return nil, err
	}

	created := course
	return &created, nil
}

// UpdateCourse writes the mutable course columns and, when requested, replaces
// the category set. Both happen in one transaction.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course core.Course, opts core.CourseUpdateOptions) (*core.Course, error) {
	b := builder(r.drv)
	err := withTx(ctx, r.drv, func(tx dialect.Tx) error {
		update := b.Update(CoursesTable.Name).
			Set("title", course.Title).
			Set("short_description", course.ShortDescription).
			Set("long_description", course.LongDescription).
			Set("status", string(course.Status)).
			Set("updated_at", course.UpdatedAt).
			Where(entsql.EQ("id", course.ID))
		if err := execStmt(ctx, tx, update); err != nil {
			return err
		}
		if !opts.ReplaceCategories {
			return nil
		}
		remove := b.Delete(CourseCategoriesTable.Name).Where(entsql.EQ("course_id", course.ID))
		if err := execStmt(ctx, tx, remove); err != nil {
			return err
		}
		return insertCourseCategories(ctx, b, tx, course.ID, course.CategoryIDs)
	})
	if err != nil {
		return nil, err
	}

	updated := course
	return &updated, nil
}

// GetCourseBySlug fetches a course by slug with optional ownership and status
// constraints and optional expansions.
func (r *CourseRepository) GetCourseBySlug(ctx context.Context, slug string, opts core.CourseQueryOptions) (*core.Course, error) {
	b := builder(r.drv)
	t := b.Table(CoursesTable.Name)
	preds := []*entsql.Predicate{entsql.EQ(t.C("slug"), slug)}
	if opts.OwnerID != nil {
		preds = append(preds, entsql.EQ(t.C("created_by"), *opts.OwnerID))
	}
	if opts.Status != nil {
		preds = append(preds, entsql.EQ(t.C("status"), string(*opts.Status)))
	}
	sel := b.Select(qualified(t, courseColumns)...).
		From(t).
		Where(entsql.And(preds...))

	var course core.Course
	err := queryOne(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		return scanCourse(rows, &course)
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("course %q: %w", slug, core.ErrNotFound)
		}
		return nil, err
	}

	if err := r.loadCategories(ctx, &course); err != nil {
		return nil, err
	}
	if opts.IncludeRelations {
		author, err := getUser(ctx, b, r.drv, course.CreatedBy)
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			return nil, err
		}
		course.Author = author
	}
	if opts.IncludeLessons {
		lessons, err := r.ListLessons(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		course.Lessons = lessons
	}

	return &course, nil
}

// ListCourses returns courses matching the filter, oldest first.
func (r *CourseRepository) ListCourses(ctx context.Context, filter core.CourseFilter) ([]core.Course, error) {
	b := builder(r.drv)
	t := b.Table(CoursesTable.Name)
	sel := b.Select(qualified(t, courseColumns)...).From(t)

	var preds []*entsql.Predicate
	if len(filter.Statuses) > 0 {
		statuses := lo.Map(filter.Statuses, func(s core.CourseStatus, _ int) any {
			return string(s)
		})
		preds = append(preds, entsql.In(t.C("status"), statuses...))
	}
	if filter.CreatedBy != nil {
		preds = append(preds, entsql.EQ(t.C("created_by"), *filter.CreatedBy))
	}
	if filter.CategoryID != nil {
		links := b.Table(CourseCategoriesTable.Name)
		sel.Join(links).On(t.C("id"), links.C("course_id"))
		preds = append(preds, entsql.EQ(links.C("category_id"), *filter.CategoryID))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	sel.OrderBy(t.C("created_at"), t.C("id"))

	var courses []core.Course
	err := queryEach(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var course core.Course
		if err := scanCourse(rows, &course); err != nil {
			return err
		}
		courses = append(courses, course)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) loadCategories(ctx context.Context, course *core.Course) error {
	b := builder(r.drv)
	c := b.Table(CategoriesTable.Name)
	links := b.Table(CourseCategoriesTable.Name)
	sel := b.Select(c.C("id"), c.C("name"), c.C("created_at")).
		From(c).
		Join(links).On(c.C("id"), links.C("category_id")).
		Where(entsql.EQ(links.C("course_id"), course.ID)).
		OrderBy(c.C("name"))

	course.Categories = nil
	course.CategoryIDs = nil
	return queryEach(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var category core.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return err
		}
		course.Categories = append(course.Categories, category)
		course.CategoryIDs = append(course.CategoryIDs, category.ID)
		return nil
	})
}

func insertCourseCategories(ctx context.Context, b *entsql.DialectBuilder, tx dialect.ExecQuerier, courseID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	insert := b.Insert(CourseCategoriesTable.Name).Columns("course_id", "category_id")
	for _, id := range lo.Uniq(categoryIDs) {
		insert.Values(courseID, id)
	}
	return execStmt(ctx, tx, insert)
}

func scanCourse(rows *entsql.Rows, course *core.Course) error {
	var status string
	if err := rows.Scan(
		&course.ID,
		&course.Title,
		&course.Slug,
		&course.ShortDescription,
		&course.LongDescription,
		&status,
		&course.CreatedBy,
		&course.CreatedAt,
		&course.UpdatedAt,
	); err != nil {
		return err
	}
	course.Status = core.CourseStatus(status)
	return nil
}

func qualified(t *entsql.SelectTable, columns []string) []string {
	return lo.Map(columns, func(column string, _ int) string {
		return t.C(column)
	})
}
