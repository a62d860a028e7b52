package db

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

var lessonColumns = []string{
	"id", "course_id", "seq", "title", "slug", "short_description",
	"long_description", "status", "created_at", "updated_at",
}

func lessonValues(lesson core.Lesson) []any {
	return []any{
		lesson.ID, lesson.CourseID, lesson.Seq, lesson.Title, lesson.Slug, lesson.ShortDescription,
		lesson.LongDescription, string(lesson.Status), lesson.CreatedAt, lesson.UpdatedAt,
	}
}

// CreateLesson appends the lesson after the last one of its course.
func (r *CourseRepository) CreateLesson(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	b := builder(r.drv)
	err := withTx(ctx, r.drv, func(tx dialect.Tx) error {
		t := b.Table(LessonsTable.Name)
		sel := b.Select(entsql.Max(t.C("seq"))).
			From(t).
			Where(entsql.EQ(t.C("course_id"), lesson.CourseID))

		var last stdsql.NullInt64
		if err := queryEach(ctx, tx, sel, func(rows *entsql.Rows) error {
			return rows.Scan(&last)
		}); err != nil {
			return err
		}
		lesson.Seq = int(last.Int64) + 1

		insert := b.Insert(LessonsTable.Name).
			Columns(lessonColumns...).
			Values(lessonValues(lesson)...)
		return execStmt(ctx, tx, insert)
	})
	if err != nil {
		return nil, err
	}

	created := lesson
	return &created, nil
}

// UpdateLesson writes the mutable lesson columns. Seq and course never change.
func (r *CourseRepository) UpdateLesson(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	update := builder(r.drv).Update(LessonsTable.Name).
		Set("title", lesson.Title).
		Set("slug", lesson.Slug).
		Set("short_description", lesson.ShortDescription).
		Set("long_description", lesson.LongDescription).
		Set("status", string(lesson.Status)).
		Set("updated_at", lesson.UpdatedAt).
		Where(entsql.EQ("id", lesson.ID))
	if err := execStmt(ctx, r.drv, update); err != nil {
		return nil, err
	}

	updated := lesson
	return &updated, nil
}

// GetLesson fetches the first lesson of the course with the given slug.
func (r *CourseRepository) GetLesson(ctx context.Context, courseID uuid.UUID, slug string) (*core.Lesson, error) {
	return r.firstLesson(ctx, slug, &courseID)
}

// FindLessonBySlug fetches the oldest lesson with the given slug across all courses.
func (r *CourseRepository) FindLessonBySlug(ctx context.Context, slug string) (*core.Lesson, error) {
	return r.firstLesson(ctx, slug, nil)
}

// ListLessons returns every lesson of the course ordered by seq.
func (r *CourseRepository) ListLessons(ctx context.Context, courseID uuid.UUID) ([]core.Lesson, error) {
	b := builder(r.drv)
	t := b.Table(LessonsTable.Name)
	sel := b.Select(qualified(t, lessonColumns)...).
		From(t).
		Where(entsql.EQ(t.C("course_id"), courseID)).
		OrderBy(t.C("seq"), t.C("created_at"))

	var lessons []core.Lesson
	err := queryEach(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var lesson core.Lesson
		if err := scanLesson(rows, &lesson); err != nil {
			return err
		}
		lessons = append(lessons, lesson)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *CourseRepository) firstLesson(ctx context.Context, slug string, courseID *uuid.UUID) (*core.Lesson, error) {
	b := builder(r.drv)
	t := b.Table(LessonsTable.Name)
	pred := entsql.EQ(t.C("slug"), slug)
	if courseID != nil {
		pred = entsql.And(pred, entsql.EQ(t.C("course_id"), *courseID))
	}
	sel := b.Select(qualified(t, lessonColumns)...).
		From(t).
		Where(pred).
		OrderBy(t.C("created_at"), t.C("seq"), t.C("id")).
		Limit(1)

	var lesson core.Lesson
	err := queryOne(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		return scanLesson(rows, &lesson)
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("lesson %q: %w", slug, core.ErrNotFound)
		}
		return nil, err
	}
	return &lesson, nil
}

func scanLesson(rows *entsql.Rows, lesson *core.Lesson) error {
	var status string
	if err := rows.Scan(
		&lesson.ID,
		&lesson.CourseID,
		&lesson.Seq,
		&lesson.Title,
		&lesson.Slug,
		&lesson.ShortDescription,
		&lesson.LongDescription,
		&status,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	); err != nil {
		return err
	}
	lesson.Status = core.LessonStatus(status)
	return nil
}
