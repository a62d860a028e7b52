package db

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

var activityColumns = []string{"id", "created_by", "course_id", "lesson_id", "status", "created_at", "updated_at"}

// ActivityRepository persists per-lesson learner progress.
type ActivityRepository struct {
	drv dialect.Driver
}

// NewActivityRepository constructs a repository on top of an ent SQL driver.
func NewActivityRepository(drv dialect.Driver) *ActivityRepository {
	return &ActivityRepository{drv: drv}
}

var _ core.ActivityRepository = (*ActivityRepository)(nil)

// GetActivity fetches the user's activity for a lesson.
func (r *ActivityRepository) GetActivity(ctx context.Context, userID, lessonID uuid.UUID) (*core.Activity, error) {
	b := builder(r.drv)
	t := b.Table(ActivitiesTable.Name)
	sel := b.Select(qualified(t, activityColumns)...).
		From(t).
		Where(entsql.And(
			entsql.EQ(t.C("created_by"), userID),
			entsql.EQ(t.C("lesson_id"), lessonID),
		))

	var activity core.Activity
	err := queryOne(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var status string
		if err := rows.Scan(
			&activity.ID,
			&activity.CreatedBy,
			&activity.CourseID,
			&activity.LessonID,
			&status,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		); err != nil {
			return err
		}
		activity.Status = core.ActivityStatus(status)
		return nil
	})
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("activity: %w", core.ErrNotFound)
		}
		return nil, err
	}
	return &activity, nil
}

// CreateActivity inserts a new activity. A second activity for the same user
// and lesson fails with core.ErrConflict.
func (r *ActivityRepository) CreateActivity(ctx context.Context, activity core.Activity) (*core.Activity, error) {
	insert := builder(r.drv).Insert(ActivitiesTable.Name).
		Columns(activityColumns...).
		Values(
			activity.ID, activity.CreatedBy, activity.CourseID, activity.LessonID,
			string(activity.Status), activity.CreatedAt, activity.UpdatedAt,
		)
	if err := execStmt(ctx, r.drv, insert); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) UpdateActivity(ctx context.Context, activity core.Activity) (*core.Activity, error) {
	update := builder(r.drv).Update(ActivitiesTable.Name).
		Set("status", string(activity.Status)).
		Set("updated_at", activity.UpdatedAt).
		Where(entsql.EQ("id", activity.ID))
	if err := execStmt(ctx, r.drv, update); err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListActiveCourses returns the distinct courses the user has activity on.
func (r *ActivityRepository) ListActiveCourses(ctx context.Context, userID uuid.UUID) ([]core.Course, error) {
	b := builder(r.drv)
	c := b.Table(CoursesTable.Name)
	a := b.Table(ActivitiesTable.Name)
	sel := b.Select(qualified(c, courseColumns)...).
		Distinct().
		From(c).
		Join(a).On(c.C("id"), a.C("course_id")).
		Where(entsql.EQ(a.C("created_by"), userID)).
		OrderBy(c.C("created_at"), c.C("id"))

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
