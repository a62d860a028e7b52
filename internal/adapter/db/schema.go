package db

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const textSize = 2147483647

var (
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Default: ""},
		{Name: "last_name", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "short_description", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "long_description", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeUUID},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "courses_users_courses",
				Columns:    []*schema.Column{CoursesColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "course_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[5], CoursesColumns[6]},
			},
		},
	}
	// CourseCategoriesColumns holds the columns for the "course_categories" table.
	CourseCategoriesColumns = []*schema.Column{
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// CourseCategoriesTable holds the schema information for the "course_categories" table.
	CourseCategoriesTable = &schema.Table{
		Name:       "course_categories",
		Columns:    CourseCategoriesColumns,
		PrimaryKey: []*schema.Column{CourseCategoriesColumns[0], CourseCategoriesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_categories_course_id",
				Columns:    []*schema.Column{CourseCategoriesColumns[0]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "course_categories_category_id",
				Columns:    []*schema.Column{CourseCategoriesColumns[1]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "short_description", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "long_description", Type: field.TypeString, Size: textSize, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_courses_lessons",
				Columns:    []*schema.Column{LessonsColumns[9]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_course_id_slug",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[9], LessonsColumns[3]},
			},
			{
				Name:    "lesson_course_id_seq",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[9], LessonsColumns[1]},
			},
		},
	}
	// QuizzesColumns holds the columns for the "quizzes" table.
	QuizzesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "question", Type: field.TypeString, Size: textSize},
		{Name: "answer", Type: field.TypeString, Default: ""},
		{Name: "op1", Type: field.TypeString, Default: ""},
		{Name: "op2", Type: field.TypeString, Default: ""},
		{Name: "op3", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeUUID},
	}
	// QuizzesTable holds the schema information for the "quizzes" table.
	QuizzesTable = &schema.Table{
		Name:       "quizzes",
		Columns:    QuizzesColumns,
		PrimaryKey: []*schema.Column{QuizzesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quizzes_lessons_quizzes",
				Columns:    []*schema.Column{QuizzesColumns[7]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// CommentsColumns holds the columns for the "comments" table.
	CommentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "content", Type: field.TypeString, Size: textSize},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "lesson_id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeUUID},
	}
	// CommentsTable holds the schema information for the "comments" table.
	CommentsTable = &schema.Table{
		Name:       "comments",
		Columns:    CommentsColumns,
		PrimaryKey: []*schema.Column{CommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "comments_courses_comments",
				Columns:    []*schema.Column{CommentsColumns[4]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "comments_lessons_comments",
				Columns:    []*schema.Column{CommentsColumns[5]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "comments_users_comments",
				Columns:    []*schema.Column{CommentsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "started"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "course_id", Type: field.TypeUUID},
		{Name: "lesson_id", Type: field.TypeUUID},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_users_activities",
				Columns:    []*schema.Column{ActivitiesColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "activities_courses_activities",
				Columns:    []*schema.Column{ActivitiesColumns[5]},
				RefColumns: []*schema.Column{CoursesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "activities_lessons_activities",
				Columns:    []*schema.Column{ActivitiesColumns[6]},
				RefColumns: []*schema.Column{LessonsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_created_by_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{ActivitiesColumns[4], ActivitiesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		UsersTable,
		CategoriesTable,
		CoursesTable,
		CourseCategoriesTable,
		LessonsTable,
		QuizzesTable,
		CommentsTable,
		ActivitiesTable,
	}
)

func init() {
	CoursesTable.ForeignKeys[0].RefTable = UsersTable
	CourseCategoriesTable.ForeignKeys[0].RefTable = CoursesTable
	CourseCategoriesTable.ForeignKeys[1].RefTable = CategoriesTable
	LessonsTable.ForeignKeys[0].RefTable = CoursesTable
	QuizzesTable.ForeignKeys[0].RefTable = LessonsTable
	CommentsTable.ForeignKeys[0].RefTable = CoursesTable
	CommentsTable.ForeignKeys[1].RefTable = LessonsTable
	CommentsTable.ForeignKeys[2].RefTable = UsersTable
	ActivitiesTable.ForeignKeys[0].RefTable = UsersTable
	ActivitiesTable.ForeignKeys[1].RefTable = CoursesTable
	ActivitiesTable.ForeignKeys[2].RefTable = LessonsTable
}

// Migrate creates or updates every table of the catalog schema.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("ent/migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("ent/migrate: create schema: %w", err)
	}
	return nil
}
