package db

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

var (
	commentColumns = []string{"id", "course_id", "lesson_id", "name", "content", "created_by", "created_at"}
	quizColumns    = []string{"id", "lesson_id", "question", "answer", "op1", "op2", "op3", "created_at"}
)

// EngagementRepository persists lesson comments and quizzes.
type EngagementRepository struct {
	drv dialect.Driver
}

// NewEngagementRepository constructs a repository on top of an ent SQL driver.
func NewEngagementRepository(drv dialect.Driver) *EngagementRepository {
	return &EngagementRepository{drv: drv}
}

var _ core.EngagementRepository = (*EngagementRepository)(nil)

func (r *EngagementRepository) CreateComment(ctx context.Context, comment core.Comment) (*core.Comment, error) {
	insert := builder(r.drv).Insert(CommentsTable.Name).
		Columns(commentColumns...).
		Values(comment.ID, comment.CourseID, comment.LessonID, comment.Name, comment.Content, comment.CreatedBy, comment.CreatedAt)
	if err := execStmt(ctx, r.drv, insert); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the lesson's comments, oldest first.
func (r *EngagementRepository) ListComments(ctx context.Context, lessonID uuid.UUID) ([]core.Comment, error) {
	b := builder(r.drv)
	t := b.Table(CommentsTable.Name)
	sel := b.Select(qualified(t, commentColumns)...).
		From(t).
		Where(entsql.EQ(t.C("lesson_id"), lessonID)).
		OrderBy(t.C("created_at"), t.C("id"))

	var comments []core.Comment
	err := queryEach(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var c core.Comment
		if err := rows.Scan(&c.ID, &c.CourseID, &c.LessonID, &c.Name, &c.Content, &c.CreatedBy, &c.CreatedAt); err != nil {
			return err
		}
		comments = append(comments, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *EngagementRepository) CreateQuiz(ctx context.Context, quiz core.Quiz) (*core.Quiz, error) {
	insert := builder(r.drv).Insert(QuizzesTable.Name).
		Columns(quizColumns...).
		Values(quiz.ID, quiz.LessonID, quiz.Question, quiz.Answer, quiz.Op1, quiz.Op2, quiz.Op3, quiz.CreatedAt)
	if err := execStmt(ctx, r.drv, insert); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// ListQuizzes returns the lesson's quizzes, oldest first.
func (r *EngagementRepository) ListQuizzes(ctx context.Context, lessonID uuid.UUID) ([]core.Quiz, error) {
	b := builder(r.drv)
	t := b.Table(QuizzesTable.Name)
	sel := b.Select(qualified(t, quizColumns)...).
		From(t).
		Where(entsql.EQ(t.C("lesson_id"), lessonID)).
		OrderBy(t.C("created_at"), t.C("id"))

	var quizzes []core.Quiz
	err := queryEach(ctx, r.drv, sel, func(rows *entsql.Rows) error {
		var q core.Quiz
		if err := rows.Scan(&q.ID, &q.LessonID, &q.Question, &q.Answer, &q.Op1, &q.Op2, &q.Op3, &q.CreatedAt); err != nil {
			return err
		}
		quizzes = append(quizzes, q)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}
