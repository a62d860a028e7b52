package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only note left on a lesson.
type Comment struct {
	ID        uuid.UUID
	CourseID  uuid.UUID
	LessonID  uuid.UUID
	Name      string
	Content   string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// Quiz is a multiple-choice question attached to a lesson.
type Quiz struct {
	ID        uuid.UUID
	LessonID  uuid.UUID
	Question  string
	Answer    string
	Op1       string
	Op2       string
	Op3       string
	CreatedAt time.Time
}

// AddCommentParams carries a comment submission.
type AddCommentParams struct {
	CourseSlug string
	LessonSlug string
	AuthorID   uuid.UUID
	Name       string
	Content    string
}

// EngagementRepository persists comments and quizzes.
type EngagementRepository interface {
	CreateComment(ctx context.Context, comment Comment) (*Comment, error)
	ListComments(ctx context.Context, lessonID uuid.UUID) ([]Comment, error)
	CreateQuiz(ctx context.Context, quiz Quiz) (*Quiz, error)
	ListQuizzes(ctx context.Context, lessonID uuid.UUID) ([]Quiz, error)
}

// EngagementService exposes comment and quiz use cases.
type EngagementService interface {
	ListQuizzes(ctx context.Context, courseSlug, lessonSlug string) ([]Quiz, error)
	ListComments(ctx context.Context, courseSlug, lessonSlug string) ([]Comment, error)
	AddComment(ctx context.Context, params AddCommentParams) (*Comment, error)
}
