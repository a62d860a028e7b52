package transport

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/eslsoft/coursecatalog/internal/core"
)

type categoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

type courseSummaryResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
}

type courseDetailResponse struct {
	ID               uuid.UUID          `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	ShortDescription string             `json:"short_description"`
	LongDescription  string             `json:"long_description"`
	Status           string             `json:"status"`
	CreatedBy        *userResponse      `json:"created_by"`
	Categories       []categoryResponse `json:"categories"`
	CreatedAt        time.Time          `json:"created_at"`
}

type lessonResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	Status           string    `json:"status"`
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type quizResponse struct {
	ID       uuid.UUID `json:"id"`
	LessonID uuid.UUID `json:"lesson_id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Op1      string    `json:"op1"`
	Op2      string    `json:"op2"`
	Op3      string    `json:"op3"`
}

type activityResponse struct {
	ID     uuid.UUID `json:"id"`
	Course uuid.UUID `json:"course"`
	Lesson uuid.UUID `json:"lesson"`
	Status string    `json:"status"`
}

func toCategoryResponses(categories []core.Category) []categoryResponse {
	return lo.Map(categories, func(c core.Category, _ int) categoryResponse {
		return categoryResponse{ID: c.ID, Name: c.Name}
	})
}

func toUserResponse(user *core.User) *userResponse {
	if user == nil {
		return nil
	}
	return &userResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toCourseSummaries(courses []core.Course) []courseSummaryResponse {
	return lo.Map(courses, func(c core.Course, _ int) courseSummaryResponse {
		return courseSummaryResponse{
			ID:               c.ID,
			Title:            c.Title,
			Slug:             c.Slug,
			ShortDescription: c.ShortDescription,
		}
	})
}

func toCourseDetail(course *core.Course) courseDetailResponse {
	return courseDetailResponse{
		ID:               course.ID,
		Title:            course.Title,
		Slug:             course.Slug,
		ShortDescription: course.ShortDescription,
		LongDescription:  course.LongDescription,
		Status:           string(course.Status),
		CreatedBy:        toUserResponse(course.Author),
		Categories:       toCategoryResponses(course.Categories),
		CreatedAt:        course.CreatedAt,
	}
}

func toLessonResponses(lessons []core.Lesson) []lessonResponse {
	return lo.Map(lessons, func(l core.Lesson, _ int) lessonResponse {
		return lessonResponse{
			ID:               l.ID,
			Title:            l.Title,
			Slug:             l.Slug,
			ShortDescription: l.ShortDescription,
			LongDescription:  l.LongDescription,
			Status:           string(l.Status),
		}
	})
}

func toCommentResponse(c core.Comment) commentResponse {
	return commentResponse{ID: c.ID, Name: c.Name, Content: c.Content, CreatedAt: c.CreatedAt}
}

func toCommentResponses(comments []core.Comment) []commentResponse {
	return lo.Map(comments, func(c core.Comment, _ int) commentResponse {
		return toCommentResponse(c)
	})
}

func toQuizResponses(quizzes []core.Quiz) []quizResponse {
	return lo.Map(quizzes, func(q core.Quiz, _ int) quizResponse {
		return quizResponse{
			ID:       q.ID,
			LessonID: q.LessonID,
			Question: q.Question,
			Answer:   q.Answer,
			Op1:      q.Op1,
			Op2:      q.Op2,
			Op3:      q.Op3,
		}
	})
}

func toActivityResponse(a *core.Activity) activityResponse {
	return activityResponse{ID: a.ID, Course: a.CourseID, Lesson: a.LessonID, Status: string(a.Status)}
}
