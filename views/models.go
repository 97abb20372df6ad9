// Package views holds the typed view models the web surface serves and the
// pure mappings that build them. Nothing here touches the network; every
// constructor is a plain function over fetched entities, so rendering can be
// tested without a gateway.
package views

import (
	"time"

	"eduport/models"
)

// CourseCard is one tile in the catalog grid.
type CourseCard struct {
	Course    models.Course `json:"course"`
	Price     string        `json:"price"`
	HasRating bool          `json:"has_rating"`
	Stars     string        `json:"stars,omitempty"`
	Rating    float64       `json:"rating,omitempty"`
	Reviews   int           `json:"reviews,omitempty"`
}

func NewCourseCard(c models.Course) CourseCard {
	card := CourseCard{
		Course: c,
		Price:  FormatPriceIDR(c.Price),
	}
	if c.AverageRating > 0 {
		card.HasRating = true
		card.Stars = Stars(c.AverageRating)
		card.Rating = c.AverageRating
		card.Reviews = c.TotalReviews
	}
	return card
}

func NewCourseCards(courses []models.Course) []CourseCard {
	cards := make([]CourseCard, len(courses))
	for i, c := range courses {
		cards[i] = NewCourseCard(c)
	}
	return cards
}

// EnrolledCourse joins a course with the enrollment that grants access.
type EnrolledCourse struct {
	Course     models.Course     `json:"course"`
	Enrollment models.Enrollment `json:"enrollment"`
}

// TaskView overlays a task with its display status and, orthogonally, the
// user's submission when one exists. A completed task may carry no
// submission (manually marked) and vice versa.
type TaskView struct {
	Task       models.Task        `json:"task"`
	Status     string             `json:"status"`
	Submitted  bool               `json:"submitted"`
	Submission *models.Submission `json:"submission,omitempty"`
}

func NewTaskView(t models.Task, sub *models.Submission, now time.Time) TaskView {
	return TaskView{
		Task:       t,
		Status:     t.EffectiveStatus(now),
		Submitted:  sub != nil,
		Submission: sub,
	}
}

// CourseProgressCard is one entry in the aggregate progress view.
type CourseProgressCard struct {
	Course         models.Course     `json:"course"`
	Enrollment     models.Enrollment `json:"enrollment"`
	Progress       models.Progress   `json:"progress"`
	Tasks          []TaskView        `json:"tasks"`
	CompletedTasks int               `json:"completed_tasks"`
	TotalTasks     int               `json:"total_tasks"`
}

func NewCourseProgressCard(course models.Course, enrollment models.Enrollment, progress models.Progress, tasks []TaskView) CourseProgressCard {
	completed := 0
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted {
			completed++
		}
	}
	return CourseProgressCard{
		Course:         course,
		Enrollment:     enrollment,
		Progress:       progress,
		Tasks:          tasks,
		CompletedTasks: completed,
		TotalTasks:     len(tasks),
	}
}

// CourseDetail is the course/progress modal: progress header, then the
// modules and tasks sub-views.
type CourseDetail struct {
	Course   models.Course   `json:"course"`
	Progress models.Progress `json:"progress"`
	Modules  []models.Module `json:"modules"`
	Tasks    []TaskView      `json:"tasks"`
}

// CourseInfo is the public course detail: card data plus reviews.
type CourseInfo struct {
	Card    CourseCard         `json:"card"`
	Reviews []models.Review    `json:"reviews"`
	Stats   models.ReviewStats `json:"stats"`
	Stars   string             `json:"stars,omitempty"`
}

func NewCourseInfo(course models.Course, reviews []models.Review, stats models.ReviewStats) CourseInfo {
	info := CourseInfo{
		Card:    NewCourseCard(course),
		Reviews: reviews,
		Stats:   stats,
	}
	if stats.AverageRating > 0 {
		info.Stars = Stars(stats.AverageRating)
	}
	return info
}

// SubmissionView joins a task with the user's submission for display.
type SubmissionView struct {
	Task       models.Task       `json:"task"`
	Submission models.Submission `json:"submission"`
}
