package models

import "time"

type Course struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Level         string  `json:"level"` // beginner, intermediate, advanced
	DurationHours float64 `json:"duration_hours"`
	ImageURL      string  `json:"image_url"`

	// Joined from the review-stats endpoint, not part of the course record
	// itself. Zero values mean "no rating yet".
	AverageRating float64 `json:"averageRating,omitempty"`
	TotalReviews  int     `json:"totalReviews,omitempty"`
}

// Module is an informational content unit inside a course. No submission or
// grading attaches to it.
type Module struct {
	ID          int    `json:"id"`
	CourseID    int    `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Review struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	CourseID  int       `json:"course_id"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}
