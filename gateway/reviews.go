package gateway

import (
	"context"
	"fmt"

	"eduport/models"
)

type CreateReviewRequest struct {
	UserID   int    `json:"user_id"`
	CourseID int    `json:"course_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// CourseReviewStats returns the aggregate rating for one course. This is
// the endpoint the catalog enrichment walks course by course.
func (c *Client) CourseReviewStats(ctx context.Context, courseID int) (*models.ReviewStats, error) {
	var out models.ReviewStats
	if err := c.do(ctx, "GET", fmt.Sprintf("/api/reviews/course/%d/stats", courseID), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListReviews(ctx context.Context, courseID int) ([]models.Review, error) {
	var out []models.Review
	if err := c.do(ctx, "GET", fmt.Sprintf("/api/reviews?course_id=%d", courseID), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateReview(ctx context.Context, req CreateReviewRequest) error {
	return c.do(ctx, "POST", "/api/reviews", "", req, nil)
}
