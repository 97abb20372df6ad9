package gateway

import (
	"context"
	"fmt"
	"time"

	"eduport/models"
)

type InitProgressRequest struct {
	UserID               int     `json:"user_id"`
	CourseID             int     `json:"course_id"`
	EnrollmentID         int     `json:"enrollment_id"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Status               string  `json:"status"`
}

type UpdateProgressRequest struct {
	CompletionPercentage float64    `json:"completion_percentage"`
	Status               string     `json:"status"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

func (c *Client) InitProgress(ctx context.Context, req InitProgressRequest) error {
	return c.do(ctx, "POST", "/api/progress", "", req, nil)
}

func (c *Client) GetProgress(ctx context.Context, userID, courseID int) (*models.Progress, error) {
	var out models.Progress
	path := fmt.Sprintf("/api/progress/user/%d/course/%d", userID, courseID)
	if err := c.do(ctx, "GET", path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProgress(ctx context.Context, progressID int, req UpdateProgressRequest) error {
	return c.do(ctx, "PUT", fmt.Sprintf("/api/progress/%d", progressID), "", req, nil)
}
