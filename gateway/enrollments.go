package gateway

import (
	"context"
	"fmt"

	"eduport/models"
)

// Enroll registers a user into a course. The gateway rejects duplicates;
// the client does not pre-check.
func (c *Client) Enroll(ctx context.Context, userID, courseID int) (*models.Enrollment, error) {
	body := map[string]int{"user_id": userID, "course_id": courseID}
	var out struct {
		Enrollment models.Enrollment `json:"enrollment"`
	}
	if err := c.do(ctx, "POST", "/api/enrollments", "", body, &out); err != nil {
		return nil, err
	}
	return &out.Enrollment, nil
}

func (c *Client) ListEnrollments(ctx context.Context, userID int, status string) ([]models.Enrollment, error) {
	path := fmt.Sprintf("/api/enrollments?user_id=%d", userID)
	if status != "" {
		path += "&status=" + status
	}
	var out []models.Enrollment
	if err := c.do(ctx, "GET", path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
