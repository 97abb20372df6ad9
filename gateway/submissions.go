package gateway

import (
	"context"
	"fmt"

	"eduport/models"
)

type CreateSubmissionRequest struct {
	UserID             int    `json:"user_id"`
	TaskID             int    `json:"task_id"`
	CourseID           int    `json:"course_id"`
	SubmissionText     string `json:"submission_text"`
	SubmissionFileURL  string `json:"submission_file_url,omitempty"`
	SubmissionFileName string `json:"submission_file_name,omitempty"`
}

func (c *Client) CreateSubmission(ctx context.Context, req CreateSubmissionRequest) error {
	return c.do(ctx, "POST", "/api/submissions", "", req, nil)
}

// GetSubmission fetches the user's current submission for a task. Bounded
// by SubmissionTimeout: these lookups run in batches and one slow slot must
// not hold the whole view.
func (c *Client) GetSubmission(ctx context.Context, userID, taskID int) (*models.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, c.submissionTimeout)
	defer cancel()

	var out struct {
		Submission *models.Submission `json:"submission"`
	}
	path := fmt.Sprintf("/api/submissions/user/%d/task/%d", userID, taskID)
	if err := c.do(ctx, "GET", path, "", nil, &out); err != nil {
		return nil, err
	}
	return out.Submission, nil
}
