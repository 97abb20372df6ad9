package gateway

import (
	"context"
	"fmt"

	"eduport/models"
)

// ListUserTasks returns the tasks of a course annotated with the user's own
// status on each. The gateway wraps the list in a {"tasks": [...]} envelope.
func (c *Client) ListUserTasks(ctx context.Context, userID, courseID int) ([]models.Task, error) {
	var out struct {
		Tasks []models.Task `json:"tasks"`
	}
	path := fmt.Sprintf("/api/tasks/user/%d/course/%d", userID, courseID)
	if err := c.do(ctx, "GET", path, "", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id int) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, "GET", fmt.Sprintf("/api/tasks/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteTask(ctx context.Context, taskID, userID int) error {
	body := map[string]int{"user_id": userID}
	return c.do(ctx, "POST", fmt.Sprintf("/api/tasks/%d/complete", taskID), "", body, nil)
}
