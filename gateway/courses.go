package gateway

import (
	"context"
	"fmt"

	"eduport/models"
)

func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.do(ctx, "GET", "/api/courses", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, "GET", fmt.Sprintf("/api/courses/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListModules(ctx context.Context, courseID int) ([]models.Module, error) {
	var out []models.Module
	if err := c.do(ctx, "GET", fmt.Sprintf("/api/modules?course_id=%d", courseID), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetModule(ctx context.Context, id int) (*models.Module, error) {
	var out models.Module
	if err := c.do(ctx, "GET", fmt.Sprintf("/api/modules/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
