package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eduport/gateway"
	"eduport/middleware"
	"eduport/services"
	"eduport/utils"
)

type TasksController struct {
	Progress *services.ProgressService
	GW       *gateway.Client
}

func NewTasksController(progress *services.ProgressService, gw *gateway.Client) *TasksController {
	return &TasksController{Progress: progress, GW: gw}
}

// GetTask serves the task header shown in the submit-task modal.
func (tc *TasksController) GetTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task id")
	}

	task, err := tc.GW.GetTask(c.UserContext(), id)
	if err != nil {
		return utils.GatewayError(c, err, "Failed to load task details")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"task": task})
}

// CompleteTask marks a task done and lets the caller re-fetch the views.
func (tc *TasksController) CompleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task id")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	if err := tc.Progress.CompleteTask(c.UserContext(), *sess.User(), id); err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to complete task"))
		return utils.GatewayError(c, err, "Failed to complete task")
	}

	sess.Toasts().Success("Task marked as completed!")
	return utils.SuccessMessage(c, fiber.StatusOK, "Task marked as completed!", nil)
}

// SubmitTask godoc
// @Summary Submit a task
// @Description Posts a submission; text is required, file URL and name optional
// @Tags tasks
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/tasks/{id}/submission [post]
func (tc *TasksController) SubmitTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task id")
	}

	type SubmitInput struct {
		CourseID           int    `json:"course_id"`
		SubmissionText     string `json:"submission_text"`
		SubmissionFileURL  string `json:"submission_file_url"`
		SubmissionFileName string `json:"submission_file_name"`
	}
	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	user := *sess.User()
	err = tc.Progress.SubmitTask(c.UserContext(), user, id, input.CourseID,
		input.SubmissionText, input.SubmissionFileURL, input.SubmissionFileName)
	if err != nil {
		if errors.Is(err, services.ErrEmptySubmission) {
			return utils.ValidationError(c, map[string]string{"submission_text": "Submission text is required"})
		}
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to submit task"))
		return utils.GatewayError(c, err, "Failed to submit task")
	}

	sess.Toasts().Success("Task submitted successfully!")

	// No optimistic update: both affected views are re-fetched so the
	// response reflects what the gateway actually stored.
	detail, err := tc.Progress.LoadCourseProgress(c.UserContext(), user, input.CourseID)
	if err != nil {
		detail = nil
	}
	cards, err := tc.Progress.LoadProgress(c.UserContext(), user)
	if err != nil {
		cards = nil
	}

	return utils.SuccessMessage(c, fiber.StatusOK, "Task submitted successfully!", fiber.Map{
		"detail":   detail,
		"progress": cards,
	})
}

// GetSubmission serves the view-submission modal.
func (tc *TasksController) GetSubmission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid task id")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	view, err := tc.Progress.LoadSubmission(c.UserContext(), *sess.User(), id)
	if err != nil {
		if errors.Is(err, services.ErrNoSubmission) {
			sess.Toasts().Error("No submission found")
			return utils.NotFound(c, "No submission found")
		}
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to load submission"))
		return utils.GatewayError(c, err, "Failed to load submission")
	}

	return utils.Success(c, fiber.StatusOK, view)
}
