package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eduport/gateway"
	"eduport/middleware"
	"eduport/services"
	"eduport/ui"
	"eduport/utils"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

// GetMyCourses godoc
// @Summary Enrolled courses
// @Description Joins active enrollments with their course records
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/view/my-courses [get]
func (pc *ProgressController) GetMyCourses(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	courses, err := pc.Progress.LoadMyCourses(c.UserContext(), *sess.User())
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to load enrolled courses"))
		return utils.GatewayError(c, err, "Failed to load enrolled courses")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses": courses,
		"empty":   len(courses) == 0,
	})
}

// GetProgress serves the aggregate progress view. Enrollments whose fetches
// failed are simply absent from the list.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	cards, err := pc.Progress.LoadProgress(c.UserContext(), *sess.User())
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to load progress"))
		return utils.GatewayError(c, err, "Failed to load progress")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"progress": cards})
}

// GetCourseProgress serves the course/progress modal and opens it, modules
// tab first.
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	detail, err := pc.Progress.LoadCourseProgress(c.UserContext(), *sess.User(), id)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			sess.Toasts().Error("Course not found")
			return utils.NotFound(c, "Course not found")
		}
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to load progress"))
		return utils.GatewayError(c, err, "Failed to load progress")
	}

	sess.UpdateUI(func(st *ui.State) { st.OpenCourseModal(id) })
	return utils.Success(c, fiber.StatusOK, detail)
}

// CompleteCourse marks the course's progress record 100%/completed.
func (pc *ProgressController) CompleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	type CompleteInput struct {
		ProgressID int `json:"progress_id"`
	}
	var input CompleteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	if err := pc.Progress.MarkCourseCompleted(c.UserContext(), *sess.User(), id, input.ProgressID); err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to update progress"))
		return utils.GatewayError(c, err, "Failed to update progress")
	}

	sess.Toasts().Success("Progress updated!")
	return utils.SuccessMessage(c, fiber.StatusOK, "Progress updated!", nil)
}
