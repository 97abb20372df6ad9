package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eduport/gateway"
	"eduport/middleware"
	"eduport/services"
	"eduport/ui"
	"eduport/utils"
	"eduport/views"
)

type CoursesController struct {
	Catalog  *services.CatalogService
	Progress *services.ProgressService
	GW       *gateway.Client
}

func NewCoursesController(catalog *services.CatalogService, progress *services.ProgressService, gw *gateway.Client) *CoursesController {
	return &CoursesController{Catalog: catalog, Progress: progress, GW: gw}
}

// GetCourses godoc
// @Summary Course catalog
// @Description Returns the cached catalog filtered by category; refresh=true re-fetches
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/view/courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	if !cc.Catalog.Loaded() || c.QueryBool("refresh") {
		if _, err := cc.Catalog.LoadCourses(c.UserContext()); err != nil {
			sess.Toasts().Error(gateway.UserMessage(err, "Failed to load courses"))
			return utils.GatewayError(c, err, "Failed to load courses")
		}
	}

	category := c.Query("category")
	if category == "" {
		category = sess.UI().Filter
	} else {
		sess.UpdateUI(func(st *ui.State) { st.SetFilter(category) })
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses":       views.NewCourseCards(cc.Catalog.FilterCourses(category)),
		"filter":        category,
		"authenticated": sess.Authenticated(),
	})
}

// GetCourseDetail serves the public course modal: course, reviews, stats.
func (cc *CoursesController) GetCourseDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	course, ok := cc.Catalog.CourseByID(id)
	if !ok {
		fetched, err := cc.GW.GetCourse(c.UserContext(), id)
		if err != nil {
			sess.Toasts().Error(gateway.UserMessage(err, "Failed to load course details"))
			return utils.GatewayError(c, err, "Failed to load course details")
		}
		course = *fetched
	}

	reviews, stats, err := cc.Catalog.CourseReviews(c.UserContext(), id)
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to load course details"))
		return utils.GatewayError(c, err, "Failed to load course details")
	}

	sess.UpdateUI(func(st *ui.State) { st.OpenCourseModal(id) })
	return utils.Success(c, fiber.StatusOK, views.NewCourseInfo(course, reviews, stats))
}

// GetModuleDetail serves one module's detail inside the course modal. The
// back transition is the caller re-fetching the course progress view, which
// reopens the modal on its tabs.
func (cc *CoursesController) GetModuleDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid module id")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	module, err := cc.GW.GetModule(c.UserContext(), id)
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to load module details"))
		return utils.GatewayError(c, err, "Failed to load module details")
	}

	sess.UpdateUI(func(st *ui.State) { st.OpenModuleDetail(module.CourseID, module.ID) })
	return utils.Success(c, fiber.StatusOK, fiber.Map{"module": module})
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/courses/{id}/enroll [post]
func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	enrollment, err := cc.Progress.Enroll(c.UserContext(), *sess.User(), id)
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Enrollment failed"))
		return utils.GatewayError(c, err, "Enrollment failed")
	}

	sess.Toasts().Success("Successfully enrolled in course!")
	return utils.SuccessMessage(c, fiber.StatusOK, "Successfully enrolled in course!", fiber.Map{
		"enrollment": enrollment,
	})
}

// SubmitReview posts a review and refreshes the catalog so the new rating
// shows up.
func (cc *CoursesController) SubmitReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	type ReviewInput struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	var input ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	if err := cc.Catalog.SubmitReview(c.UserContext(), *sess.User(), id, input.Rating, input.Comment); err != nil {
		if errors.Is(err, services.ErrInvalidRating) {
			return utils.ValidationError(c, map[string]string{"rating": "Rating must be between 1 and 5"})
		}
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to submit review"))
		return utils.GatewayError(c, err, "Failed to submit review")
	}

	sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
	sess.Toasts().Success("Review submitted successfully!")
	if _, err := cc.Catalog.LoadCourses(c.UserContext()); err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to load courses"))
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Review submitted successfully!", nil)
}
