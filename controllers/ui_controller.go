package controllers

import (
	"github.com/gofiber/fiber/v2"

	"eduport/middleware"
	"eduport/ui"
	"eduport/utils"
	"eduport/views"
)

// UIController exposes the per-session UI state machine: which modal is
// open, the course modal's sub-view, pending toasts and the spinner.
type UIController struct{}

func NewUIController() *UIController {
	return &UIController{}
}

func (uic *UIController) GetState(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)

	data := fiber.Map{
		"ui":            sess.UI(),
		"toasts":        sess.Toasts().Active(),
		"loading":       sess.Loading().Visible(),
		"authenticated": sess.Authenticated(),
	}
	if user := sess.User(); user != nil {
		data["user"] = user
		data["initials"] = views.Initials(*user)
	}
	return utils.Success(c, fiber.StatusOK, data)
}

// OpenModal opens the named modal, closing whatever was showing first.
// Profile and delete-confirm modals are user-only.
func (uic *UIController) OpenModal(c *fiber.Ctx) error {
	kind, err := ui.ParseModalKind(c.Params("kind"))
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	sess := middleware.CurrentSession(c)
	if (kind == ui.ModalProfile || kind == ui.ModalDeleteConfirm) && !sess.Authenticated() {
		sess.Toasts().Error("Please login first")
		return utils.Unauthorized(c, "Please login first")
	}

	sess.UpdateUI(func(st *ui.State) { st.OpenModal(kind) })
	return utils.Success(c, fiber.StatusOK, fiber.Map{"ui": sess.UI()})
}

func (uic *UIController) CloseModal(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
	return utils.Success(c, fiber.StatusOK, fiber.Map{"ui": sess.UI()})
}

// SwitchContentView toggles the course modal between modules and tasks.
func (uic *UIController) SwitchContentView(c *fiber.Ctx) error {
	view, err := ui.ParseContentView(c.Params("view"))
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	sess := middleware.CurrentSession(c)
	sess.UpdateUI(func(st *ui.State) { st.SwitchContentView(view) })
	return utils.Success(c, fiber.StatusOK, fiber.Map{"ui": sess.UI()})
}
