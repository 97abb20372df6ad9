package controllers

import (
	"github.com/gofiber/fiber/v2"

	"eduport/gateway"
	"eduport/middleware"
	"eduport/session"
	"eduport/ui"
	"eduport/utils"
	"eduport/views"
)

type UserController struct {
	Sessions *session.Manager
	GW       *gateway.Client
}

func NewUserController(sessions *session.Manager, gw *gateway.Client) *UserController {
	return &UserController{Sessions: sessions, GW: gw}
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Updates name, username, email and optionally the password
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	var input gateway.UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	user := sess.User()
	updated, err := uc.GW.UpdateUser(c.UserContext(), sess.Token(), user.ID, input)
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to update profile"))
		return utils.GatewayError(c, err, "Failed to update profile")
	}

	uc.Sessions.SetUser(sess.ID(), updated)
	sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
	sess.Toasts().Success("Profile updated successfully!")
	return utils.SuccessMessage(c, fiber.StatusOK, "Profile updated successfully!", fiber.Map{
		"user":     updated,
		"initials": views.Initials(*updated),
	})
}

// DeleteAccount removes the account at the gateway, then logs the session
// out; the token is dead either way.
func (uc *UserController) DeleteAccount(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	user := sess.User()
	if err := uc.GW.DeleteUser(c.UserContext(), sess.Token(), user.ID); err != nil {
		sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
		sess.Toasts().Error(gateway.UserMessage(err, "Failed to delete account"))
		return utils.GatewayError(c, err, "Failed to delete account")
	}

	uc.Sessions.Logout(c.UserContext(), sess.ID())
	sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
	sess.Toasts().Success("Account deleted successfully")
	return utils.SuccessMessage(c, fiber.StatusOK, "Account deleted successfully", nil)
}
