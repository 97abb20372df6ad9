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

type AuthController struct {
	Sessions *session.Manager
}

func NewAuthController(sessions *session.Manager) *AuthController {
	return &AuthController{Sessions: sessions}
}

// Login godoc
// @Summary Log in
// @Description Authenticates against the gateway and installs the session
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	user, err := ac.Sessions.Login(c.UserContext(), sess.ID(), input.Username, input.Password)
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Login failed"))
		return utils.GatewayError(c, err, "Login failed")
	}

	sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
	sess.Toasts().Success("Login successful!")
	return utils.SuccessMessage(c, fiber.StatusOK, "Login successful!", fiber.Map{
		"user":     user,
		"initials": views.Initials(*user),
	})
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input gateway.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	done := sess.Loading().Begin()
	defer done()

	user, err := ac.Sessions.Register(c.UserContext(), sess.ID(), input)
	if err != nil {
		sess.Toasts().Error(gateway.UserMessage(err, "Registration failed"))
		return utils.GatewayError(c, err, "Registration failed")
	}

	sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
	sess.Toasts().Success("Registration successful!")
	return utils.SuccessMessage(c, fiber.StatusOK, "Registration successful!", fiber.Map{
		"user":     user,
		"initials": views.Initials(*user),
	})
}

// Logout clears the session whether or not one was active.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	ac.Sessions.Logout(c.UserContext(), sess.ID())
	sess.UpdateUI(func(st *ui.State) { st.CloseModal() })
	sess.Toasts().Success("Logged out successfully")
	return utils.SuccessMessage(c, fiber.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated user, or 401 for an anonymous session.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	user := sess.User()
	if user == nil {
		return utils.Unauthorized(c, "Not authenticated")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":     user,
		"initials": views.Initials(*user),
	})
}
