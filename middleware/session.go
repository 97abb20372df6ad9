package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"eduport/session"
	"eduport/utils"
)

const sessionKey = "session"

// Session attaches the browser session to the request. A first-time visitor
// gets a fresh session id cookie; a returning one resumes, which validates
// any persisted token against the gateway once per process lifetime.
func Session(manager *session.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cookieName)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     cookieName,
				Value:    sid,
				Path:     "/",
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		sess := manager.Resume(c.UserContext(), sid)
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

// CurrentSession pulls the session the Session middleware attached. It is
// nil only on a route mounted outside that middleware; every route wired in
// SetupRoutes runs behind it, and handlers dereference unconditionally on
// that invariant.
func CurrentSession(c *fiber.Ctx) *session.Session {
	if s, ok := c.Locals(sessionKey).(*session.Session); ok {
		return s
	}
	return nil
}

// RequireAuth gates user-only routes. An absent session means "not
// authenticated", never an error.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := CurrentSession(c)
		if s == nil || !s.Authenticated() {
			return utils.Unauthorized(c, "Please login first")
		}
		return c.Next()
	}
}
