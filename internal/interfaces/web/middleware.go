package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/lindakrystal/inventario/internal/domain"
)

// sessionUser datos del usuario logueado, extraídos de la sesión.
type sessionUser struct {
	ID       string
	Name     string
	Role     string
	CanWrite bool
}

// RequireSession exige sesión iniciada; si no hay, redirige a /login.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect("/login")
		}
		userID, _ := sess.Get(sessionUserID).(string)
		if userID == "" {
			return c.Redirect("/login")
		}
		name, _ := sess.Get(sessionUserName).(string)
		role, _ := sess.Get(sessionUserRole).(string)
		c.Locals("session_user", sessionUser{
			ID:       userID,
			Name:     name,
			Role:     role,
			CanWrite: domain.Allows(role, domain.ActionWrite),
		})
		return c.Next()
	}
}

// RequireWriteSession exige rol con permiso de escritura. Va después de
// RequireSession.
func RequireWriteSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if !user.CanWrite {
			return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
				"Title":   "Sin permiso",
				"Message": "Tu rol no permite modificar datos.",
				"User":    user,
			}, "layouts/main")
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) sessionUser {
	u, _ := c.Locals("session_user").(sessionUser)
	return u
}
