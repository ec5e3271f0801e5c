package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/lindakrystal/inventario/internal/application/auth"
)

// AuthHandler login y logout de las páginas HTML.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
}

// NewAuthHandler construye el handler web de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// LoginPage muestra el formulario de login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Iniciar sesión",
		"Error": c.Query("error"),
	})
}

// Login procesa el formulario: verifica credenciales y abre la sesión.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Redirect("/login?error=Email+y+password+son+requeridos")
	}
	user, err := h.uc.Authenticate(email, password)
	if err != nil {
		return c.Redirect("/login?error=Credenciales+inválidas")
	}
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Redirect("/login?error=Error+de+sesión")
	}
	// Sesión nueva tras autenticar, para no heredar un session ID previo.
	if err := sess.Regenerate(); err != nil {
		return c.Redirect("/login?error=Error+de+sesión")
	}
	sess.Set(sessionUserID, user.ID)
	sess.Set(sessionUserName, user.Name)
	sess.Set(sessionUserRole, user.Role)
	if err := sess.Save(); err != nil {
		return c.Redirect("/login?error=Error+de+sesión")
	}
	return c.Redirect("/")
}

// Logout destruye la sesión y vuelve al login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/login")
}
