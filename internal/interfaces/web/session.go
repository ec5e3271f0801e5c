// Package web sirve las páginas HTML de la aplicación: login con sesión de
// cookie (respaldada en Redis) y CRUD de catálogo, productos y movimientos.
// Todas las páginas pasan por los mismos casos de uso que la API JSON.
package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/lindakrystal/inventario/pkg/config"
)

// Claves dentro de la sesión.
const (
	sessionUserID   = "user_id"
	sessionUserName = "user_name"
	sessionUserRole = "user_role"
)

// NewSessionStore construye el store de sesiones sobre el storage recibido
// (Redis en producción, memoria en tests).
func NewSessionStore(storage fiber.Storage, cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		Expiration:     time.Duration(cfg.ExpirationHours) * time.Hour,
		KeyLookup:      "cookie:inventario_session",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	})
}
