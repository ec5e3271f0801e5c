package domain

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// Acciones que un principal puede solicitar sobre los recursos del inventario.
const (
	ActionRead  = "read"
	ActionWrite = "write"
)

// Allows decide si un rol puede ejecutar una acción: lectura para cualquier
// usuario autenticado, escritura solo para admin. Es un predicado plano a
// propósito; no hay jerarquía de permisos.
func Allows(role, action string) bool {
	if role == "" {
		return false
	}
	switch action {
	case ActionRead:
		return true
	case ActionWrite:
		return role == RoleAdmin
	default:
		return false
	}
}
