package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lindakrystal/inventario/internal/domain"
)

func TestAllows(t *testing.T) {
	cases := []struct {
		name   string
		role   string
		action string
		want   bool
	}{
		{"admin lee", domain.RoleAdmin, domain.ActionRead, true},
		{"admin escribe", domain.RoleAdmin, domain.ActionWrite, true},
		{"vendedor lee", domain.RoleVendedor, domain.ActionRead, true},
		{"vendedor no escribe", domain.RoleVendedor, domain.ActionWrite, false},
		{"rol desconocido lee", "auditor", domain.ActionRead, true},
		{"rol desconocido no escribe", "auditor", domain.ActionWrite, false},
		{"rol vacío no lee", "", domain.ActionRead, false},
		{"rol vacío no escribe", "", domain.ActionWrite, false},
		{"acción desconocida", domain.RoleAdmin, "delete-everything", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.Allows(tc.role, tc.action))
		})
	}
}
