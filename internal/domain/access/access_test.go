package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Girofle-api/internal/domain/access"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
)

func TestHasAccess_AdminAccedeATodo(t *testing.T) {
	paginas := []string{
		access.PageLogin, access.PageDashboard, access.PageCollecte,
		access.PageDistillation, access.PageExpedition, access.PageReception,
		access.PageVentes, access.PageComptes,
	}
	for _, p := range paginas {
		assert.True(t, access.HasAccess(entity.RoleAdmin, p), "admin debe acceder a %s", p)
	}
}

func TestHasAccess_RolesOperativos(t *testing.T) {
	cases := []struct {
		role   string
		pagina string
		want   bool
	}{
		{entity.RoleCollecteur, access.PageCollecte, true},
		{entity.RoleCollecteur, access.PageReception, false},
		{entity.RoleCollecteur, access.PageComptes, false},
		{entity.RoleDistillateur, access.PageDistillation, true},
		{entity.RoleDistillateur, access.PageExpedition, true},
		{entity.RoleDistillateur, access.PageVentes, false},
		{entity.RoleVendeur, access.PageReception, true},
		{entity.RoleVendeur, access.PageVentes, true},
		{entity.RoleVendeur, access.PageCollecte, false},
		{entity.RoleVendeur, access.PageDashboard, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, access.HasAccess(tc.role, tc.pagina),
			"rol %s página %s", tc.role, tc.pagina)
	}
}

func TestHasAccess_RolDesconocidoNoAccede(t *testing.T) {
	assert.False(t, access.HasAccess("", access.PageCollecte))
	assert.False(t, access.HasAccess("superuser", access.PageDashboard))
}

func TestHomePage_PorRol(t *testing.T) {
	assert.Equal(t, access.PageDashboard, access.HomePage(entity.RoleAdmin))
	assert.Equal(t, access.PageCollecte, access.HomePage(entity.RoleCollecteur))
	assert.Equal(t, access.PageExpedition, access.HomePage(entity.RoleDistillateur))
	assert.Equal(t, access.PageReception, access.HomePage(entity.RoleVendeur))
	assert.Equal(t, access.PageLogin, access.HomePage(""), "sin sesión se aterriza en /login")
	assert.Equal(t, access.PageLogin, access.HomePage("desconocido"))
}

func TestPages_DevuelveCopia(t *testing.T) {
	p1 := access.Pages(entity.RoleVendeur)
	p1[0] = "/mutada"
	p2 := access.Pages(entity.RoleVendeur)
	assert.Equal(t, access.PageReception, p2[0], "mutar el resultado no toca la tabla")
}

func TestPages_RolDesconocidoVacio(t *testing.T) {
	assert.Empty(t, access.Pages("desconocido"))
}
