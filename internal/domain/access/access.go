// Package access define la tabla estática rol → páginas visibles y la página
// de aterrizaje por rol. Es la fuente de verdad del control de acceso por página:
// la consumen el middleware HTTP y el endpoint de navegación del cliente.
package access

import "github.com/jhoicas/Girofle-api/internal/domain/entity"

// Identificadores de página. Coinciden con las rutas del cliente.
const (
	PageLogin        = "/login"
	PageDashboard    = "/dashboard"
	PageCollecte     = "/collecte"
	PageDistillation = "/distillation"
	PageExpedition   = "/expedition"
	PageReception    = "/reception"
	PageVentes       = "/ventes"
	PageComptes      = "/comptes"
)

// allowedPages mapa rol → páginas permitidas. Inmutable en runtime.
// admin no aparece: tiene acceso incondicional a todo.
// Invariante: cada página del menú pertenece exactamente a un rol
// (o es solo-admin por defecto, como /dashboard y /comptes).
var allowedPages = map[string][]string{
	entity.RoleCollecteur:   {PageCollecte},
	entity.RoleDistillateur: {PageDistillation, PageExpedition},
	entity.RoleVendeur:      {PageReception, PageVentes},
}

// homePages página de aterrizaje fija por rol.
var homePages = map[string]string{
	entity.RoleAdmin:        PageDashboard,
	entity.RoleCollecteur:   PageCollecte,
	entity.RoleDistillateur: PageExpedition,
	entity.RoleVendeur:      PageReception,
}

// HasAccess responde si el rol puede ver la página. admin siempre puede;
// rol vacío o desconocido (sin sesión) nunca puede.
func HasAccess(role, pageID string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, p := range allowedPages[role] {
		if p == pageID {
			return true
		}
	}
	return false
}

// HomePage devuelve la página de aterrizaje del rol, o /login si no hay sesión.
func HomePage(role string) string {
	if p, ok := homePages[role]; ok {
		return p
	}
	return PageLogin
}

// Pages devuelve las páginas visibles para el rol (copia; la tabla no se expone mutable).
func Pages(role string) []string {
	if role == entity.RoleAdmin {
		return []string{PageDashboard, PageCollecte, PageDistillation, PageExpedition, PageReception, PageVentes, PageComptes}
	}
	src := allowedPages[role]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
