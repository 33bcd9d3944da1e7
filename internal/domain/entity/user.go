package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. El vocabulario sigue las rutas de la aplicación (francés).
const (
	RoleAdmin        = "admin"
	RoleCollecteur   = "collecteur"
	RoleDistillateur = "distillateur"
	RoleVendeur      = "vendeur"
)

// ValidRole indica si role pertenece a la enumeración fija.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCollecteur, RoleDistillateur, RoleVendeur:
		return true
	}
	return false
}

// User representa una identidad del directorio de cuentas.
// Balance solo tiene sentido para collecteur (saldo acreditado por sus collectes);
// para los demás roles queda en nil.
type User struct {
	ID           string
	Username     string // único en el directorio, comparación exacta (case-sensitive)
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, collecteur, distillateur, vendeur
	Balance      *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
