package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoginRequest entrada para login (username + password, comparación exacta).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT, el usuario y su navegación (home + páginas visibles).
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	Home  string       `json:"home"`
	Pages []string     `json:"pages"`
}

// CreateAccountRequest entrada para crear una cuenta (solo admin; password en texto, se hashea en el use case).
// AdminPassword es la segunda barrera antes de crear cuentas: el password de la
// cuenta admin en sesión. Barrera débil de secreto compartido, no un límite de seguridad.
type CreateAccountRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=100"`
	Password      string `json:"password" validate:"required,min=6"`
	Name          string `json:"name" validate:"omitempty,max=200"`
	Role          string `json:"role" validate:"required,oneof=admin collecteur distillateur vendeur"`
	AdminPassword string `json:"admin_password" validate:"required"`
}

// UserResponse salida de una identidad (sin credenciales).
// Balance solo se serializa para collecteur.
type UserResponse struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	Role      string           `json:"role"`
	Balance   *decimal.Decimal `json:"balance,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// UserListResponse listado de identidades del directorio.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// PagesResponse navegación del rol en sesión: página de aterrizaje y páginas visibles.
type PagesResponse struct {
	Home  string   `json:"home"`
	Pages []string `json:"pages"`
}

// VerifyAdminRequest entrada para verificar el password admin (barrera previa a crear cuentas).
type VerifyAdminRequest struct {
	Password string `json:"password" validate:"required"`
}

// VerifyAdminResponse salida de la verificación.
type VerifyAdminResponse struct {
	Valid bool `json:"valid"`
}
