// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria protegidas por mutex. Es la implementación de los tests y del modo
// sin base de datos (DB_HOST y DATABASE_URL vacíos); no ofrece consistencia
// entre procesos ni durabilidad.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio de cuentas en memoria. El orden de inserción se conserva
// (el directorio es una colección ordenada).
type UserRepo struct {
	mu    sync.RWMutex
	users []*entity.User
}

// NewUserRepository construye el directorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{}
}

// Seed siembra el conjunto fijo inicial de cuentas si el directorio está vacío:
// admin más una cuenta por rol operativo. Los passwords se hashean con bcrypt.
func (r *UserRepo) Seed(adminPassword string) error {
	count, _ := r.Count()
	if count > 0 {
		return nil
	}
	seeds := []struct {
		username, password, name, role string
	}{
		{"admin", adminPassword, "Administrateur", entity.RoleAdmin},
		{"rakoto", "rakoto123", "Rakoto Bema", entity.RoleCollecteur},
		{"solofo", "solofo123", "Solofo Andrianina", entity.RoleDistillateur},
		{"hanta", "hanta123", "Hanta Razafy", entity.RoleVendeur},
	}
	now := time.Now()
	for i, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := &entity.User{
			ID:           "00000000-0000-0000-0000-00000000000" + string(rune('1'+i)),
			Username:     s.username,
			PasswordHash: string(hash),
			Name:         s.name,
			Role:         s.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if s.role == entity.RoleCollecteur {
			zero := decimal.Zero
			u.Balance = &zero
		}
		if err := r.Create(u); err != nil {
			return err
		}
	}
	return nil
}

// Create añade una identidad; falla con ErrUsernameExists sin mutar el directorio
// si el username ya existe (comparación exacta).
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameExists
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

// GetByID obtiene una identidad por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByUsername obtiene una identidad por username (comparación exacta); (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la identidad con el mismo ID.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// List devuelve las identidades en orden de inserción con paginación.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if offset >= len(r.users) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(r.users) {
		end = len(r.users)
	}
	out := make([]*entity.User, 0, end-offset)
	for _, u := range r.users[offset:end] {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// Count devuelve el tamaño del directorio.
func (r *UserRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

// Delete elimina por ID (no-op si no existe).
func (r *UserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}
