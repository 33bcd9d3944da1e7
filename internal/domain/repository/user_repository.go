package repository

import "github.com/jhoicas/Girofle-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para el directorio de cuentas (DIP).
// La búsqueda por username es exacta (case-sensitive), comportamiento heredado del sistema.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Count() (int, error)
	Delete(id string) error
}
