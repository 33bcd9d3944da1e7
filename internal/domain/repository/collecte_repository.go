package repository

import "github.com/jhoicas/Girofle-api/internal/domain/entity"

// CollecteRepository define el puerto de persistencia para collectes (DIP).
type CollecteRepository interface {
	Create(c *entity.Collecte) error
	GetByID(id string) (*entity.Collecte, error)
	List(collecteurID string, limit, offset int) ([]*entity.Collecte, error)
}
