package repository

import "github.com/jhoicas/Girofle-api/internal/domain/entity"

// ExpeditionRepository define el puerto de persistencia para expediciones (DIP).
type ExpeditionRepository interface {
	Create(e *entity.Expedition) error
	GetByID(id string) (*entity.Expedition, error)
	List(limit, offset int) ([]*entity.Expedition, error)
	UpdateStatut(id, statut string) error
}
