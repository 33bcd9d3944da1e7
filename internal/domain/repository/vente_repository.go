package repository

import "github.com/jhoicas/Girofle-api/internal/domain/entity"

// VenteRepository define el puerto de persistencia para ventas (DIP).
type VenteRepository interface {
	Create(v *entity.Vente) error
	GetByID(id string) (*entity.Vente, error)
	List(limit, offset int) ([]*entity.Vente, error)
}
