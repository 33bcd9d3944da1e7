package repository

import "github.com/jhoicas/Girofle-api/internal/domain/entity"

// ReceptionRepository define el puerto de persistencia para recepciones (DIP).
// Create debe fallar con domain.ErrIDFiscaleExists si el id_fiscale ya existe
// (comparación case-insensitive sobre el valor recortado).
type ReceptionRepository interface {
	Create(r *entity.Reception) error
	GetByID(id string) (*entity.Reception, error)
	GetByIDFiscale(idFiscale string) (*entity.Reception, error)
	List(typ string, limit, offset int) ([]*entity.Reception, error)
	ListIDFiscales() ([]string, error)
	UpdateStatut(id, statut string) error
}
