package memory

import (
	"sync"

	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.CollecteRepository = (*CollecteRepo)(nil)

// CollecteRepo collectes en memoria.
type CollecteRepo struct {
	mu        sync.RWMutex
	collectes []*entity.Collecte
}

// NewCollecteRepository construye el repositorio vacío.
func NewCollecteRepository() *CollecteRepo {
	return &CollecteRepo{}
}

// Create añade una collecte.
func (r *CollecteRepo) Create(c *entity.Collecte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.collectes = append(r.collectes, &cp)
	return nil
}

// GetByID obtiene una collecte por ID; (nil, nil) si no existe.
func (r *CollecteRepo) GetByID(id string) (*entity.Collecte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.collectes {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las collectes (filtro opcional por collecteur) en orden de inserción.
func (r *CollecteRepo) List(collecteurID string, limit, offset int) ([]*entity.Collecte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var filtered []*entity.Collecte
	for _, c := range r.collectes {
		if collecteurID == "" || c.CollecteurID == collecteurID {
			filtered = append(filtered, c)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(filtered) {
		end = len(filtered)
	}
	out := make([]*entity.Collecte, 0, end-offset)
	for _, c := range filtered[offset:end] {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
