package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.ExpeditionRepository = (*ExpeditionRepo)(nil)

// ExpeditionRepo expediciones en memoria.
type ExpeditionRepo struct {
	mu          sync.RWMutex
	expeditions []*entity.Expedition
}

// NewExpeditionRepository construye el repositorio vacío.
func NewExpeditionRepository() *ExpeditionRepo {
	return &ExpeditionRepo{}
}

// Create añade una expedición.
func (r *ExpeditionRepo) Create(e *entity.Expedition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	cp.ReceptionIDs = append([]string(nil), e.ReceptionIDs...)
	r.expeditions = append(r.expeditions, &cp)
	return nil
}

// GetByID obtiene una expedición por ID; (nil, nil) si no existe.
func (r *ExpeditionRepo) GetByID(id string) (*entity.Expedition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.expeditions {
		if e.ID == id {
			cp := *e
			cp.ReceptionIDs = append([]string(nil), e.ReceptionIDs...)
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las expediciones en orden de inserción.
func (r *ExpeditionRepo) List(limit, offset int) ([]*entity.Expedition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if offset >= len(r.expeditions) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(r.expeditions) {
		end = len(r.expeditions)
	}
	out := make([]*entity.Expedition, 0, end-offset)
	for _, e := range r.expeditions[offset:end] {
		cp := *e
		cp.ReceptionIDs = append([]string(nil), e.ReceptionIDs...)
		out = append(out, &cp)
	}
	return out, nil
}

// UpdateStatut cambia el estado de una expedición.
func (r *ExpeditionRepo) UpdateStatut(id, statut string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.expeditions {
		if e.ID == id {
			e.Statut = statut
			e.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}
