package memory

import (
	"sync"

	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.VenteRepository = (*VenteRepo)(nil)

// VenteRepo ventas en memoria.
type VenteRepo struct {
	mu     sync.RWMutex
	ventes []*entity.Vente
}

// NewVenteRepository construye el repositorio vacío.
func NewVenteRepository() *VenteRepo {
	return &VenteRepo{}
}

// Create añade una venta.
func (r *VenteRepo) Create(v *entity.Vente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.ventes = append(r.ventes, &cp)
	return nil
}

// GetByID obtiene una venta por ID; (nil, nil) si no existe.
func (r *VenteRepo) GetByID(id string) (*entity.Vente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.ventes {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las ventas en orden de inserción.
func (r *VenteRepo) List(limit, offset int) ([]*entity.Vente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if offset >= len(r.ventes) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(r.ventes) {
		end = len(r.ventes)
	}
	out := make([]*entity.Vente, 0, end-offset)
	for _, v := range r.ventes[offset:end] {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}
