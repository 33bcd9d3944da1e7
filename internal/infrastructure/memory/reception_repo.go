package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.ReceptionRepository = (*ReceptionRepo)(nil)

// ReceptionRepo recepciones en memoria. Garantiza la unicidad del id_fiscale
// (case-insensitive, recortado) igual que la constraint única de PostgreSQL.
type ReceptionRepo struct {
	mu         sync.RWMutex
	receptions []*entity.Reception
}

// NewReceptionRepository construye el repositorio vacío.
func NewReceptionRepository() *ReceptionRepo {
	return &ReceptionRepo{}
}

// Create añade una recepción; falla con ErrIDFiscaleExists si el id_fiscale ya existe.
func (r *ReceptionRepo) Create(rec *entity.Reception) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := strings.TrimSpace(rec.IDFiscale)
	for _, e := range r.receptions {
		if strings.EqualFold(e.IDFiscale, id) {
			return domain.ErrIDFiscaleExists
		}
	}
	cp := *rec
	r.receptions = append(r.receptions, &cp)
	return nil
}

// GetByID obtiene una recepción por ID; (nil, nil) si no existe.
func (r *ReceptionRepo) GetByID(id string) (*entity.Reception, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.receptions {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByIDFiscale busca por id_fiscale (case-insensitive, recortado); (nil, nil) si no existe.
func (r *ReceptionRepo) GetByIDFiscale(idFiscale string) (*entity.Reception, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idFiscale = strings.TrimSpace(idFiscale)
	for _, e := range r.receptions {
		if strings.EqualFold(e.IDFiscale, idFiscale) {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve las recepciones (filtro opcional por tipo) en orden de inserción.
func (r *ReceptionRepo) List(typ string, limit, offset int) ([]*entity.Reception, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var filtered []*entity.Reception
	for _, e := range r.receptions {
		if typ == "" || e.Type == typ {
			filtered = append(filtered, e)
		}
	}
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(filtered) {
		end = len(filtered)
	}
	out := make([]*entity.Reception, 0, end-offset)
	for _, e := range filtered[offset:end] {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

// ListIDFiscales devuelve todos los identificadores fiscales registrados.
func (r *ReceptionRepo) ListIDFiscales() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.receptions))
	for _, e := range r.receptions {
		out = append(out, e.IDFiscale)
	}
	return out, nil
}

// UpdateStatut cambia el estado de una recepción.
func (r *ReceptionRepo) UpdateStatut(id, statut string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.receptions {
		if e.ID == id {
			e.Statut = statut
			e.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}
