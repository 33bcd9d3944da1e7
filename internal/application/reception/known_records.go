package reception

import (
	"context"
	"sync"

	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ RecordList = (*KnownRecords)(nil)

// KnownRecords caché de los id_fiscale existentes, colaborador de lectura del Draft.
// Refetch recarga desde el repositorio; se invoca después de cada creación exitosa.
type KnownRecords struct {
	repo repository.ReceptionRepository

	mu  sync.RWMutex
	ids []string
}

// NewKnownRecords construye la caché vacía; el primer Refetch la llena.
func NewKnownRecords(repo repository.ReceptionRepository) *KnownRecords {
	return &KnownRecords{repo: repo}
}

// IDFiscales devuelve la última lista conocida (copia).
func (k *KnownRecords) IDFiscales() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]string, len(k.ids))
	copy(out, k.ids)
	return out
}

// Refetch recarga los identificadores desde el repositorio.
func (k *KnownRecords) Refetch(_ context.Context) error {
	ids, err := k.repo.ListIDFiscales()
	if err != nil {
		return err
	}
	k.mu.Lock()
	k.ids = ids
	k.mu.Unlock()
	return nil
}
