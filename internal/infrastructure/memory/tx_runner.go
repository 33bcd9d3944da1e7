package memory

import (
	"context"

	"github.com/jhoicas/Girofle-api/internal/application/usecase"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner variante en memoria del runner transaccional: ejecuta el callback
// sobre los mismos repos, sin rollback. Suficiente para tests y modo memoria;
// la atomicidad real la da la implementación PostgreSQL.
type TxRunner struct {
	receptions  *ReceptionRepo
	collectes   *CollecteRepo
	expeditions *ExpeditionRepo
	users       *UserRepo
}

// NewTxRunner construye el runner con los repos en memoria.
func NewTxRunner(r *ReceptionRepo, c *CollecteRepo, e *ExpeditionRepo, u *UserRepo) *TxRunner {
	return &TxRunner{receptions: r, collectes: c, expeditions: e, users: u}
}

// Run ejecuta fn con los repos en memoria.
func (t *TxRunner) Run(_ context.Context, fn func(
	receptionRepo repository.ReceptionRepository,
	collecteRepo repository.CollecteRepository,
	expeditionRepo repository.ExpeditionRepository,
	userRepo repository.UserRepository,
) error) error {
	return fn(t.receptions, t.collectes, t.expeditions, t.users)
}
