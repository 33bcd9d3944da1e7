package usecase

import (
	"context"

	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las operaciones que
// tocan varias tablas (crear collecte + acreditar saldo, crear expedición +
// marcar recepciones).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		receptionRepo repository.ReceptionRepository,
		collecteRepo repository.CollecteRepository,
		expeditionRepo repository.ExpeditionRepository,
		userRepo repository.UserRepository,
	) error) error
}
