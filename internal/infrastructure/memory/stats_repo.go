package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo agregaciones en memoria sobre los repositorios del mismo paquete.
type StatsRepo struct {
	receptions  *ReceptionRepo
	collectes   *CollecteRepo
	ventes      *VenteRepo
	expeditions *ExpeditionRepo
}

// NewStatsRepository construye el agregador sobre los repos en memoria.
func NewStatsRepository(r *ReceptionRepo, c *CollecteRepo, v *VenteRepo, e *ExpeditionRepo) *StatsRepo {
	return &StatsRepo{receptions: r, collectes: c, ventes: v, expeditions: e}
}

// PoidsNetParType suma los poids_net recibidos por tipo en el rango.
func (s *StatsRepo) PoidsNetParType(_ context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{
		entity.TypeFG: decimal.Zero,
		entity.TypeGG: decimal.Zero,
		entity.TypeCG: decimal.Zero,
	}
	s.receptions.mu.RLock()
	defer s.receptions.mu.RUnlock()
	for _, r := range s.receptions.receptions {
		if inRange(r.DateHeure, from, to) {
			out[r.Type] = out[r.Type].Add(r.PoidsNet)
		}
	}
	return out, nil
}

// MontantCollectes suma los montos de collectes en el rango.
func (s *StatsRepo) MontantCollectes(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	s.collectes.mu.RLock()
	defer s.collectes.mu.RUnlock()
	for _, c := range s.collectes.collectes {
		if inRange(c.Date, from, to) {
			total = total.Add(c.Montant)
		}
	}
	return total, nil
}

// MontantVentes suma los ingresos por ventas en el rango.
func (s *StatsRepo) MontantVentes(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	s.ventes.mu.RLock()
	defer s.ventes.mu.RUnlock()
	for _, v := range s.ventes.ventes {
		if inRange(v.Date, from, to) {
			total = total.Add(v.Montant)
		}
	}
	return total, nil
}

// ExpeditionsEnCours cuenta las expediciones abiertas.
func (s *StatsRepo) ExpeditionsEnCours(_ context.Context) (int, error) {
	n := 0
	s.expeditions.mu.RLock()
	defer s.expeditions.mu.RUnlock()
	for _, e := range s.expeditions.expeditions {
		if e.Statut == entity.ExpeditionEnCours {
			n++
		}
	}
	return n, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
