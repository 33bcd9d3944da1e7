package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de agregación read-only para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// PoidsNetParType suma los poids_net recibidos por tipo en el rango.
// Los tipos sin recepciones aparecen con cero.
func (r *StatsRepo) PoidsNetParType(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{
		entity.TypeFG: decimal.Zero,
		entity.TypeGG: decimal.Zero,
		entity.TypeCG: decimal.Zero,
	}
	query := `
		SELECT type, COALESCE(SUM(poids_net), 0)
		FROM receptions WHERE date_heure BETWEEN $1 AND $2
		GROUP BY type`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("poids par type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var typ string
		var total decimal.Decimal
		if err := rows.Scan(&typ, &total); err != nil {
			return nil, fmt.Errorf("scan poids par type: %w", err)
		}
		out[typ] = total
	}
	return out, rows.Err()
}

// MontantCollectes suma los montos de collectes en el rango.
func (r *StatsRepo) MontantCollectes(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(montant), 0) FROM collectes WHERE date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("montant collectes: %w", err)
	}
	return total, nil
}

// MontantVentes suma los ingresos por ventas en el rango.
func (r *StatsRepo) MontantVentes(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(montant), 0) FROM ventes WHERE date BETWEEN $1 AND $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("montant ventes: %w", err)
	}
	return total, nil
}

// ExpeditionsEnCours cuenta las expediciones abiertas.
func (r *StatsRepo) ExpeditionsEnCours(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM expeditions WHERE statut = $1`, entity.ExpeditionEnCours,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("expeditions en cours: %w", err)
	}
	return n, nil
}
