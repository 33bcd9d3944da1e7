package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas read-only de agregación para el dashboard.
type StatsRepository interface {
	// PoidsNetParType suma los poids_net recibidos por tipo (FG/GG/CG) en el rango.
	PoidsNetParType(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error)
	// MontantCollectes suma los montos gastados en collectes en el rango.
	MontantCollectes(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// MontantVentes suma los ingresos por ventas en el rango.
	MontantVentes(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// ExpeditionsEnCours cuenta las expediciones con statut en_cours.
	ExpeditionsEnCours(ctx context.Context) (int, error)
}
