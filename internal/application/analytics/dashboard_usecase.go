// Package analytics contiene el caso de uso del resumen del dashboard
// (tarjetas de totales de la página /dashboard, solo admin).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase genera el resumen del mes en curso.
//
// Fuente de datos: StatsRepository (consultas read-only). No toca las tablas
// directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetResume construye el ResumeDTO del mes en curso.
//
// Cuatro llamadas en paralelo:
//  1. PoidsNetParType(mes)   → pesos por FG/GG/CG
//  2. MontantCollectes(mes)  → gasto en compras
//  3. MontantVentes(mes)     → ingresos
//  4. ExpeditionsEnCours()   → expediciones abiertas
func (uc *DashboardUseCase) GetResume(ctx context.Context) (*dto.ResumeDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	type poidsResult struct {
		parType map[string]decimal.Decimal
		err     error
	}
	type montantResult struct {
		montant decimal.Decimal
		err     error
	}
	type countResult struct {
		n   int
		err error
	}

	poidsCh := make(chan poidsResult, 1)
	collectesCh := make(chan montantResult, 1)
	ventesCh := make(chan montantResult, 1)
	expCh := make(chan countResult, 1)

	go func() {
		parType, err := uc.statsRepo.PoidsNetParType(ctx, monthStart, monthEnd)
		poidsCh <- poidsResult{parType, err}
	}()
	go func() {
		m, err := uc.statsRepo.MontantCollectes(ctx, monthStart, monthEnd)
		collectesCh <- montantResult{m, err}
	}()
	go func() {
		m, err := uc.statsRepo.MontantVentes(ctx, monthStart, monthEnd)
		ventesCh <- montantResult{m, err}
	}()
	go func() {
		n, err := uc.statsRepo.ExpeditionsEnCours(ctx)
		expCh <- countResult{n, err}
	}()

	poids := <-poidsCh
	collectes := <-collectesCh
	ventes := <-ventesCh
	exp := <-expCh

	if poids.err != nil {
		return nil, fmt.Errorf("dashboard: pesos por tipo: %w", poids.err)
	}
	if collectes.err != nil {
		return nil, fmt.Errorf("dashboard: monto collectes: %w", collectes.err)
	}
	if ventes.err != nil {
		return nil, fmt.Errorf("dashboard: monto ventes: %w", ventes.err)
	}
	if exp.err != nil {
		return nil, fmt.Errorf("dashboard: expediciones en curso: %w", exp.err)
	}

	return &dto.ResumeDTO{
		PoidsNetFG:         poids.parType[entity.TypeFG].Round(2),
		PoidsNetGG:         poids.parType[entity.TypeGG].Round(2),
		PoidsNetCG:         poids.parType[entity.TypeCG].Round(2),
		MontantCollectes:   collectes.montant.Round(2),
		MontantVentes:      ventes.montant.Round(2),
		ExpeditionsEnCours: exp.n,
	}, nil
}
