package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.ExpeditionRepository = (*ExpeditionRepo)(nil)

// ExpeditionRepo implementación del puerto ExpeditionRepository sobre PostgreSQL
// (usable con pool o tx). reception_ids se guarda como text[].
type ExpeditionRepo struct {
	q Querier
}

// NewExpeditionRepository construye el adaptador de persistencia para expediciones.
func NewExpeditionRepository(q Querier) *ExpeditionRepo {
	return &ExpeditionRepo{q: q}
}

// Create persiste una expedición nueva.
func (r *ExpeditionRepo) Create(e *entity.Expedition) error {
	query := `
		INSERT INTO expeditions (id, date, destination, transporteur, statut, poids_total, reception_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Date, e.Destination, e.Transporteur, e.Statut, e.PoidsTotal, e.ReceptionIDs,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expedition: %w", err)
	}
	return nil
}

// GetByID obtiene una expedición por ID.
func (r *ExpeditionRepo) GetByID(id string) (*entity.Expedition, error) {
	query := `
		SELECT id, date, destination, transporteur, statut, poids_total, reception_ids, created_at, updated_at
		FROM expeditions WHERE id = $1`
	var e entity.Expedition
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Date, &e.Destination, &e.Transporteur, &e.Statut, &e.PoidsTotal, &e.ReceptionIDs,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expedition by id: %w", err)
	}
	return &e, nil
}

// List lista expediciones por fecha descendente.
func (r *ExpeditionRepo) List(limit, offset int) ([]*entity.Expedition, error) {
	query := `
		SELECT id, date, destination, transporteur, statut, poids_total, reception_ids, created_at, updated_at
		FROM expeditions ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expeditions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expedition
	for rows.Next() {
		var e entity.Expedition
		if err := rows.Scan(&e.ID, &e.Date, &e.Destination, &e.Transporteur, &e.Statut, &e.PoidsTotal,
			&e.ReceptionIDs, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expedition: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// UpdateStatut cambia el estado de una expedición.
func (r *ExpeditionRepo) UpdateStatut(id, statut string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE expeditions SET statut = $2, updated_at = now() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update expedition statut: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
