package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.CollecteRepository = (*CollecteRepo)(nil)

// CollecteRepo implementación del puerto CollecteRepository sobre PostgreSQL (usable con pool o tx).
type CollecteRepo struct {
	q Querier
}

// NewCollecteRepository construye el adaptador de persistencia para collectes.
func NewCollecteRepository(q Querier) *CollecteRepo {
	return &CollecteRepo{q: q}
}

// Create persiste una collecte nueva.
func (r *CollecteRepo) Create(c *entity.Collecte) error {
	query := `
		INSERT INTO collectes (id, collecteur_id, date, produit, localisation, quantite, prix_unitaire, montant, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CollecteurID, c.Date, c.Produit, c.Localisation, c.Quantite, c.PrixUnitaire, c.Montant,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert collecte: %w", err)
	}
	return nil
}

// GetByID obtiene una collecte por ID.
func (r *CollecteRepo) GetByID(id string) (*entity.Collecte, error) {
	query := `
		SELECT id, collecteur_id, date, produit, localisation, quantite, prix_unitaire, montant, created_at, updated_at
		FROM collectes WHERE id = $1`
	var c entity.Collecte
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CollecteurID, &c.Date, &c.Produit, &c.Localisation, &c.Quantite, &c.PrixUnitaire,
		&c.Montant, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collecte by id: %w", err)
	}
	return &c, nil
}

// List lista collectes (filtro opcional por collecteur) por fecha descendente.
func (r *CollecteRepo) List(collecteurID string, limit, offset int) ([]*entity.Collecte, error) {
	query := `
		SELECT id, collecteur_id, date, produit, localisation, quantite, prix_unitaire, montant, created_at, updated_at
		FROM collectes`
	args := []any{}
	if collecteurID != "" {
		query += ` WHERE collecteur_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
		args = append(args, collecteurID, limit, offset)
	} else {
		query += ` ORDER BY date DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list collectes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Collecte
	for rows.Next() {
		var c entity.Collecte
		if err := rows.Scan(&c.ID, &c.CollecteurID, &c.Date, &c.Produit, &c.Localisation, &c.Quantite,
			&c.PrixUnitaire, &c.Montant, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan collecte: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
