package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.VenteRepository = (*VenteRepo)(nil)

// VenteRepo implementación del puerto VenteRepository sobre PostgreSQL (usable con pool o tx).
type VenteRepo struct {
	q Querier
}

// NewVenteRepository construye el adaptador de persistencia para ventas.
func NewVenteRepository(q Querier) *VenteRepo {
	return &VenteRepo{q: q}
}

// Create persiste una venta nueva.
func (r *VenteRepo) Create(v *entity.Vente) error {
	query := `
		INSERT INTO ventes (id, date, client, produit, quantite, prix_unitaire, montant, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Date, v.Client, v.Produit, v.Quantite, v.PrixUnitaire, v.Montant, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vente: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VenteRepo) GetByID(id string) (*entity.Vente, error) {
	query := `
		SELECT id, date, client, produit, quantite, prix_unitaire, montant, created_at, updated_at
		FROM ventes WHERE id = $1`
	var v entity.Vente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Date, &v.Client, &v.Produit, &v.Quantite, &v.PrixUnitaire, &v.Montant,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vente by id: %w", err)
	}
	return &v, nil
}

// List lista ventas por fecha descendente.
func (r *VenteRepo) List(limit, offset int) ([]*entity.Vente, error) {
	query := `
		SELECT id, date, client, produit, quantite, prix_unitaire, montant, created_at, updated_at
		FROM ventes ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vente
	for rows.Next() {
		var v entity.Vente
		if err := rows.Scan(&v.ID, &v.Date, &v.Client, &v.Produit, &v.Quantite, &v.PrixUnitaire,
			&v.Montant, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vente: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
