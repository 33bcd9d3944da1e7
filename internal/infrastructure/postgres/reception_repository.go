package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

var _ repository.ReceptionRepository = (*ReceptionRepo)(nil)

// ReceptionRepo implementación del puerto ReceptionRepository sobre PostgreSQL
// (usable con pool o tx). La unicidad del id_fiscale la garantiza un índice
// único sobre lower(id_fiscale); la violación se traduce a ErrIDFiscaleExists.
type ReceptionRepo struct {
	q Querier
}

// NewReceptionRepository construye el adaptador de persistencia para recepciones.
func NewReceptionRepository(q Querier) *ReceptionRepo {
	return &ReceptionRepo{q: q}
}

const receptionColumns = `id, type, date_heure, designation, provenance, nom_fournisseur,
		prenom_fournisseur, id_fiscale, localisation, contact, poids_brut, poids_net, unite, statut,
		poids_emballage, taux_dessiccation, taux_humidite, poids_convenu, densite, taux_humidite_cg,
		created_at, updated_at`

// Create persiste una recepción nueva.
func (r *ReceptionRepo) Create(rec *entity.Reception) error {
	query := `
		INSERT INTO receptions (` + receptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Type, rec.DateHeure, rec.Designation, rec.Provenance, rec.NomFournisseur,
		rec.PrenomFournisseur, rec.IDFiscale, rec.Localisation, rec.Contact, rec.PoidsBrut, rec.PoidsNet,
		rec.Unite, rec.Statut, rec.PoidsEmballage, rec.TauxDessiccation, rec.TauxHumidite,
		rec.PoidsConvenu, rec.Densite, rec.TauxHumiditeCG, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIDFiscaleExists
		}
		return fmt.Errorf("insert reception: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID.
func (r *ReceptionRepo) GetByID(id string) (*entity.Reception, error) {
	query := `SELECT ` + receptionColumns + ` FROM receptions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get reception by id")
}

// GetByIDFiscale busca por id_fiscale (case-insensitive, recortado).
func (r *ReceptionRepo) GetByIDFiscale(idFiscale string) (*entity.Reception, error) {
	query := `SELECT ` + receptionColumns + ` FROM receptions WHERE lower(id_fiscale) = lower($1) LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, strings.TrimSpace(idFiscale)), "get reception by id_fiscale")
}

// List lista recepciones (filtro opcional por tipo) ordenadas por fecha descendente.
func (r *ReceptionRepo) List(typ string, limit, offset int) ([]*entity.Reception, error) {
	query := `SELECT ` + receptionColumns + ` FROM receptions`
	args := []any{}
	if typ != "" {
		query += ` WHERE type = $1 ORDER BY date_heure DESC LIMIT $2 OFFSET $3`
		args = append(args, typ, limit, offset)
	} else {
		query += ` ORDER BY date_heure DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reception
	for rows.Next() {
		rec, err := scanReception(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reception: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// ListIDFiscales devuelve todos los identificadores fiscales registrados.
func (r *ReceptionRepo) ListIDFiscales() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id_fiscale FROM receptions`)
	if err != nil {
		return nil, fmt.Errorf("list id_fiscales: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id_fiscale: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// UpdateStatut cambia el estado de una recepción.
func (r *ReceptionRepo) UpdateStatut(id, statut string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE receptions SET statut = $2, updated_at = now() WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("update reception statut: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReceptionRepo) scanOne(row pgx.Row, op string) (*entity.Reception, error) {
	rec, err := scanReception(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rec, nil
}

func scanReception(row pgx.Row) (*entity.Reception, error) {
	var rec entity.Reception
	err := row.Scan(
		&rec.ID, &rec.Type, &rec.DateHeure, &rec.Designation, &rec.Provenance, &rec.NomFournisseur,
		&rec.PrenomFournisseur, &rec.IDFiscale, &rec.Localisation, &rec.Contact, &rec.PoidsBrut,
		&rec.PoidsNet, &rec.Unite, &rec.Statut, &rec.PoidsEmballage, &rec.TauxDessiccation,
		&rec.TauxHumidite, &rec.PoidsConvenu, &rec.Densite, &rec.TauxHumiditeCG,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
