package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceptionRequest entrada normalizada para crear una recepción.
// DateHeure es string: vacío significa "ahora" (se resuelve en el use case).
// Los campos opcionales dependen del tipo: FG → poids_emballage/taux_dessiccation/taux_humidite,
// GG → poids_convenu/densite, CG → taux_humidite_cg.
type CreateReceptionRequest struct {
	Type              string           `json:"type" validate:"required,oneof=FG GG CG"`
	DateHeure         string           `json:"dateHeure" validate:"omitempty"`
	Designation       string           `json:"designation" validate:"omitempty,max=300"`
	Provenance        string           `json:"provenance" validate:"omitempty,max=200"`
	NomFournisseur    string           `json:"nom_fournisseur" validate:"required,max=150"`
	PrenomFournisseur string           `json:"prenom_fournisseur" validate:"required,max=150"`
	IDFiscale         string           `json:"id_fiscale" validate:"required,max=60"`
	Localisation      string           `json:"localisation" validate:"omitempty,max=200"`
	Contact           string           `json:"contact" validate:"omitempty,max=60"`
	PoidsBrut         decimal.Decimal  `json:"poids_brut" validate:"required"`
	PoidsNet          decimal.Decimal  `json:"poids_net" validate:"required"`
	Unite             string           `json:"unite" validate:"omitempty,max=10"`
	PoidsEmballage    *decimal.Decimal `json:"poids_emballage,omitempty"`
	TauxDessiccation  *decimal.Decimal `json:"taux_dessiccation,omitempty"`
	TauxHumidite      *decimal.Decimal `json:"taux_humidite,omitempty"`
	PoidsConvenu      *decimal.Decimal `json:"poids_convenu,omitempty"`
	Densite           *decimal.Decimal `json:"densite,omitempty"`
	TauxHumiditeCG    *decimal.Decimal `json:"taux_humidite_cg,omitempty"`
}

// ReceptionResponse salida de una recepción.
type ReceptionResponse struct {
	ID                string           `json:"id"`
	Type              string           `json:"type"`
	DateHeure         time.Time        `json:"dateHeure"`
	Designation       string           `json:"designation"`
	Provenance        string           `json:"provenance"`
	NomFournisseur    string           `json:"nom_fournisseur"`
	PrenomFournisseur string           `json:"prenom_fournisseur"`
	IDFiscale         string           `json:"id_fiscale"`
	Localisation      string           `json:"localisation"`
	Contact           string           `json:"contact"`
	PoidsBrut         decimal.Decimal  `json:"poids_brut"`
	PoidsNet          decimal.Decimal  `json:"poids_net"`
	Unite             string           `json:"unite"`
	Statut            string           `json:"statut"`
	PoidsEmballage    *decimal.Decimal `json:"poids_emballage,omitempty"`
	TauxDessiccation  *decimal.Decimal `json:"taux_dessiccation,omitempty"`
	TauxHumidite      *decimal.Decimal `json:"taux_humidite,omitempty"`
	PoidsConvenu      *decimal.Decimal `json:"poids_convenu,omitempty"`
	Densite           *decimal.Decimal `json:"densite,omitempty"`
	TauxHumiditeCG    *decimal.Decimal `json:"taux_humidite_cg,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ReceptionListResponse listado paginado de recepciones.
type ReceptionListResponse struct {
	Items []ReceptionResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
