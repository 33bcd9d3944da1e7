package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCollecteRequest entrada para registrar una compra de materia prima en terreno.
// Montant no se acepta del cliente: se calcula como quantite × prix_unitaire.
type CreateCollecteRequest struct {
	Date         string          `json:"date" validate:"omitempty"`
	Produit      string          `json:"produit" validate:"required,max=150"`
	Localisation string          `json:"localisation" validate:"omitempty,max=200"`
	Quantite     decimal.Decimal `json:"quantite" validate:"required"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire" validate:"required"`
}

// CollecteResponse salida de una collecte.
type CollecteResponse struct {
	ID           string          `json:"id"`
	CollecteurID string          `json:"collecteur_id"`
	Date         time.Time       `json:"date"`
	Produit      string          `json:"produit"`
	Localisation string          `json:"localisation"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Montant      decimal.Decimal `json:"montant"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CollecteListResponse listado paginado de collectes.
type CollecteListResponse struct {
	Items []CollecteResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
