package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVenteRequest entrada para registrar una venta.
type CreateVenteRequest struct {
	Date         string          `json:"date" validate:"omitempty"`
	Client       string          `json:"client" validate:"required,max=200"`
	Produit      string          `json:"produit" validate:"required,max=150"`
	Quantite     decimal.Decimal `json:"quantite" validate:"required"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire" validate:"required"`
}

// VenteResponse salida de una venta.
type VenteResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Client       string          `json:"client"`
	Produit      string          `json:"produit"`
	Quantite     decimal.Decimal `json:"quantite"`
	PrixUnitaire decimal.Decimal `json:"prix_unitaire"`
	Montant      decimal.Decimal `json:"montant"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// VenteListResponse listado paginado de ventas.
type VenteListResponse struct {
	Items []VenteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
