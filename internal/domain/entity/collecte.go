package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collecte representa una compra de materia prima hecha por un collecteur en terreno.
// Montant = Quantite × PrixUnitaire; se calcula en el use case, nunca lo envía el cliente.
type Collecte struct {
	ID           string
	CollecteurID string
	Date         time.Time
	Produit      string
	Localisation string
	Quantite     decimal.Decimal
	PrixUnitaire decimal.Decimal
	Montant      decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
