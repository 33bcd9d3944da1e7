package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vente representa una venta de aceite esencial o materia prima a un cliente.
type Vente struct {
	ID           string
	Date         time.Time
	Client       string
	Produit      string // essence FG, essence CG, griffes, etc.
	Quantite     decimal.Decimal
	PrixUnitaire decimal.Decimal
	Montant      decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
