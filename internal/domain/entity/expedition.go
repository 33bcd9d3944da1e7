package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una expedición.
const (
	ExpeditionEnCours = "en_cours"
	ExpeditionLivree  = "livree"
)

// Expedition agrupa recepciones ya pesadas y las saca hacia un destino.
// Crear una expedición marca sus recepciones como "expedie" dentro de una transacción;
// PoidsTotal es la suma de los poids_net de esas recepciones.
type Expedition struct {
	ID           string
	Date         time.Time
	Destination  string
	Transporteur string
	Statut       string // en_cours, livree
	PoidsTotal   decimal.Decimal
	ReceptionIDs []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
