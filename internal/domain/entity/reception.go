package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de recepción de materia prima (clavo de olor).
const (
	TypeFG = "FG" // fleurs de girofle   (botones florales)
	TypeGG = "GG" // griffes de girofle  (pedúnculos)
	TypeCG = "CG" // feuilles de girofle (hojas para destilación)
)

// Estados de una recepción en el flujo logístico.
const (
	StatutRecu    = "recu"
	StatutExpedie = "expedie"
)

// ValidReceptionType indica si t es uno de los tres tipos conocidos.
func ValidReceptionType(t string) bool {
	return t == TypeFG || t == TypeGG || t == TypeCG
}

// Reception representa la entrada de materia prima de un proveedor.
// IDFiscale es único (comparación case-insensitive, sin espacios) en toda la tabla.
// Los campos decimales opcionales dependen del tipo:
//
//	FG → PoidsEmballage, TauxDessiccation, TauxHumidite
//	GG → PoidsConvenu, Densite
//	CG → TauxHumiditeCG
type Reception struct {
	ID                string
	Type              string // FG, GG, CG
	DateHeure         time.Time
	Designation       string
	Provenance        string
	NomFournisseur    string
	PrenomFournisseur string
	IDFiscale         string
	Localisation      string
	Contact           string
	PoidsBrut         decimal.Decimal
	PoidsNet          decimal.Decimal
	Unite             string
	Statut            string // recu, expedie
	PoidsEmballage    *decimal.Decimal
	TauxDessiccation  *decimal.Decimal
	TauxHumidite      *decimal.Decimal
	PoidsConvenu      *decimal.Decimal
	Densite           *decimal.Decimal
	TauxHumiditeCG    *decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
