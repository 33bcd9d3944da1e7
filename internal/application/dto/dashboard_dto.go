package dto

import "github.com/shopspring/decimal"

// ResumeDTO resumen del dashboard: pesos recibidos por tipo en el mes en curso,
// gasto en collectes, ingresos por ventas y expediciones en curso.
type ResumeDTO struct {
	PoidsNetFG         decimal.Decimal `json:"poids_net_fg"`
	PoidsNetGG         decimal.Decimal `json:"poids_net_gg"`
	PoidsNetCG         decimal.Decimal `json:"poids_net_cg"`
	MontantCollectes   decimal.Decimal `json:"montant_collectes"`
	MontantVentes      decimal.Decimal `json:"montant_ventes"`
	ExpeditionsEnCours int             `json:"expeditions_en_cours"`
}
