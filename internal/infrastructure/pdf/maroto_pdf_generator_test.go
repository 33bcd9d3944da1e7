package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
)

func recepcionCG() *dto.ReceptionResponse {
	humidite := decimal.NewFromFloat(12.5)
	return &dto.ReceptionResponse{
		ID:                "00000000-0000-0000-0000-000000000099",
		Type:              entity.TypeCG,
		DateHeure:         time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
		NomFournisseur:    "Rakoto",
		PrenomFournisseur: "Jean",
		IDFiscale:         "123456789",
		Provenance:        "Ambanja",
		PoidsBrut:         decimal.NewFromInt(50),
		PoidsNet:          decimal.NewFromInt(45),
		Unite:             "kg",
		Statut:            entity.StatutRecu,
		TauxHumiditeCG:    &humidite,
	}
}

func TestGenerateRecu_ProduceUnPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("Girofle Ambanja")

	out, err := g.GenerateRecu(context.Background(), recepcionCG())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

// Las etiquetas siguen el vocabulario del dominio: FG botones florales,
// GG pedúnculos, CG hojas para destilación.
func TestTypeLabel_VocabulaireGirofle(t *testing.T) {
	assert.Equal(t, "Fleurs de girofle (FG)", typeLabel(entity.TypeFG))
	assert.Equal(t, "Griffes de girofle (GG)", typeLabel(entity.TypeGG))
	assert.Equal(t, "Feuilles de girofle (CG)", typeLabel(entity.TypeCG))
	assert.Equal(t, "XX", typeLabel("XX"))
}
