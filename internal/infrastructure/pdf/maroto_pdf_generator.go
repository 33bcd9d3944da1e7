// Package pdf implementa la generación del bon de réception en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Girofle Ambanja  │  N° Recepción + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOURNISSEUR: Nombre + id_fiscale + contacto                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Designación | Peso bruto | Peso neto         │
//	│  MEDIDAS por tipo (FG / GG / CG)                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: Estado + leyenda de trazabilidad                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/application/reception"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reception.ReceiptGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	operateur string
}

var _ reception.ReceiptGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador. operateur es la razón social
// que encabeza el documento.
func NewMarotoPDFGenerator(operateur string) *MarotoPDFGenerator {
	if operateur == "" {
		operateur = "Girofle Ambanja"
	}
	return &MarotoPDFGenerator{operateur: operateur}
}

// GenerateRecu genera el bon de réception y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateRecu(_ context.Context, r *dto.ReceptionResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bon de Réception", true).
		WithAuthor(g.operateur, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(g.operateur, r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(fournisseurRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Pesos y medidas
	m.AddRows(poidsRow(r))
	m.AddRows(mesuresRows(r)...)

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social (izq) y N° de recepción + fecha (der).
func headerRow(operateur string, r *dto.ReceptionResponse) core.Row {
	fecha := r.DateHeure.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(operateur, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Girofle — "+typeLabel(r.Type), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("BON DE RÉCEPTION", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+r.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// fournisseurRow: datos del proveedor.
func fournisseurRow(r *dto.ReceptionResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FOURNISSEUR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(r.NomFournisseur+" "+r.PrenomFournisseur, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("ID fiscal: %s   |   Provenance: %s   |   Contact: %s",
				r.IDFiscale,
				nonEmpty(r.Provenance, "—"),
				nonEmpty(r.Contact, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// poidsRow: pesos bruto y neto, comunes a los tres tipos.
func poidsRow(r *dto.ReceptionResponse) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("Poids brut", r.PoidsBrut.StringFixed(2)+" "+r.Unite),
		cell("Poids net", r.PoidsNet.StringFixed(2)+" "+r.Unite),
		cell("Désignation", nonEmpty(r.Designation, "—")),
	)
}

// mesuresRows: una fila por medida específica del tipo. Solo se imprimen las
// medidas presentes.
func mesuresRows(r *dto.ReceptionResponse) []core.Row {
	type mesure struct {
		label string
		value *decimal.Decimal
		unite string
	}
	var mesures []mesure
	switch r.Type {
	case entity.TypeFG:
		mesures = []mesure{
			{"Poids emballage", r.PoidsEmballage, r.Unite},
			{"Taux de dessiccation", r.TauxDessiccation, "%"},
			{"Taux d'humidité", r.TauxHumidite, "%"},
		}
	case entity.TypeGG:
		mesures = []mesure{
			{"Poids convenu", r.PoidsConvenu, r.Unite},
			{"Densité", r.Densite, ""},
		}
	case entity.TypeCG:
		mesures = []mesure{
			{"Taux d'humidité", r.TauxHumiditeCG, "%"},
		}
	}

	rows := make([]core.Row, 0, len(mesures))
	for _, m := range mesures {
		if m.value == nil {
			continue
		}
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(m.label, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			})),
			col.New(4).Add(text.New(m.value.StringFixed(2)+" "+m.unite, props.Text{
				Size: 9, Top: 1,
			})),
		))
	}
	return rows
}

// footerRow: estado actual y leyenda de trazabilidad.
func footerRow(r *dto.ReceptionResponse) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Statut: "+r.Statut, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New("Document généré automatiquement — conservez ce bon pour la traçabilité du lot.",
				props.Text{Size: 7, Top: 6, Color: colorGray}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func typeLabel(t string) string {
	switch t {
	case entity.TypeFG:
		return "Fleurs de girofle (FG)"
	case entity.TypeGG:
		return "Griffes de girofle (GG)"
	case entity.TypeCG:
		return "Feuilles de girofle (CG)"
	default:
		return t
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
