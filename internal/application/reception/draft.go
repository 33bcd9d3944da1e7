package reception

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Step etapa del asistente de captura.
type Step int

// Etapas del asistente: dos pasos de captura y dos estados terminales.
const (
	StepGeneral Step = iota + 1 // tipo, fecha, proveedor, id_fiscale
	StepMesures                 // pesos y medidas por tipo
	StepSubmitted
	StepCancelled
)

// Provenance fija para recepciones FG cuando el usuario no indica otra.
const ProvenanceFG = "Plantation Ambanja"

// Errores del asistente de captura.
var (
	ErrTypeInvalide      = errors.New("tipo de recepción inválido")
	ErrTypeVerrouille    = errors.New("el tipo no puede cambiar con medidas ya capturadas; use Reset")
	ErrEtapeIncomplete   = errors.New("la etapa actual tiene campos obligatorios sin completar")
	ErrEtapeInvalide     = errors.New("operación no válida en la etapa actual")
	ErrIDFiscaleDuplique = errors.New("id_fiscale duplicado")
	ErrChampHorsType     = errors.New("medida no aplicable al tipo seleccionado")
	ErrSoumissionEnCours = errors.New("ya hay una soumission en curso")
)

// Draft estado transitorio del asistente de dos pasos para una nueva recepción.
// Vive mientras el modal está abierto; se reinicia al cerrar o al enviar con éxito
// y se descarta al cancelar. No persiste nada por sí mismo: al enviar entrega el
// payload normalizado al colaborador RecordStore y luego refresca RecordList.
//
// Reglas:
//   - el tipo queda inmutable una vez capturadas medidas del paso 2, salvo Reset;
//   - el id_fiscale solo se marca duplicado después del primer edit no vacío
//     (campo "tocado"); vaciarlo limpia la marca;
//   - paso 1 → paso 2 exige tipo, nombre y apellido del proveedor e id_fiscale
//     presente y no duplicado;
//   - enviar exige poids_brut y poids_net y de nuevo id_fiscale no duplicado.
type Draft struct {
	mu      sync.Mutex
	store   RecordStore
	list    RecordList
	step    Step
	loading bool

	typ          string
	dateHeure    string
	designation  string
	provenance   string
	localisation string
	contact      string
	nom          string
	prenom       string

	idFiscale   string
	idDuplicate bool

	poidsBrut        *decimal.Decimal
	poidsNet         *decimal.Decimal
	unite            string
	poidsEmballage   *decimal.Decimal
	tauxDessiccation *decimal.Decimal
	tauxHumidite     *decimal.Decimal
	poidsConvenu     *decimal.Decimal
	densite          *decimal.Decimal
	tauxHumiditeCG   *decimal.Decimal
}

// NewDraft abre un borrador nuevo en el paso 1.
func NewDraft(store RecordStore, list RecordList) *Draft {
	return &Draft{store: store, list: list, step: StepGeneral, unite: "kg"}
}

// Step devuelve la etapa actual.
func (d *Draft) Step() Step {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step
}

// Type devuelve el tipo seleccionado ("" si aún no hay).
func (d *Draft) Type() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.typ
}

// SetType selecciona el subtipo de la recepción. Para FG aplica la provenance
// fija si el usuario no indicó otra. Falla con ErrTypeVerrouille si ya hay
// medidas del paso 2 capturadas y el tipo cambia.
func (d *Draft) SetType(t string) error {
	if !entity.ValidReceptionType(t) {
		return ErrTypeInvalide
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mesuresCapturees() && t != d.typ {
		return ErrTypeVerrouille
	}
	d.typ = t
	if t == entity.TypeFG && d.provenance == "" {
		d.provenance = ProvenanceFG
	}
	return nil
}

// SetFournisseur captura nombre y apellido del proveedor.
func (d *Draft) SetFournisseur(nom, prenom string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nom = nom
	d.prenom = prenom
}

// SetGeneral captura los campos libres del paso 1.
func (d *Draft) SetGeneral(designation, provenance, localisation, contact string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.designation = designation
	if provenance != "" {
		d.provenance = provenance
	}
	d.localisation = localisation
	d.contact = contact
}

// SetDateHeure captura el timestamp; vacío significa "ahora" (lo resuelve el servidor).
func (d *Draft) SetDateHeure(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dateHeure = s
}

// SetIDFiscale registra un edit del identificador fiscal y reevalúa el duplicado
// contra la lista de registros conocidos. El primer edit no vacío "toca" el campo;
// antes de eso nunca se marca error, y vaciar el campo limpia la marca.
func (d *Draft) SetIDFiscale(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.idFiscale = id
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		d.idDuplicate = false
		return
	}
	d.idDuplicate = IsDuplicate(trimmed, d.list.IDFiscales())
}

// IDFiscaleDuplicate indica si el identificador fiscal está marcado como duplicado.
func (d *Draft) IDFiscaleDuplicate() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.idDuplicate
}

// ChampsMesures devuelve los campos de medida del paso 2 que expone el tipo
// seleccionado (claves wire). poids_brut y poids_net siempre están.
func (d *Draft) ChampsMesures() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	base := []string{"poids_brut", "poids_net", "unite"}
	switch d.typ {
	case entity.TypeFG:
		return append(base, "poids_emballage", "taux_dessiccation", "taux_humidite")
	case entity.TypeGG:
		return append(base, "poids_convenu", "densite")
	case entity.TypeCG:
		return append(base, "taux_humidite_cg")
	}
	return base
}

// CanAdvance indica si el paso 1 está completo y sin duplicado.
func (d *Draft) CanAdvance() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step == StepGeneral && d.etape1Complete() && !d.idDuplicate
}

// Advance pasa del paso 1 al paso 2. Exige tipo seleccionado, nombre y apellido
// del proveedor e id_fiscale presente y no marcado como duplicado.
func (d *Draft) Advance() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepGeneral {
		return ErrEtapeInvalide
	}
	if d.idDuplicate {
		return ErrIDFiscaleDuplique
	}
	if !d.etape1Complete() {
		return ErrEtapeIncomplete
	}
	d.step = StepMesures
	return nil
}

// SetPoids captura los pesos obligatorios del paso 2.
func (d *Draft) SetPoids(brut, net decimal.Decimal, unite string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepMesures {
		return ErrEtapeInvalide
	}
	d.poidsBrut = &brut
	d.poidsNet = &net
	if unite != "" {
		d.unite = unite
	}
	return nil
}

// SetMesuresFG captura las medidas propias de FG (botones florales).
func (d *Draft) SetMesuresFG(poidsEmballage, tauxDessiccation, tauxHumidite decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepMesures {
		return ErrEtapeInvalide
	}
	if d.typ != entity.TypeFG {
		return ErrChampHorsType
	}
	d.poidsEmballage = &poidsEmballage
	d.tauxDessiccation = &tauxDessiccation
	d.tauxHumidite = &tauxHumidite
	return nil
}

// SetMesuresGG captura las medidas propias de GG (pedúnculos).
func (d *Draft) SetMesuresGG(poidsConvenu, densite decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepMesures {
		return ErrEtapeInvalide
	}
	if d.typ != entity.TypeGG {
		return ErrChampHorsType
	}
	d.poidsConvenu = &poidsConvenu
	d.densite = &densite
	return nil
}

// SetMesuresCG captura la medida propia de CG (hojas).
func (d *Draft) SetMesuresCG(tauxHumidite decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.step != StepMesures {
		return ErrEtapeInvalide
	}
	if d.typ != entity.TypeCG {
		return ErrChampHorsType
	}
	d.tauxHumiditeCG = &tauxHumidite
	return nil
}

// CanSubmit indica si el paso 2 está completo y sin duplicado.
func (d *Draft) CanSubmit() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.step == StepMesures && d.poidsBrut != nil && d.poidsNet != nil && !d.idDuplicate
}

// Submit valida el paso 2, entrega el payload normalizado al colaborador de
// creación y luego refresca la lista de registros; en éxito reinicia el borrador.
// En fallo clasifica el error: conflicto de id_fiscale re-marca el campo y
// devuelve ErrIDFiscaleDuplique; cualquier otro error se envuelve tal cual.
// No hay reintento: el usuario debe volver a enviar. Un flag de carga bloquea
// reenvíos mientras la llamada está pendiente.
func (d *Draft) Submit(ctx context.Context) error {
	d.mu.Lock()
	if d.step != StepMesures {
		d.mu.Unlock()
		return ErrEtapeInvalide
	}
	if d.loading {
		d.mu.Unlock()
		return ErrSoumissionEnCours
	}
	if d.idDuplicate {
		d.mu.Unlock()
		return ErrIDFiscaleDuplique
	}
	if d.poidsBrut == nil || d.poidsNet == nil {
		d.mu.Unlock()
		return ErrEtapeIncomplete
	}
	payload := d.buildPayload()
	d.loading = true
	d.mu.Unlock()

	_, err := d.store.CreateReception(ctx, payload)
	if err != nil {
		d.mu.Lock()
		d.loading = false
		if IsConflictError(err) {
			d.idDuplicate = true
			d.mu.Unlock()
			return ErrIDFiscaleDuplique
		}
		d.mu.Unlock()
		return fmt.Errorf("crear recepción: %w", err)
	}

	// Crear y refrescar en secuencia antes de reiniciar el estado local.
	// Un fallo del refetch no deshace la creación: la lista se recarga en el
	// próximo uso.
	_ = d.list.Refetch(ctx)

	d.mu.Lock()
	d.reset()
	d.step = StepSubmitted
	d.mu.Unlock()
	return nil
}

// Cancel descarta el borrador sin persistir nada.
func (d *Draft) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reset()
	d.step = StepCancelled
}

// Reset reabre el borrador vacío en el paso 1 (reapertura del modal).
func (d *Draft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reset()
}

func (d *Draft) etape1Complete() bool {
	return d.typ != "" &&
		strings.TrimSpace(d.nom) != "" &&
		strings.TrimSpace(d.prenom) != "" &&
		strings.TrimSpace(d.idFiscale) != ""
}

func (d *Draft) mesuresCapturees() bool {
	return d.poidsBrut != nil || d.poidsNet != nil ||
		d.poidsEmballage != nil || d.tauxDessiccation != nil || d.tauxHumidite != nil ||
		d.poidsConvenu != nil || d.densite != nil || d.tauxHumiditeCG != nil
}

func (d *Draft) buildPayload() dto.CreateReceptionRequest {
	req := dto.CreateReceptionRequest{
		Type:              d.typ,
		DateHeure:         d.dateHeure,
		Designation:       d.designation,
		Provenance:        d.provenance,
		NomFournisseur:    FoldName(d.nom),
		PrenomFournisseur: FoldName(d.prenom),
		IDFiscale:         strings.TrimSpace(d.idFiscale),
		Localisation:      d.localisation,
		Contact:           d.contact,
		PoidsBrut:         *d.poidsBrut,
		PoidsNet:          *d.poidsNet,
		Unite:             d.unite,
	}
	switch d.typ {
	case entity.TypeFG:
		req.PoidsEmballage = d.poidsEmballage
		req.TauxDessiccation = d.tauxDessiccation
		req.TauxHumidite = d.tauxHumidite
	case entity.TypeGG:
		req.PoidsConvenu = d.poidsConvenu
		req.Densite = d.densite
	case entity.TypeCG:
		req.TauxHumiditeCG = d.tauxHumiditeCG
	}
	return req
}

func (d *Draft) reset() {
	d.step = StepGeneral
	d.loading = false
	d.typ = ""
	d.dateHeure = ""
	d.designation = ""
	d.provenance = ""
	d.localisation = ""
	d.contact = ""
	d.nom = ""
	d.prenom = ""
	d.idFiscale = ""
	d.idDuplicate = false
	d.poidsBrut = nil
	d.poidsNet = nil
	d.unite = "kg"
	d.poidsEmballage = nil
	d.tauxDessiccation = nil
	d.tauxHumidite = nil
	d.poidsConvenu = nil
	d.densite = nil
	d.tauxHumiditeCG = nil
}
