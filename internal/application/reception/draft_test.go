package reception_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/application/reception"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los colaboradores del borrador
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore registra los payloads recibidos y permite forzar un error de creación.
type fakeStore struct {
	created []dto.CreateReceptionRequest
	err     error
}

func (s *fakeStore) CreateReception(_ context.Context, in dto.CreateReceptionRequest) (*dto.ReceptionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	return &dto.ReceptionResponse{ID: "r-1", Type: in.Type, IDFiscale: in.IDFiscale}, nil
}

// fakeList lista fija de id_fiscale conocidos; cuenta los refetch.
type fakeList struct {
	ids        []string
	refetches  int
	refetchErr error
}

func (l *fakeList) IDFiscales() []string { return l.ids }

func (l *fakeList) Refetch(context.Context) error {
	l.refetches++
	return l.refetchErr
}

// borradorEnPaso2 deja un borrador CG listo en el paso de medidas.
func borradorEnPaso2(t *testing.T, store *fakeStore, list *fakeList) *reception.Draft {
	t.Helper()
	d := reception.NewDraft(store, list)
	require.NoError(t, d.SetType(entity.TypeCG))
	d.SetFournisseur("Rakoto", "Jean")
	d.SetIDFiscale("123456789")
	require.NoError(t, d.Advance(), "paso 1 completo debe avanzar")
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso 1: tipo, proveedor, id_fiscale
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_TipoInvalidoRechazado(t *testing.T) {
	d := reception.NewDraft(&fakeStore{}, &fakeList{})
	assert.ErrorIs(t, d.SetType("XX"), reception.ErrTypeInvalide)
}

func TestDraft_FGAplicaProvenanceFija(t *testing.T) {
	store := &fakeStore{}
	d := reception.NewDraft(store, &fakeList{})
	require.NoError(t, d.SetType(entity.TypeFG))
	d.SetFournisseur("Rabe", "Paul")
	d.SetIDFiscale("fg-001")
	require.NoError(t, d.Advance())
	require.NoError(t, d.SetPoids(decimal.NewFromInt(10), decimal.NewFromInt(9), ""))
	require.NoError(t, d.Submit(context.Background()))

	require.Len(t, store.created, 1)
	assert.Equal(t, reception.ProvenanceFG, store.created[0].Provenance,
		"FG sin provenance explícita debe llevar la plantación fija")
}

func TestDraft_CamposMedidaPorTipo(t *testing.T) {
	d := reception.NewDraft(&fakeStore{}, &fakeList{})

	require.NoError(t, d.SetType(entity.TypeFG))
	champs := d.ChampsMesures()
	assert.Contains(t, champs, "poids_emballage")
	assert.Contains(t, champs, "taux_dessiccation")
	assert.Contains(t, champs, "taux_humidite")
	assert.NotContains(t, champs, "poids_convenu", "FG no expone campos de GG")
	assert.NotContains(t, champs, "taux_humidite_cg", "FG no expone campos de CG")

	require.NoError(t, d.SetType(entity.TypeGG))
	champs = d.ChampsMesures()
	assert.Contains(t, champs, "poids_convenu")
	assert.Contains(t, champs, "densite")
	assert.NotContains(t, champs, "poids_emballage")

	require.NoError(t, d.SetType(entity.TypeCG))
	champs = d.ChampsMesures()
	assert.Contains(t, champs, "taux_humidite_cg")
	assert.NotContains(t, champs, "densite")
}

func TestDraft_TipoVerrouilleConMedidasCapturadas(t *testing.T) {
	d := borradorEnPaso2(t, &fakeStore{}, &fakeList{})
	require.NoError(t, d.SetPoids(decimal.NewFromInt(50), decimal.NewFromInt(45), "kg"))

	assert.ErrorIs(t, d.SetType(entity.TypeFG), reception.ErrTypeVerrouille,
		"con medidas capturadas el tipo no puede cambiar")
	assert.NoError(t, d.SetType(entity.TypeCG), "reseleccionar el mismo tipo no es un cambio")

	d.Reset()
	assert.NoError(t, d.SetType(entity.TypeFG), "después de Reset el tipo vuelve a ser libre")
}

func TestDraft_AdvanceExigePaso1Completo(t *testing.T) {
	d := reception.NewDraft(&fakeStore{}, &fakeList{})
	require.NoError(t, d.SetType(entity.TypeGG))
	d.SetFournisseur("Rasoa", "")
	d.SetIDFiscale("gg-010")

	assert.False(t, d.CanAdvance())
	assert.ErrorIs(t, d.Advance(), reception.ErrEtapeIncomplete, "falta el apellido del proveedor")

	d.SetFournisseur("Rasoa", "Marie")
	assert.True(t, d.CanAdvance())
	assert.NoError(t, d.Advance())
	assert.Equal(t, reception.StepMesures, d.Step())
}

// ──────────────────────────────────────────────────────────────────────────────
// Semántica de "campo tocado" del id_fiscale
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_IDFiscaleDuplicado_SemanticaTocado(t *testing.T) {
	list := &fakeList{ids: []string{"123456789", "ABC-777"}}
	d := reception.NewDraft(&fakeStore{}, list)
	require.NoError(t, d.SetType(entity.TypeCG))
	d.SetFournisseur("Rakoto", "Jean")

	// Antes del primer edit no hay marca.
	assert.False(t, d.IDFiscaleDuplicate())

	// Coincidencia case-insensitive y con espacios alrededor.
	d.SetIDFiscale("  abc-777 ")
	assert.True(t, d.IDFiscaleDuplicate())

	// Vaciar el campo limpia la marca.
	d.SetIDFiscale("")
	assert.False(t, d.IDFiscaleDuplicate())

	// Un valor nuevo no registrado tampoco marca.
	d.SetIDFiscale("999")
	assert.False(t, d.IDFiscaleDuplicate())
}

func TestDraft_AdvanceBloqueadoPorDuplicado(t *testing.T) {
	list := &fakeList{ids: []string{"123456789"}}
	d := reception.NewDraft(&fakeStore{}, list)
	require.NoError(t, d.SetType(entity.TypeCG))
	d.SetFournisseur("Rakoto", "Jean")
	d.SetIDFiscale("123456789")

	assert.False(t, d.CanAdvance())
	assert.ErrorIs(t, d.Advance(), reception.ErrIDFiscaleDuplique)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paso 2 y soumission
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_MedidasRespetanElTipo(t *testing.T) {
	d := borradorEnPaso2(t, &fakeStore{}, &fakeList{}) // tipo CG
	err := d.SetMesuresFG(decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3))
	assert.ErrorIs(t, err, reception.ErrChampHorsType)
	err = d.SetMesuresGG(decimal.NewFromInt(1), decimal.NewFromInt(2))
	assert.ErrorIs(t, err, reception.ErrChampHorsType)
	assert.NoError(t, d.SetMesuresCG(decimal.NewFromFloat(12.5)))
}

func TestDraft_MedidasFueraDeEtapa(t *testing.T) {
	d := reception.NewDraft(&fakeStore{}, &fakeList{})
	require.NoError(t, d.SetType(entity.TypeCG))
	err := d.SetPoids(decimal.NewFromInt(1), decimal.NewFromInt(1), "kg")
	assert.ErrorIs(t, err, reception.ErrEtapeInvalide, "los pesos son del paso 2")
}

// Escenario completo: recepción CG de Rakoto Jean con 50 kg brutos, 45 netos y
// 12.5 % de humedad, verificando el payload entregado y el refetch posterior.
func TestDraft_SoumissionCGCompleta(t *testing.T) {
	store := &fakeStore{}
	list := &fakeList{}
	d := borradorEnPaso2(t, store, list)

	require.NoError(t, d.SetPoids(decimal.NewFromInt(50), decimal.NewFromInt(45), "kg"))
	require.NoError(t, d.SetMesuresCG(decimal.NewFromFloat(12.5)))
	require.True(t, d.CanSubmit())

	require.NoError(t, d.Submit(context.Background()))

	require.Len(t, store.created, 1)
	payload := store.created[0]
	assert.Equal(t, entity.TypeCG, payload.Type)
	assert.Equal(t, "Rakoto", payload.NomFournisseur)
	assert.Equal(t, "Jean", payload.PrenomFournisseur)
	assert.Equal(t, "123456789", payload.IDFiscale)
	assert.True(t, payload.PoidsBrut.Equal(decimal.NewFromInt(50)))
	assert.True(t, payload.PoidsNet.Equal(decimal.NewFromInt(45)))
	require.NotNil(t, payload.TauxHumiditeCG)
	assert.True(t, payload.TauxHumiditeCG.Equal(decimal.NewFromFloat(12.5)))
	assert.Nil(t, payload.PoidsConvenu, "CG no arrastra medidas de GG")
	assert.Nil(t, payload.PoidsEmballage, "CG no arrastra medidas de FG")

	assert.Equal(t, 1, list.refetches, "después de crear se refresca la lista")
	assert.Equal(t, reception.StepSubmitted, d.Step())
	assert.False(t, d.IDFiscaleDuplicate(), "el borrador queda limpio")
}

func TestDraft_SoumissionNormalizaNombres(t *testing.T) {
	store := &fakeStore{}
	d := reception.NewDraft(store, &fakeList{})
	require.NoError(t, d.SetType(entity.TypeGG))
	d.SetFournisseur("  rakoto ", "JEAN")
	d.SetIDFiscale(" gg-55 ")
	require.NoError(t, d.Advance())
	require.NoError(t, d.SetPoids(decimal.NewFromInt(20), decimal.NewFromInt(19), ""))
	require.NoError(t, d.Submit(context.Background()))

	require.Len(t, store.created, 1)
	assert.Equal(t, "Rakoto", store.created[0].NomFournisseur)
	assert.Equal(t, "Jean", store.created[0].PrenomFournisseur)
	assert.Equal(t, "gg-55", store.created[0].IDFiscale, "el id viaja recortado")
}

func TestDraft_ConflictoEnCreacionRemarcaDuplicado(t *testing.T) {
	store := &fakeStore{err: domain.ErrIDFiscaleExists}
	list := &fakeList{}
	d := borradorEnPaso2(t, store, list)
	require.NoError(t, d.SetPoids(decimal.NewFromInt(50), decimal.NewFromInt(45), "kg"))

	err := d.Submit(context.Background())
	assert.ErrorIs(t, err, reception.ErrIDFiscaleDuplique)
	assert.True(t, d.IDFiscaleDuplicate(), "el conflicto del servidor re-marca el campo")
	assert.Equal(t, reception.StepMesures, d.Step(), "el borrador queda abierto para corregir")
	assert.Equal(t, 0, list.refetches, "sin creación no hay refetch")
}

func TestDraft_ErrorNoConflictoSeEnvuelve(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	d := borradorEnPaso2(t, store, &fakeList{})
	require.NoError(t, d.SetPoids(decimal.NewFromInt(50), decimal.NewFromInt(45), "kg"))

	err := d.Submit(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, reception.ErrIDFiscaleDuplique)
	assert.False(t, d.IDFiscaleDuplicate(), "un error de red no marca duplicado")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDraft_RefetchFallidoNoDeshaceLaCreacion(t *testing.T) {
	store := &fakeStore{}
	list := &fakeList{refetchErr: errors.New("timeout")}
	d := borradorEnPaso2(t, store, list)
	require.NoError(t, d.SetPoids(decimal.NewFromInt(50), decimal.NewFromInt(45), "kg"))

	require.NoError(t, d.Submit(context.Background()), "el fallo del refetch no es fallo del envío")
	assert.Len(t, store.created, 1)
	assert.Equal(t, reception.StepSubmitted, d.Step())
}

func TestDraft_CancelDescartaTodo(t *testing.T) {
	d := borradorEnPaso2(t, &fakeStore{}, &fakeList{})
	d.Cancel()
	assert.Equal(t, reception.StepCancelled, d.Step())
	assert.Equal(t, "", d.Type())

	d.Reset()
	assert.Equal(t, reception.StepGeneral, d.Step(), "Reset reabre el borrador en el paso 1")
}
