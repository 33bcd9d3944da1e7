package reception

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
)

// Asegura que el use case sirva como colaborador de escritura del Draft.
var _ RecordStore = (*ReceptionUseCase)(nil)

// ReceptionUseCase casos de uso de recepciones: creación con verificación de
// id_fiscale, listados y consulta. La unicidad se garantiza dos veces: aquí
// (consulta previa) y en el repositorio (constraint única → ErrIDFiscaleExists).
type ReceptionUseCase struct {
	repo repository.ReceptionRepository
}

// NewReceptionUseCase construye el caso de uso.
func NewReceptionUseCase(repo repository.ReceptionRepository) *ReceptionUseCase {
	return &ReceptionUseCase{repo: repo}
}

// CreateReception normaliza y persiste una recepción nueva.
// dateHeure vacío se resuelve a "ahora"; para FG sin provenance se aplica la fija.
func (uc *ReceptionUseCase) CreateReception(ctx context.Context, in dto.CreateReceptionRequest) (*dto.ReceptionResponse, error) {
	if !entity.ValidReceptionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	idFiscale := strings.TrimSpace(in.IDFiscale)
	if idFiscale == "" || strings.TrimSpace(in.NomFournisseur) == "" || strings.TrimSpace(in.PrenomFournisseur) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByIDFiscale(idFiscale)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrIDFiscaleExists
	}

	dateHeure := time.Now()
	if in.DateHeure != "" {
		parsed, perr := time.Parse(time.RFC3339, in.DateHeure)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		dateHeure = parsed
	}
	provenance := in.Provenance
	if in.Type == entity.TypeFG && provenance == "" {
		provenance = ProvenanceFG
	}
	unite := in.Unite
	if unite == "" {
		unite = "kg"
	}

	now := time.Now()
	r := &entity.Reception{
		ID:                uuid.New().String(),
		Type:              in.Type,
		DateHeure:         dateHeure,
		Designation:       in.Designation,
		Provenance:        provenance,
		NomFournisseur:    FoldName(in.NomFournisseur),
		PrenomFournisseur: FoldName(in.PrenomFournisseur),
		IDFiscale:         idFiscale,
		Localisation:      in.Localisation,
		Contact:           in.Contact,
		PoidsBrut:         in.PoidsBrut,
		PoidsNet:          in.PoidsNet,
		Unite:             unite,
		Statut:            entity.StatutRecu,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	// Solo se persisten las medidas del tipo seleccionado.
	switch in.Type {
	case entity.TypeFG:
		r.PoidsEmballage = in.PoidsEmballage
		r.TauxDessiccation = in.TauxDessiccation
		r.TauxHumidite = in.TauxHumidite
	case entity.TypeGG:
		r.PoidsConvenu = in.PoidsConvenu
		r.Densite = in.Densite
	case entity.TypeCG:
		r.TauxHumiditeCG = in.TauxHumiditeCG
	}

	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toReceptionResponse(r), nil
}

// GetByID obtiene una recepción por ID.
func (uc *ReceptionUseCase) GetByID(id string) (*dto.ReceptionResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toReceptionResponse(r), nil
}

// List lista recepciones con filtro opcional por tipo y paginación.
func (uc *ReceptionUseCase) List(typ string, limit, offset int) (*dto.ReceptionListResponse, error) {
	if typ != "" && !entity.ValidReceptionType(typ) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(typ, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceptionResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceptionResponse(r))
	}
	return &dto.ReceptionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListIDFiscales devuelve los identificadores fiscales existentes (verificación de duplicados).
func (uc *ReceptionUseCase) ListIDFiscales() ([]string, error) {
	return uc.repo.ListIDFiscales()
}

func toReceptionResponse(r *entity.Reception) *dto.ReceptionResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceptionResponse{
		ID:                r.ID,
		Type:              r.Type,
		DateHeure:         r.DateHeure,
		Designation:       r.Designation,
		Provenance:        r.Provenance,
		NomFournisseur:    r.NomFournisseur,
		PrenomFournisseur: r.PrenomFournisseur,
		IDFiscale:         r.IDFiscale,
		Localisation:      r.Localisation,
		Contact:           r.Contact,
		PoidsBrut:         r.PoidsBrut,
		PoidsNet:          r.PoidsNet,
		Unite:             r.Unite,
		Statut:            r.Statut,
		PoidsEmballage:    r.PoidsEmballage,
		TauxDessiccation:  r.TauxDessiccation,
		TauxHumidite:      r.TauxHumidite,
		PoidsConvenu:      r.PoidsConvenu,
		Densite:           r.Densite,
		TauxHumiditeCG:    r.TauxHumiditeCG,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
