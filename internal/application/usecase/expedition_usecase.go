package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ExpeditionUseCase casos de uso de expediciones. Crear una expedición marca sus
// recepciones como "expedie" y suma sus poids_net, todo dentro de una transacción:
// una recepción ya expedida o inexistente aborta la operación completa.
type ExpeditionUseCase struct {
	txRunner TxRunner
	repo     repository.ExpeditionRepository
}

// NewExpeditionUseCase construye el caso de uso.
func NewExpeditionUseCase(txRunner TxRunner, repo repository.ExpeditionRepository) *ExpeditionUseCase {
	return &ExpeditionUseCase{txRunner: txRunner, repo: repo}
}

// Create arma la expedición con las recepciones indicadas (atómico).
func (uc *ExpeditionUseCase) Create(ctx context.Context, in dto.CreateExpeditionRequest) (*dto.ExpeditionResponse, error) {
	if len(in.ReceptionIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse(time.RFC3339, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}
	now := time.Now()
	expedition := &entity.Expedition{
		ID:           uuid.New().String(),
		Date:         date,
		Destination:  in.Destination,
		Transporteur: in.Transporteur,
		Statut:       entity.ExpeditionEnCours,
		ReceptionIDs: in.ReceptionIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		receptionRepo repository.ReceptionRepository,
		_ repository.CollecteRepository,
		expeditionRepo repository.ExpeditionRepository,
		_ repository.UserRepository,
	) error {
		total := decimal.Zero
		for _, id := range in.ReceptionIDs {
			r, err := receptionRepo.GetByID(id)
			if err != nil {
				return err
			}
			if r == nil {
				return domain.ErrNotFound
			}
			if r.Statut == entity.StatutExpedie {
				return domain.ErrAlreadyShipped
			}
			total = total.Add(r.PoidsNet)
			if err := receptionRepo.UpdateStatut(id, entity.StatutExpedie); err != nil {
				return err
			}
		}
		expedition.PoidsTotal = total
		return expeditionRepo.Create(expedition)
	})
	if err != nil {
		return nil, err
	}
	return toExpeditionResponse(expedition), nil
}

// GetByID obtiene una expedición por ID.
func (uc *ExpeditionUseCase) GetByID(id string) (*dto.ExpeditionResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toExpeditionResponse(e), nil
}

// List lista expediciones con paginación.
func (uc *ExpeditionUseCase) List(limit, offset int) (*dto.ExpeditionListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpeditionResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpeditionResponse(e))
	}
	return &dto.ExpeditionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarkLivree marca la expedición como entregada.
func (uc *ExpeditionUseCase) MarkLivree(id string) (*dto.ExpeditionResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if e.Statut == entity.ExpeditionLivree {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatut(id, entity.ExpeditionLivree); err != nil {
		return nil, err
	}
	e.Statut = entity.ExpeditionLivree
	return toExpeditionResponse(e), nil
}

func toExpeditionResponse(e *entity.Expedition) *dto.ExpeditionResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpeditionResponse{
		ID:           e.ID,
		Date:         e.Date,
		Destination:  e.Destination,
		Transporteur: e.Transporteur,
		Statut:       e.Statut,
		PoidsTotal:   e.PoidsTotal,
		ReceptionIDs: e.ReceptionIDs,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
