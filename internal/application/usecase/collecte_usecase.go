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

// CollecteUseCase casos de uso de collectes (compras en terreno).
// Crear una collecte acredita el monto al saldo del collecteur dentro de una transacción.
type CollecteUseCase struct {
	txRunner TxRunner
	repo     repository.CollecteRepository
}

// NewCollecteUseCase construye el caso de uso.
func NewCollecteUseCase(txRunner TxRunner, repo repository.CollecteRepository) *CollecteUseCase {
	return &CollecteUseCase{txRunner: txRunner, repo: repo}
}

// Create registra la compra y acredita el saldo del collecteur (atómico).
// Montant se calcula como quantite × prix_unitaire; el cliente no lo envía.
func (uc *CollecteUseCase) Create(ctx context.Context, collecteurID string, in dto.CreateCollecteRequest) (*dto.CollecteResponse, error) {
	if in.Quantite.LessThanOrEqual(decimal.Zero) || in.PrixUnitaire.LessThanOrEqual(decimal.Zero) {
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
	collecte := &entity.Collecte{
		ID:           uuid.New().String(),
		CollecteurID: collecteurID,
		Date:         date,
		Produit:      in.Produit,
		Localisation: in.Localisation,
		Quantite:     in.Quantite,
		PrixUnitaire: in.PrixUnitaire,
		Montant:      in.Quantite.Mul(in.PrixUnitaire).Round(2),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.ReceptionRepository,
		collecteRepo repository.CollecteRepository,
		_ repository.ExpeditionRepository,
		userRepo repository.UserRepository,
	) error {
		user, err := userRepo.GetByID(collecteurID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if user.Role != entity.RoleCollecteur {
			return domain.ErrForbidden
		}
		if err := collecteRepo.Create(collecte); err != nil {
			return err
		}
		balance := decimal.Zero
		if user.Balance != nil {
			balance = *user.Balance
		}
		credited := balance.Add(collecte.Montant)
		user.Balance = &credited
		user.UpdatedAt = now
		return userRepo.Update(user)
	})
	if err != nil {
		return nil, err
	}
	return toCollecteResponse(collecte), nil
}

// GetByID obtiene una collecte por ID.
func (uc *CollecteUseCase) GetByID(id string) (*dto.CollecteResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCollecteResponse(c), nil
}

// List lista collectes, opcionalmente filtradas por collecteur, con paginación.
func (uc *CollecteUseCase) List(collecteurID string, limit, offset int) (*dto.CollecteListResponse, error) {
	list, err := uc.repo.List(collecteurID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CollecteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCollecteResponse(c))
	}
	return &dto.CollecteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCollecteResponse(c *entity.Collecte) *dto.CollecteResponse {
	if c == nil {
		return nil
	}
	return &dto.CollecteResponse{
		ID:           c.ID,
		CollecteurID: c.CollecteurID,
		Date:         c.Date,
		Produit:      c.Produit,
		Localisation: c.Localisation,
		Quantite:     c.Quantite,
		PrixUnitaire: c.PrixUnitaire,
		Montant:      c.Montant,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
