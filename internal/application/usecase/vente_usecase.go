package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// VenteUseCase casos de uso CRUD para ventas.
type VenteUseCase struct {
	repo repository.VenteRepository
}

// NewVenteUseCase construye el caso de uso.
func NewVenteUseCase(repo repository.VenteRepository) *VenteUseCase {
	return &VenteUseCase{repo: repo}
}

// Create registra una venta. Montant = quantite × prix_unitaire.
func (uc *VenteUseCase) Create(in dto.CreateVenteRequest) (*dto.VenteResponse, error) {
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
	vente := &entity.Vente{
		ID:           uuid.New().String(),
		Date:         date,
		Client:       in.Client,
		Produit:      in.Produit,
		Quantite:     in.Quantite,
		PrixUnitaire: in.PrixUnitaire,
		Montant:      in.Quantite.Mul(in.PrixUnitaire).Round(2),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(vente); err != nil {
		return nil, err
	}
	return toVenteResponse(vente), nil
}

// GetByID obtiene una venta por ID.
func (uc *VenteUseCase) GetByID(id string) (*dto.VenteResponse, error) {
	v, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return toVenteResponse(v), nil
}

// List lista ventas con paginación.
func (uc *VenteUseCase) List(limit, offset int) (*dto.VenteListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VenteResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVenteResponse(v))
	}
	return &dto.VenteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toVenteResponse(v *entity.Vente) *dto.VenteResponse {
	if v == nil {
		return nil
	}
	return &dto.VenteResponse{
		ID:           v.ID,
		Date:         v.Date,
		Client:       v.Client,
		Produit:      v.Produit,
		Quantite:     v.Quantite,
		PrixUnitaire: v.PrixUnitaire,
		Montant:      v.Montant,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
