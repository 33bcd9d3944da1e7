package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpeditionRequest entrada para armar una expedición con recepciones existentes.
type CreateExpeditionRequest struct {
	Date         string   `json:"date" validate:"omitempty"`
	Destination  string   `json:"destination" validate:"required,max=200"`
	Transporteur string   `json:"transporteur" validate:"omitempty,max=150"`
	ReceptionIDs []string `json:"reception_ids" validate:"required,min=1"`
}

// ExpeditionResponse salida de una expedición.
type ExpeditionResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	Destination  string          `json:"destination"`
	Transporteur string          `json:"transporteur"`
	Statut       string          `json:"statut"`
	PoidsTotal   decimal.Decimal `json:"poids_total"`
	ReceptionIDs []string        `json:"reception_ids"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ExpeditionListResponse listado paginado de expediciones.
type ExpeditionListResponse struct {
	Items []ExpeditionResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
