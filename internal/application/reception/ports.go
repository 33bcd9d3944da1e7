package reception

import (
	"context"

	"github.com/jhoicas/Girofle-api/internal/application/dto"
)

// RecordStore colaborador de escritura del asistente de captura: crea la recepción.
// Debe señalar el conflicto de id_fiscale de forma distinguible (domain.ErrIDFiscaleExists
// o, como compatibilidad, un mensaje reconocible por IsConflictError).
type RecordStore interface {
	CreateReception(ctx context.Context, in dto.CreateReceptionRequest) (*dto.ReceptionResponse, error)
}

// RecordList colaborador de lectura: los id_fiscale conocidos para la verificación
// de duplicados y un Refetch para refrescarlos después de crear.
type RecordList interface {
	IDFiscales() []string
	Refetch(ctx context.Context) error
}

// ReceiptGenerator puerto para el recibo PDF de una recepción (bon de réception).
type ReceiptGenerator interface {
	GenerateRecu(ctx context.Context, r *dto.ReceptionResponse) ([]byte, error)
}
