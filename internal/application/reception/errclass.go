package reception

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/jhoicas/Girofle-api/internal/domain"
)

// Firmas de conflicto reconocidas en errores que cruzaron una frontera de
// serialización (shim de compatibilidad; el camino principal son los sentinelas).
var conflictSignatures = []string{"id_fiscale", "duplicate", "409", "unique constraint"}

// IsConflictError clasifica un error de creación como conflicto de id_fiscale.
// Primero la vía estructurada (sentinelas de dominio); si el error viene de un
// servicio externo que solo entrega texto, se buscan las firmas conocidas
// (case-insensitive) en el mensaje y en su forma serializada.
func IsConflictError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrIDFiscaleExists) || errors.Is(err, domain.ErrDuplicate) || errors.Is(err, domain.ErrConflict) {
		return true
	}
	candidates := strings.ToLower(err.Error())
	if b, jerr := json.Marshal(err); jerr == nil {
		candidates += " " + strings.ToLower(string(b))
	}
	for _, sig := range conflictSignatures {
		if strings.Contains(candidates, sig) {
			return true
		}
	}
	return false
}
