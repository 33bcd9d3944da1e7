package reception

import (
	"strings"
	"sync"
	"time"
)

// IsDuplicate responde si id ya figura entre los id_fiscale existentes.
// Comparación case-insensitive sobre valores recortados; un id vacío nunca es duplicado.
// Función pura: la usa el Draft y el Validator, y se testea sin timers.
func IsDuplicate(id string, existing []string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	for _, e := range existing {
		if strings.EqualFold(id, strings.TrimSpace(e)) {
			return true
		}
	}
	return false
}

// Validator envuelve IsDuplicate con un debounce explícito y cancelable.
// Cada Trigger reinicia el temporizador; solo la última edición dentro del
// intervalo llega al callback. Stop cancela cualquier verificación pendiente.
type Validator struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64 // invalida callbacks de triggers anteriores
}

// NewValidator construye el validador con el intervalo de debounce del llamador.
func NewValidator(interval time.Duration) *Validator {
	return &Validator{interval: interval}
}

// Trigger programa una verificación de id contra existing; report recibe el
// resultado pasado el intervalo, salvo que otra edición o Stop lo cancele.
func (v *Validator) Trigger(id string, existing []string, report func(duplicate bool)) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.gen++
	gen := v.gen
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.interval, func() {
		v.mu.Lock()
		current := v.gen == gen
		v.mu.Unlock()
		if current {
			report(IsDuplicate(id, existing))
		}
	})
}

// Stop cancela la verificación pendiente, si la hay.
func (v *Validator) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}
