package reception_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Girofle-api/internal/application/reception"
)

func TestIsDuplicate(t *testing.T) {
	existing := []string{"123456789", "  ABC-777  ", "nif-42"}

	cases := []struct {
		nombre string
		id     string
		want   bool
	}{
		{"coincidencia exacta", "123456789", true},
		{"case-insensitive", "abc-777", true},
		{"espacios alrededor", "  NIF-42 ", true},
		{"no registrado", "999", false},
		{"vacío nunca es duplicado", "", false},
		{"solo espacios tampoco", "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, reception.IsDuplicate(tc.id, existing))
		})
	}
}

func TestIsDuplicate_ListaVacia(t *testing.T) {
	assert.False(t, reception.IsDuplicate("123", nil))
	assert.False(t, reception.IsDuplicate("123", []string{}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validator: debounce de la verificación
// ──────────────────────────────────────────────────────────────────────────────

// resultados recolector thread-safe para los callbacks del Validator.
type resultados struct {
	mu   sync.Mutex
	vals []bool
}

func (r *resultados) report(d bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals = append(r.vals, d)
}

func (r *resultados) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, len(r.vals))
	copy(out, r.vals)
	return out
}

func TestValidator_SoloLaUltimaEdicionLlega(t *testing.T) {
	v := reception.NewValidator(20 * time.Millisecond)
	defer v.Stop()
	existing := []string{"dup-1"}
	var res resultados

	// Tres ediciones en ráfaga: solo la última debe verificar.
	v.Trigger("dup-1", existing, res.report)
	v.Trigger("dup-1", existing, res.report)
	v.Trigger("limpio", existing, res.report)

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []bool{false}, res.snapshot(),
		"solo la última edición ('limpio') debe reportarse")
}

func TestValidator_ReportaDuplicado(t *testing.T) {
	v := reception.NewValidator(10 * time.Millisecond)
	defer v.Stop()
	var res resultados

	v.Trigger("dup-1", []string{"DUP-1"}, res.report)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []bool{true}, res.snapshot())
}

func TestValidator_StopCancelaPendiente(t *testing.T) {
	v := reception.NewValidator(20 * time.Millisecond)
	var res resultados

	v.Trigger("dup-1", []string{"dup-1"}, res.report)
	v.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, res.snapshot(), "Stop debe cancelar la verificación pendiente")
}
