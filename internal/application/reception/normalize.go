package reception

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleFR = cases.Title(language.French)

// FoldName normaliza un nombre de proveedor: recorta espacios y aplica
// mayúscula inicial por palabra según las reglas del francés ("rakoto" → "Rakoto").
func FoldName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return titleFR.String(strings.ToLower(s))
}
