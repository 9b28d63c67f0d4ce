package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Spanish)

// FullName normaliza un nombre completo: colapsa espacios repetidos y aplica
// capitalización de título según reglas del español ("maría lópez" -> "María López").
func FullName(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return titleCaser.String(strings.Join(fields, " "))
}
