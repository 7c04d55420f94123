// Package i18n maps message keys to display strings for the active locale.
package i18n

import (
	"golang.org/x/text/language"
)

// Localizer resolves a message key for the active locale.
// Unknown keys come back unchanged.
type Localizer interface {
	Localize(key string) string
}

// LocalizerFunc adapts a plain function to Localizer
type LocalizerFunc func(key string) string

func (f LocalizerFunc) Localize(key string) string {
	return f(key)
}

// Message keys used outside the grade bands
const (
	KeyTitle        = "app.title"
	KeyEmptyRoster  = "app.emptyRoster"
	KeyGradeAtMax   = "toast.gradeAtMax"
	KeyGradeAtMin   = "toast.gradeAtMin"
	KeyInvalidInput = "toast.invalidInput"
	KeyDismissHint  = "toast.dismissHint"
	KeyToastActive  = "status.toastActive"
)

// supported lists locales with a table below, in matcher preference order
var supported = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var tables = map[language.Tag]map[string]string{
	language.English: {
		"grade.ungraded":  "Ungraded",
		"grade.poor":      "Poor",
		"grade.fair":      "Fair",
		"grade.good":      "Good",
		"grade.excellent": "Excellent",
		KeyTitle:          "Gradebook",
		KeyEmptyRoster:    "No students on the roster",
		KeyGradeAtMax:     "Grade is already at the maximum",
		KeyGradeAtMin:     "Grade is already at the minimum",
		KeyInvalidInput:   "Grades are whole numbers from 0 to 10",
		KeyDismissHint:    "enter to dismiss",
		KeyToastActive:    "message",
	},
	language.German: {
		"grade.ungraded":  "Unbewertet",
		"grade.poor":      "Mangelhaft",
		"grade.fair":      "Befriedigend",
		"grade.good":      "Gut",
		"grade.excellent": "Ausgezeichnet",
		KeyTitle:          "Notenbuch",
		KeyEmptyRoster:    "Keine Schüler in der Liste",
		KeyGradeAtMax:     "Die Note ist bereits maximal",
		KeyGradeAtMin:     "Die Note ist bereits minimal",
		KeyInvalidInput:   "Noten sind ganze Zahlen von 0 bis 10",
		KeyDismissHint:    "Enter zum Schließen",
		KeyToastActive:    "Meldung",
	},
	language.Spanish: {
		"grade.ungraded":  "Sin calificar",
		"grade.poor":      "Insuficiente",
		"grade.fair":      "Aceptable",
		"grade.good":      "Bueno",
		"grade.excellent": "Excelente",
		KeyTitle:          "Calificaciones",
		KeyEmptyRoster:    "No hay estudiantes en la lista",
		KeyGradeAtMax:     "La calificación ya está en el máximo",
		KeyGradeAtMin:     "La calificación ya está en el mínimo",
		KeyInvalidInput:   "Las calificaciones son números enteros de 0 a 10",
		KeyDismissHint:    "enter para cerrar",
		KeyToastActive:    "mensaje",
	},
}

// Catalog is a Localizer backed by the built-in tables.
// Keys missing from the chosen locale fall back to English, then to the key.
type Catalog struct {
	tag     language.Tag
	strings map[string]string
}

// NewCatalog picks the closest supported locale for the given BCP 47 tag.
// Unparseable or unsupported tags get English.
func NewCatalog(locale string) *Catalog {
	tag := Match(locale)
	return &Catalog{tag: tag, strings: tables[tag]}
}

// Match returns the supported locale closest to locale
func Match(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supported[idx]
}

// Locale returns the tag the catalog resolved to
func (c *Catalog) Locale() language.Tag {
	return c.tag
}

func (c *Catalog) Localize(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	if s, ok := tables[language.English][key]; ok {
		return s
	}
	return key
}

// Supported returns the locales that have tables
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}
