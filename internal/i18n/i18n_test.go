package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"de", language.German},
		{"de-AT", language.German},
		{"es-MX", language.Spanish},
		{"fr", language.English},
		{"", language.English},
		{"not a tag!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.locale))
		})
	}
}

func TestCatalog_GradeKeys(t *testing.T) {
	keys := []string{"grade.poor", "grade.fair", "grade.good", "grade.excellent", "grade.ungraded"}

	for _, tag := range Supported() {
		c := NewCatalog(tag.String())
		for _, key := range keys {
			assert.NotEqual(t, key, c.Localize(key), "%s missing %s", tag, key)
		}
	}
}

func TestCatalog_Localize(t *testing.T) {
	assert.Equal(t, "Poor", NewCatalog("en").Localize("grade.poor"))
	assert.Equal(t, "Gut", NewCatalog("de-DE").Localize("grade.good"))
	assert.Equal(t, "Excelente", NewCatalog("es").Localize("grade.excellent"))
}

func TestCatalog_UnknownKey(t *testing.T) {
	c := NewCatalog("de")

	assert.Equal(t, "no.such.key", c.Localize("no.such.key"))
}

func TestCatalog_TablesHaveSameKeys(t *testing.T) {
	english := tables[language.English]
	for tag, table := range tables {
		assert.Len(t, table, len(english), "%s table size", tag)
		for key := range english {
			_, ok := table[key]
			assert.True(t, ok, "%s missing %s", tag, key)
		}
	}
}

func TestCatalog_Locale(t *testing.T) {
	assert.Equal(t, language.Spanish, NewCatalog("es-AR").Locale())
}

func TestLocalizerFunc(t *testing.T) {
	var l Localizer = LocalizerFunc(func(key string) string { return "<" + key + ">" })

	assert.Equal(t, "<grade.good>", l.Localize("grade.good"))
}
