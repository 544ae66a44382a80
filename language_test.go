package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	i18n "github.com/lifei6671/i18nproject"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		country string
		variant string
	}{
		{"", "default", "", ""},
		{"default", "default", "", ""},
		{"KEY", "key", "", ""},
		{"de", "de", "", ""},
		{"de_CH", "de_CH", "CH", ""},
		{"de-ch", "de_CH", "CH", ""},
		{"de_CH_1901", "de_CH_1901", "CH", "1901"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, err := i18n.ParseLanguage(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.String())
			assert.Equal(t, tt.country, l.Country())
			assert.Equal(t, tt.variant, l.Variant())
		})
	}

	_, err := i18n.ParseLanguage("not a language")
	assert.Error(t, err)
}

func TestLanguage_Identity(t *testing.T) {
	assert.Equal(t, lang("de_CH"), i18n.NewLanguage("DE", "ch", ""))
	assert.Equal(t, lang("de_CH"), i18n.LanguageOf(language.MustParse("de-CH")))
	assert.Equal(t, i18n.DefaultLanguage, i18n.NewLanguage("", "", ""))
	assert.Equal(t, i18n.DefaultLanguage, i18n.LanguageOf(language.Und))
	assert.True(t, i18n.KeyLanguage.IsKey())
	assert.True(t, i18n.DefaultLanguage.IsDefault())
	assert.Equal(t, "de-CH", lang("de_CH").Tag().String())
	assert.Equal(t, language.Und, i18n.KeyLanguage.Tag())
}

func TestLanguage_Parent(t *testing.T) {
	assert.Equal(t, lang("de_CH"), lang("de_CH_1901").Parent())
	assert.Equal(t, lang("de"), lang("de_CH").Parent())
	assert.Equal(t, i18n.DefaultLanguage, lang("de").Parent())
	assert.Equal(t, i18n.DefaultLanguage, i18n.DefaultLanguage.Parent())
}

func TestLanguage_DisplayName(t *testing.T) {
	assert.Equal(t, "Key", i18n.KeyLanguage.DisplayName())
	assert.Equal(t, "Default", i18n.DefaultLanguage.DisplayName())
	assert.Equal(t, "German", lang("de").DisplayName())
	assert.Equal(t, "English", lang("en").DisplayName())
}

func TestSortLanguages(t *testing.T) {
	langs := []i18n.Language{lang("fr"), lang("de"), i18n.DefaultLanguage, lang("en"), i18n.KeyLanguage}
	i18n.SortLanguages(langs)

	var got []string
	for _, l := range langs {
		got = append(got, l.String())
	}
	// English, French, German
	assert.Equal(t, []string{"key", "default", "en", "fr", "de"}, got)
}

func TestCompareLanguages(t *testing.T) {
	assert.Zero(t, i18n.CompareLanguages(lang("de"), lang("de")))
	assert.Negative(t, i18n.CompareLanguages(i18n.KeyLanguage, i18n.DefaultLanguage))
	assert.Negative(t, i18n.CompareLanguages(i18n.DefaultLanguage, lang("aa")))
	assert.Positive(t, i18n.CompareLanguages(lang("de"), lang("en")))
	assert.Negative(t, i18n.CompareLanguages(lang("de"), lang("de_CH")))
}
