package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	i18n "github.com/lifei6671/i18nproject"
)

func localeProject(t *testing.T, cfg i18n.Config) *i18n.Project {
	t.Helper()
	p := newProject("p", i18n.WithConfig(cfg))
	for code, texts := range map[string]map[string]string{
		"default": {"hello": "Hello!", "only": "default only"},
		"en":      {"hello": "Hello"},
		"de":      {"hello": "Hallo", "bye": "Tschüss"},
		"de_CH":   {"hello": "Grüezi"},
		"fr":      {"hello": "Bonjour"},
	} {
		require.NoError(t, p.AddResource(mem(code, texts)))
	}
	return p
}

func TestProject_BestMatchingLanguage(t *testing.T) {
	p := localeProject(t, i18n.Config{})
	tests := map[string]string{
		"de_CH":      "de_CH",
		"de_CH_1901": "de_CH",
		"de_DE":      "de",
		"de":         "de",
		"it":         "default",
		"default":    "default",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, p.BestMatchingLanguage(lang(in)).String())
		})
	}

	empty := newProject("empty")
	assert.Equal(t, i18n.DefaultLanguage, empty.BestMatchingLanguage(lang("de")))
}

func TestProject_DevelopmentLanguage(t *testing.T) {
	assert.Equal(t, lang("en"), localeProject(t, i18n.Config{}).DevelopmentLanguage())
	assert.Equal(t, lang("de"), localeProject(t, i18n.Config{HostLanguage: "de_AT"}).DevelopmentLanguage())
	assert.Equal(t, lang("fr"), localeProject(t, i18n.Config{DevelopmentLanguage: "fr", HostLanguage: "de"}).DevelopmentLanguage())
	assert.Equal(t, lang("de"), localeProject(t, i18n.Config{DevelopmentLanguage: "??", HostLanguage: "de"}).DevelopmentLanguage())
}

func TestLocale_T(t *testing.T) {
	p := localeProject(t, i18n.Config{})

	ch := p.Locale(lang("de_CH"))
	assert.Equal(t, []i18n.Language{lang("de_CH"), lang("de"), i18n.DefaultLanguage}, ch.Languages())
	assert.Equal(t, "Grüezi", ch.T("hello"))
	assert.Equal(t, "Tschüss", ch.T("bye"))
	assert.Equal(t, "default only", ch.T("only"))
	assert.Equal(t, "missing", ch.T("missing"))

	assert.Equal(t, "Hello!", p.Locale(lang("it")).T("hello"))
}
