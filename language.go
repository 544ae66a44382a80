package i18n

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type languageKind uint8

const (
	kindRegular languageKind = iota
	kindKey
	kindDefault
)

// Language identifies the language slot of a translation.
// Besides regular locales there are two pseudo languages: KeyLanguage
// stands for the raw key column, DefaultLanguage for the neutral fallback
// texts. Language is comparable and meant to be used as a map key.
type Language struct {
	kind    languageKind
	lang    string
	country string
	variant string
}

var (
	// KeyLanguage is the pseudo language of the key itself.
	KeyLanguage = Language{kind: kindKey}
	// DefaultLanguage is the neutral fallback language.
	DefaultLanguage = Language{kind: kindDefault}
)

var displayNamer = display.Tags(language.English)

// NewLanguage builds a regular language from its parts. An empty lang
// yields DefaultLanguage.
func NewLanguage(lang, country, variant string) Language {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return DefaultLanguage
	}
	return Language{
		kind:    kindRegular,
		lang:    lang,
		country: strings.ToUpper(strings.TrimSpace(country)),
		variant: strings.TrimSpace(variant),
	}
}

// ParseLanguage parses "de", "de_CH", "de-CH", "de_CH_1901" as well as the
// pseudo names "default" and "key". The empty string is DefaultLanguage.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "default":
		return DefaultLanguage, nil
	case "key":
		return KeyLanguage, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return DefaultLanguage, fmt.Errorf("parse language %q: %w", s, err)
	}
	return LanguageOf(tag), nil
}

// MustParseLanguage is like ParseLanguage but panics on error.
func MustParseLanguage(s string) Language {
	l, err := ParseLanguage(s)
	if err != nil {
		panic(err)
	}
	return l
}

// LanguageOf converts a BCP 47 tag. Nothing is inferred: "de" stays "de"
// and does not become "de_DE".
func LanguageOf(tag language.Tag) Language {
	if tag == language.Und {
		return DefaultLanguage
	}
	base, _, region := tag.Raw()
	country := ""
	if region.String() != "ZZ" {
		country = region.String()
	}
	variants := make([]string, 0, len(tag.Variants()))
	for _, v := range tag.Variants() {
		variants = append(variants, v.String())
	}
	return NewLanguage(base.String(), country, strings.Join(variants, "_"))
}

func (l Language) IsKey() bool     { return l.kind == kindKey }
func (l Language) IsDefault() bool { return l.kind == kindDefault }

// Code returns the language code, empty for the pseudo languages.
func (l Language) Code() string    { return l.lang }
func (l Language) Country() string { return l.country }
func (l Language) Variant() string { return l.variant }

// Tag converts l to a BCP 47 tag. Pseudo languages map to language.Und.
func (l Language) Tag() language.Tag {
	if l.kind != kindRegular {
		return language.Und
	}
	parts := []string{l.lang}
	if l.country != "" {
		parts = append(parts, l.country)
	}
	if l.variant != "" {
		parts = append(parts, strings.Split(l.variant, "_")...)
	}
	return language.Make(strings.Join(parts, "-"))
}

func (l Language) String() string {
	switch l.kind {
	case kindKey:
		return "key"
	case kindDefault:
		return "default"
	}
	var b strings.Builder
	b.WriteString(l.lang)
	if l.country != "" || l.variant != "" {
		b.WriteByte('_')
		b.WriteString(l.country)
	}
	if l.variant != "" {
		b.WriteByte('_')
		b.WriteString(l.variant)
	}
	return b.String()
}

// DisplayName returns the English, human readable name of l.
func (l Language) DisplayName() string {
	switch l.kind {
	case kindKey:
		return "Key"
	case kindDefault:
		return "Default"
	}
	if name := displayNamer.Name(l.Tag()); name != "" {
		return name
	}
	return l.String()
}

// Parent returns the next less specific language: the variant is dropped
// first, then the country, then everything (DefaultLanguage).
func (l Language) Parent() Language {
	switch {
	case l.kind != kindRegular:
		return DefaultLanguage
	case l.variant != "":
		return Language{kind: kindRegular, lang: l.lang, country: l.country}
	case l.country != "":
		return Language{kind: kindRegular, lang: l.lang}
	}
	return DefaultLanguage
}

// CompareLanguages orders KeyLanguage first, DefaultLanguage second and
// everything else by display name. Equal display names are ordered by code
// so the order is total.
func CompareLanguages(a, b Language) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}
	if c := strings.Compare(a.DisplayName(), b.DisplayName()); c != 0 {
		return c
	}
	return strings.Compare(a.String(), b.String())
}

func rank(l Language) int {
	switch l.kind {
	case kindKey:
		return 0
	case kindDefault:
		return 1
	}
	return 2
}

// SortLanguages sorts langs in place using CompareLanguages.
func SortLanguages(langs []Language) {
	slices.SortFunc(langs, CompareLanguages)
}
