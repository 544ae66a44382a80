// Package i18n keeps the translations of a project in memory.
//
// A Project merges one Resource per language into a set of entries, one
// per key, and may inherit the entries of a parent project. Changes of the
// resources and of the parent are applied incrementally and republished to
// the project's listeners as coalesced events.
package i18n

// Config 定义项目的基础配置
type Config struct {
	// DevelopmentLanguage is the language developers write new texts in,
	// e.g. "en". Empty means: pick the best match of HostLanguage.
	DevelopmentLanguage string

	// HostLanguage is the language of the host environment, "en" if empty.
	HostLanguage string
}

func (c Config) withDefaults() Config {
	if c.HostLanguage == "" {
		c.HostLanguage = "en"
	}
	return c
}

// Locale 是绑定了“语言链”的翻译入口
type Locale struct {
	project *Project
	langs   []Language // lang fallback chain
}

// T returns the text of key following the fallback chain of the locale.
// If no language in the chain has a text, the key itself is returned.
func (l *Locale) T(key string) string {
	if l.project == nil {
		return key
	}
	e, ok := l.project.Entry(key)
	if !ok {
		return key
	}
	for _, lang := range l.langs {
		if text, ok := e.Text(lang); ok && text != "" {
			return text
		}
	}
	return key
}

// Languages returns the fallback chain, most specific first.
func (l *Locale) Languages() []Language {
	out := make([]Language, len(l.langs))
	copy(out, l.langs)
	return out
}
