package i18n

// BestMatchingLanguage returns the most specific attached language for
// lang: lang itself, then lang without variant, then lang without country,
// and DefaultLanguage when nothing matches.
func (p *Project) BestMatchingLanguage(lang Language) Language {
	supported := make(map[Language]bool)
	for _, l := range p.registry.Languages() {
		supported[l] = true
	}
	for _, l := range fallbackChain(lang) {
		if supported[l] {
			return l
		}
	}
	return DefaultLanguage
}

// DevelopmentLanguage returns the configured development language, or the
// best match of the host language if none is configured.
func (p *Project) DevelopmentLanguage() Language {
	if p.config.DevelopmentLanguage != "" {
		lang, err := ParseLanguage(p.config.DevelopmentLanguage)
		if err == nil {
			return lang
		}
		p.logger.Warn("invalid development language", "language", p.config.DevelopmentLanguage, "error", err)
	}
	host, err := ParseLanguage(p.config.HostLanguage)
	if err != nil {
		p.logger.Warn("invalid host language", "language", p.config.HostLanguage, "error", err)
		return DefaultLanguage
	}
	return p.BestMatchingLanguage(host)
}

// Locale returns a lookup view of p for lang. Its fallback chain is lang,
// its less specific forms and DefaultLanguage.
func (p *Project) Locale(lang Language) *Locale {
	return &Locale{
		project: p,
		langs:   fallbackChain(lang),
	}
}

func fallbackChain(lang Language) []Language {
	chain := []Language{lang}
	for l := lang; !l.IsDefault(); {
		l = l.Parent()
		chain = append(chain, l)
	}
	return chain
}
