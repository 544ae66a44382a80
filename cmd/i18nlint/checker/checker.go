package checker

import (
	"sort"

	i18n "github.com/lifei6671/i18nproject"
)

type Result struct {
	Project       string
	Languages     []string
	MissingKeys   map[string][]string // lang -> keys without text
	RedundantKeys map[string][]string // lang -> local texts equal to the parent's
	InvalidKeys   []string
	AllKeys       []string
	Inherited     int
}

// CheckProject performs:
//  1. completeness check: keys without a text in a language of the project
//  2. redundancy check: local texts that repeat the parent's text
//  3. key format check via i18n.IsValidKey()
func CheckProject(p *i18n.Project) *Result {
	res := &Result{
		Project:       p.ID(),
		MissingKeys:   make(map[string][]string),
		RedundantKeys: make(map[string][]string),
	}

	langs := p.Languages()
	for _, lang := range langs {
		res.Languages = append(res.Languages, lang.String())
	}

	parent := p.Parent()
	for _, e := range p.AllEntries() {
		key := e.Key()
		res.AllKeys = append(res.AllKeys, key)
		if !i18n.IsValidKey(key) {
			res.InvalidKeys = append(res.InvalidKeys, key)
		}
		if e.IsInherited() {
			res.Inherited++
		}

		for _, lang := range langs {
			if text, ok := e.Text(lang); !ok || text == "" {
				res.MissingKeys[lang.String()] = append(res.MissingKeys[lang.String()], key)
			}
		}

		if e.IsInherited() || parent == nil {
			continue
		}
		pe, ok := parent.Entry(key)
		if !ok {
			continue
		}
		for _, lang := range langs {
			local, ok := e.Text(lang)
			if !ok {
				continue
			}
			if inherited, ok := pe.Text(lang); ok && inherited == local {
				res.RedundantKeys[lang.String()] = append(res.RedundantKeys[lang.String()], key)
			}
		}
	}

	sort.Strings(res.InvalidKeys)
	return res
}

// HasIssues reports whether res contains anything worth failing for.
func (res *Result) HasIssues() bool {
	for _, arr := range res.MissingKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range res.RedundantKeys {
		if len(arr) > 0 {
			return true
		}
	}
	return len(res.InvalidKeys) > 0
}
