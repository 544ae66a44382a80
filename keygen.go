package i18n

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxKeyLength is the maximum length of a generated key in runes.
const MaxKeyLength = 190

// fallbackKey is used when the text contains nothing usable for a key.
const fallbackKey = "key"

var keyPattern = regexp.MustCompile(`^[\p{L}\p{N}_.\-]+$`)

// IsValidKey reports whether key consists of letters, digits, '_', '.'
// and '-' only.
func IsValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// GenerateKey derives a key from free text: characters other than letters,
// digits, '_', '-', '.' and blanks are dropped, several words are joined in
// camel case, leading '.', '_', '-' and trailing '.', '-' are trimmed and
// the result is cut to MaxKeyLength. A trailing '_' is kept.
func GenerateKey(text string) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case r == '_', r == '-', r == '.', r == ' ':
			return r
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, text)

	words := strings.Fields(key)
	if len(words) > 1 {
		for i, w := range words {
			words[i] = capitalize(w)
		}
	}
	key = strings.Join(words, "")
	key = strings.TrimLeft(key, "._-")
	key = strings.TrimRight(key, ".-")
	key = truncate(key, MaxKeyLength)
	if key == "" {
		return fallbackKey
	}
	return key
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// GenerateKey derives a key from text, see the package level GenerateKey.
func (p *Project) GenerateKey(text string) string {
	return GenerateKey(text)
}

// GenerateNewKey derives a key from text that is not yet used by the
// project. On collision the suffixes 0, 1, 2, ... are tried in turn.
func (p *Project) GenerateNewKey(text string) string {
	base := GenerateKey(text)
	var key string
	p.read(func(entries map[string]*Entry) {
		key = uniqueKey(base, func(k string) bool {
			_, taken := entries[k]
			return taken
		})
	})
	return key
}

func uniqueKey(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 0; ; i++ {
		suffix := strconv.Itoa(i)
		candidate := truncate(base, MaxKeyLength-len(suffix)) + suffix
		if !taken(candidate) {
			return candidate
		}
	}
}
