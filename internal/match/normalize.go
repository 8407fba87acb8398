package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds a field name into a canonical form for fuzzy matching:
// camelCase is tokenized, tokens are lowercased and joined, and separators
// (_, -, spaces) are dropped. "isEnabledForUser", "is_enabled_for_user" and
// "IsEnabledForUser" all normalize to "isenabledforuser".
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(s)

	return stripSeparators(strings.ToLower(strings.Join(tokens, "")))
}

// NormalizeIdentWithSuffixStrip normalizes s and drops one common key suffix
// (id, ids, key, at) unless that would leave nothing. "featureId" and
// "feature" compare equal after stripping.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	// longer suffixes first so "ids" wins over "id"
	for _, suffix := range []string{"ids", "key", "id", "at"} {
		if strings.HasSuffix(normalized, suffix) && len(normalized) > len(suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

// tokenizeCamelCase splits a camelCase, PascalCase or separated name into tokens.
//   - "isAvailableForOptIn" -> ["is", "Available", "For", "Opt", "In"]
//   - "featureID" -> ["feature", "ID"]
//   - "HTTPFlag" -> ["HTTP", "Flag"]
//   - "opt_in" -> ["opt", "in"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken reports whether runes[i] begins a new camelCase token.
func shouldStartNewToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// lower -> upper: "featureID" splits before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// end of an acronym: "HTTPFlag" splits before 'F'
	return isUpper && isPrevUpper && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func stripSeparators(s string) string {
	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if !isSeparator(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}
