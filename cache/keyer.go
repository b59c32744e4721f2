package cache

import "strings"

// TranslationKey derives the cache key for a translation request.
//
// Contract:
// - Determinism: identical (source, target, text) tuples always produce the
//   same key.
// - Format: <sourceLang>-<targetLang>-<text>, unhashed. Keys are only ever
//   compared for equality, so arbitrary text content is fine.
func TranslationKey(sourceLang, targetLang, text string) string {
	var b strings.Builder
	b.Grow(len(sourceLang) + len(targetLang) + len(text) + 2)
	b.WriteString(sourceLang)
	b.WriteByte('-')
	b.WriteString(targetLang)
	b.WriteByte('-')
	b.WriteString(text)
	return b.String()
}
