package classname

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Phrase is the literal declaration prefix the extractor looks for.
const Phrase = "export default class"

// declRe captures the whitespace after Phrase and the declared identifier.
// Both classes are Unicode-aware: identifiers are letters, digits and
// underscores of any script, and whitespace includes the Unicode separators.
var declRe = regexp.MustCompile(regexp.QuoteMeta(Phrase) + `([\s\x0B\x1C-\x1F\x85\p{Z}]+)([\p{L}\p{N}_]+)`)

// Extract returns the identifier declared by the first occurrence of
// "export default class <Name>" in content. The boolean is false when the
// content has no such declaration.
func Extract(content string) (string, bool) {
	m := declRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// Replace rewrites the identifier of every default class declaration in
// content to name. The whitespace between the phrase and the identifier is
// kept as is.
func Replace(content, name string) string {
	return declRe.ReplaceAllStringFunc(content, func(decl string) string {
		m := declRe.FindStringSubmatch(decl)
		return Phrase + m[1] + name
	})
}

// BaseName returns the final element of path with its extension removed.
// Only the last extension is stripped, so "Foo.test.ts" yields "Foo.test".
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
