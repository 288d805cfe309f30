package parser

import (
	"regexp"
	"strings"
)

// nonEnglishRanges covers the scripts that mark alternate-language title
// segments: Japanese kana, CJK ideographs, half-width katakana and Cyrillic.
const nonEnglishRanges = `\x{3040}-\x{30ff}` +
	`\x{3400}-\x{4dbf}` +
	`\x{4e00}-\x{9fff}` +
	`\x{f900}-\x{faff}` +
	`\x{ff66}-\x{ff9f}` +
	`\x{0400}-\x{04ff}`

// Pre-compiled cleanup regexes, applied in a fixed order by CleanTitle
var (
	movieMarkerRegex = regexp.MustCompile(`(?i)[\[(]movie[\])]`)

	// Leading junk (anything that is not a word character, a recognized
	// non-English script character, or an allowed opening marker) and
	// trailing separator junk.
	edgeSymbolRegex = regexp.MustCompile(
		`^[^\w` + nonEnglishRanges + `#\[【★]+|[ \-:/\\\[|{(#$&^]+$`)

	// A trailing parenthesized cast annotation written in Cyrillic.
	cyrillicCastRegex = regexp.MustCompile(
		`\([^)]*[\x{0400}-\x{04ff}][^)]*\)$`)

	// Bracketed or star-marked sections at the very start or very end.
	leadingTagSectionRegex  = regexp.MustCompile(`^[\[【★].*[\]】★][ .]?(.+)`)
	trailingTagSectionRegex = regexp.MustCompile(`(.+)[ .]?[\[【★].*[\]】★]$`)

	// A /- or |-delimited segment carrying at least one non-English
	// character, on either side of the separator.
	altTitleRegex = regexp.MustCompile(
		`[^/|(]*[` + nonEnglishRanges + `][^/|]*[/|]` +
			`|[/|][^/|(]*[` + nonEnglishRanges + `][^/|]*`)

	// A non-English run embedded next to Latin text. Purely non-English
	// titles carry no Latin context and are left intact.
	foreignAfterLatinRegex = regexp.MustCompile(
		`([A-Za-z][^` + nonEnglishRanges + `]+)` +
			`[` + nonEnglishRanges + `].*[` + nonEnglishRanges + `]`)
	foreignBeforeLatinRegex = regexp.MustCompile(
		`[` + nonEnglishRanges + `].*[` + nonEnglishRanges + `]` +
			`([^` + nonEnglishRanges + `]+[A-Za-z])`)

	// Narrower edge strip for artifacts exposed by the section removals.
	remainingEdgeSymbolRegex = regexp.MustCompile(
		`^[^\w` + nonEnglishRanges + `#]+|[\[\]({} ]+$`)
)

// CleanTitle trims release-name artifacts from the title slice the engine
// produced: dot-delimited names, bracketed release tags, Cyrillic cast
// annotations, and alternate-language title segments.
func CleanTitle(rawTitle string) string {
	cleaned := rawTitle

	if !strings.Contains(cleaned, " ") && strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ".", " ")
	}
	cleaned = strings.ReplaceAll(cleaned, "_", " ")
	cleaned = movieMarkerRegex.ReplaceAllString(cleaned, "")
	cleaned = edgeSymbolRegex.ReplaceAllString(cleaned, "")
	cleaned = stripCastAnnotation(cleaned)
	cleaned = leadingTagSectionRegex.ReplaceAllString(cleaned, "$1")
	cleaned = trailingTagSectionRegex.ReplaceAllString(cleaned, "$1")
	cleaned = altTitleRegex.ReplaceAllString(cleaned, "")
	cleaned = foreignAfterLatinRegex.ReplaceAllString(cleaned, "$1")
	cleaned = foreignBeforeLatinRegex.ReplaceAllString(cleaned, "$1")
	cleaned = remainingEdgeSymbolRegex.ReplaceAllString(cleaned, "")

	return strings.TrimSpace(cleaned)
}

// stripCastAnnotation drops a trailing parenthesized fragment when it
// contains Cyrillic text, or when it follows a /-delimited alternate-title
// section. Both shapes are cast lists, not title content.
func stripCastAnnotation(title string) string {
	if loc := cyrillicCastRegex.FindStringIndex(title); loc != nil {
		return title[:loc[0]]
	}
	if strings.HasSuffix(title, ")") {
		if slash := strings.Index(title, "/"); slash >= 0 {
			if open := strings.Index(title[slash:], "("); open >= 0 {
				return title[:slash+open]
			}
		}
	}
	return title
}
