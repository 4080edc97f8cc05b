package tabular

import "strings"

// clean.go handles the artifacts user-supplied tabular files arrive with:
// UTF-8 BOMs from Windows exports, Excel formula prefixes (="value"),
// stray quoting, and invalid byte sequences.

// utf8BOM is the UTF-8 byte order mark commonly prepended by Windows
// programs.
const utf8BOM = "\xef\xbb\xbf"

// TrimBOM removes a leading UTF-8 BOM if present.
func TrimBOM(s string) string {
	return strings.TrimPrefix(s, utf8BOM)
}

// SanitizeUTF8 replaces invalid UTF-8 sequences with '?' so downstream
// processing never sees malformed runes.
func SanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "?")
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// surrounding whitespace, the Excel formula prefix (="..." or a bare
// leading '='), and surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return s
}

// CleanHeader normalizes a header cell for matching: BOM stripped, cell
// artifacts removed, lowercased.
func CleanHeader(s string) string {
	return strings.ToLower(CleanCell(TrimBOM(s)))
}

// HeaderIndex maps cleaned column names to their position in the header row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a HeaderIndex from a raw header row. When the same
// name appears twice, the last occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[CleanHeader(h)] = i
	}
	return idx
}
