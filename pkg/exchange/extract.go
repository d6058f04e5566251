package exchange

import "regexp"

// exchangeStringPattern matches exchange strings embedded in free text. The
// version byte is followed by the base64 of a zlib stream, whose two header
// bytes encode to "eJ" (default compression) or "eN" (best compression).
var exchangeStringPattern = regexp.MustCompile(`0e[JN][A-Za-z0-9+/]+={0,2}`)

// ExtractStrings scans a block of text, such as a pasted forum post or a
// saved blueprint dump, and returns every candidate exchange string in
// order of appearance. Candidates are not decoded; callers decide what to
// do with ones that fail Decode.
func ExtractStrings(text string) []string {
	return exchangeStringPattern.FindAllString(text, -1)
}
