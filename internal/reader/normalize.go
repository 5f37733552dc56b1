package reader

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a leading UTF-8 BOM and applies Unicode NFC normalization,
// so that lexically equivalent source produces identical token streams
// regardless of how an atom's Unicode codepoints happened to be composed.
// Run once at the lexer boundary, before atom symbols are validated against
// the Invariant 9 lexical rule (§3).
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, bomUTF8)
	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}
	return src
}
