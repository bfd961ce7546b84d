package token

import "github.com/sakamoro/alicetxt/format"

// ParseLiteral parses a query filter literal using the same recognizer
// rules the skeletonizer applies to input records (spec §4.5's "literal
// coercion"), requiring the literal to be exactly one token of kind that
// spans the whole string. Returns ok=false if the literal doesn't parse as
// that kind or trailing/leading bytes are left over.
func ParseLiteral(kind format.TokenKind, literal string) (Token, bool) {
	r := NewRecognizer()
	items := r.Tokenize([]byte(literal))
	if len(items) != 1 || items[0].Token == nil {
		return Token{}, false
	}
	tok := *items[0].Token
	if tok.Kind != kind {
		return Token{}, false
	}
	if tok.Start != 0 || tok.End != len(literal) {
		return Token{}, false
	}
	return tok, true
}
