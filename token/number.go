package token

import "strconv"

// parseFloat converts the matched textual repr to its f64 value. The repr
// has already been shaped by matchNumber to a valid Go float syntax (a
// leading sign, digits, optional ".digits", optional exponent), so
// strconv.ParseFloat is authoritative here rather than a hand-rolled parser.
func parseFloat(repr string) (float64, bool) {
	f, err := strconv.ParseFloat(repr, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
