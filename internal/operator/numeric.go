package operator

import "strconv"

// parseInt and formatInt wrap strconv for the integer literal forms the
// lexer accepts (unsigned digit sequences; the language's own unary
// minus is a separate AST node, not part of the literal text).
func parseInt(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
