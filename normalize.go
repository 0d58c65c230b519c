package rekson

import "bytes"

// Normalize turns a lexeme into its canonical JSON byte representation.
// It is a pure function of (kind, paired, bytes) — no parser state is
// consulted. WhiteSpace normally travels as a token's whitespace_before;
// the one WhiteSpace-kind lexeme that does arrive here (trailing whitespace
// handed over by Parser.Flush) is returned verbatim.
func Normalize(l Lexeme) []byte {
	switch l.Kind {
	case KindString:
		return fixString(stripQuotes(l.Bytes))
	case KindElse:
		return fixElse(l.Bytes)
	case KindOpen:
		if l.Paired == PairedBracket {
			return []byte{'['}
		}
		return []byte{'{'}
	case KindClose:
		switch l.Paired {
		case PairedBracket:
			return []byte{']'}
		case PairedBrace:
			return []byte{'}'}
		default: // PairedFile
			return nil
		}
	case KindComma:
		return []byte{','}
	case KindColon:
		return []byte{':'}
	default: // KindWhiteSpace: trailing whitespace from Parser.Flush
		return l.Bytes
	}
}

// stripQuotes removes one leading and one trailing byte — the quotes the
// lexer's string sub-machine captured along with the content.
func stripQuotes(b []byte) []byte {
	if len(b) < 2 {
		return nil
	}

	return b[1 : len(b)-1]
}

// fixString re-escapes raw string content (quotes already stripped) into
// valid double-quoted JSON text. It is a one-pass byte machine: a pending
// backslash is tracked in escaped and resolved against the following byte,
// so already-escaped sequences (\n, \t, \uXXXX, \\, \") survive unchanged
// while raw newlines, raw carriage returns and stray quotes get escaped
// fresh. Other raw control bytes (a literal tab, for instance) are copied
// through unescaped.
func fixString(content []byte) []byte {
	out := make([]byte, 0, len(content)+2)
	out = append(out, '"')

	escaped := false

	for _, c := range content {
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '"':
			out = append(out, '\\', '"')
			escaped = false
		case c == '\n':
			if !escaped {
				out = append(out, '\\')
			}
			out = append(out, 'n')
			escaped = false
		case c == '\r':
			if !escaped {
				out = append(out, '\\')
			}
			out = append(out, 'r')
			escaped = false
		case escaped:
			out = append(out, '\\', c)
			escaped = false
		default:
			out = append(out, c)
		}
	}

	out = append(out, '"')

	return out
}

var (
	literalNull  = []byte("null")
	literalNil   = []byte("nil")
	literalNul   = []byte("nul")
	literalNone  = []byte("none")
	literalTrue  = []byte("true")
	literalFalse = []byte("false")
)

// fixElse reclassifies a bareword run: the null-family spellings and the
// boolean literals collapse to their canonical JSON form regardless of
// case, a plausible numeric literal passes through unchanged, and anything
// else is treated as an unquoted string and run through fixString.
func fixElse(raw []byte) []byte {
	switch {
	case bytes.EqualFold(raw, literalNull),
		bytes.EqualFold(raw, literalNil),
		bytes.EqualFold(raw, literalNul),
		bytes.EqualFold(raw, literalNone):
		return append([]byte(nil), literalNull...)
	case bytes.EqualFold(raw, literalTrue):
		return append([]byte(nil), literalTrue...)
	case bytes.EqualFold(raw, literalFalse):
		return append([]byte(nil), literalFalse...)
	}

	if isNumeric(raw) {
		return raw
	}

	return fixString(raw)
}

// isNumeric reports whether raw plausibly opens a numeric literal: the
// first byte that isn't a sign or a dot must be an ASCII digit, and an
// empty run is never numeric.
func isNumeric(raw []byte) bool {
	for _, c := range raw {
		if c == '+' || c == '-' || c == '.' {
			continue
		}

		return c >= '0' && c <= '9'
	}

	return false
}
