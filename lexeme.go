package rekson

// Package rekson implements a streaming JSON-repair filter: it reads
// "almost-JSON" bytes and writes valid JSON bytes, never failing on
// malformed input.

// Paired names a bracket family: the two real delimiter pairs the grammar
// recognizes, plus a synthetic marker for the start/end of the whole
// stream so the parser's state stack can treat top level uniformly.
type Paired byte

const (
	PairedBrace Paired = iota
	PairedBracket
	PairedFile
)

func (p Paired) String() string {
	switch p {
	case PairedBrace:
		return "Brace"
	case PairedBracket:
		return "Bracket"
	case PairedFile:
		return "File"
	}

	panic("unknown Paired")
}

// LexemeKind is the closed alphabet of structural units the lexer produces.
// It is deliberately small: everything that isn't quoted, whitespace, or a
// structural delimiter collapses into Else.
type LexemeKind byte

const (
	KindString LexemeKind = iota
	KindOpen
	KindClose
	KindComma
	KindColon
	KindElse
	KindWhiteSpace
)

func (k LexemeKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	case KindComma:
		return "Comma"
	case KindColon:
		return "Colon"
	case KindElse:
		return "Else"
	case KindWhiteSpace:
		return "WhiteSpace"
	}

	panic("unknown LexemeKind")
}

// Lexeme is a classified, contiguous run of input bytes: the lexer's
// output unit. Paired is only meaningful when Kind is KindOpen or
// KindClose; Bytes carries the original input bytes, which matter for
// KindString, KindElse, and KindWhiteSpace and are ignored otherwise.
type Lexeme struct {
	Kind   LexemeKind
	Paired Paired
	Bytes  []byte
}

// closeFile is the synthetic end-of-stream lexeme the driver feeds the
// parser (twice) to drain its one-token delay slot.
var closeFile = Lexeme{Kind: KindClose, Paired: PairedFile}

func openBrace() Lexeme  { return Lexeme{Kind: KindOpen, Paired: PairedBrace, Bytes: []byte{'{'}} }
func closeBrace() Lexeme { return Lexeme{Kind: KindClose, Paired: PairedBrace, Bytes: []byte{'}'}} }
func openBracket() Lexeme {
	return Lexeme{Kind: KindOpen, Paired: PairedBracket, Bytes: []byte{'['}}
}
func closeBracket() Lexeme {
	return Lexeme{Kind: KindClose, Paired: PairedBracket, Bytes: []byte{']'}}
}
func comma() Lexeme { return Lexeme{Kind: KindComma, Bytes: []byte{','}} }
func colon() Lexeme { return Lexeme{Kind: KindColon, Bytes: []byte{':'}} }

func openOf(p Paired) Lexeme {
	switch p {
	case PairedBrace:
		return openBrace()
	case PairedBracket:
		return openBracket()
	}

	panic("no open lexeme for Paired File")
}

func closeOf(p Paired) Lexeme {
	switch p {
	case PairedBrace:
		return closeBrace()
	case PairedBracket:
		return closeBracket()
	case PairedFile:
		return closeFile
	}

	panic("unknown Paired")
}

// classify maps a single raw byte to the LexemeKind (and, for structural
// bytes, the Paired family) it belongs to. Parentheses are coerced to the
// Bracket family, since authors commonly mistype them for array delimiters.
func classify(c byte) (LexemeKind, Paired) {
	switch c {
	case '[', '(':
		return KindOpen, PairedBracket
	case ']', ')':
		return KindClose, PairedBracket
	case '{':
		return KindOpen, PairedBrace
	case '}':
		return KindClose, PairedBrace
	case 0:
		return KindClose, PairedFile
	case ',':
		return KindComma, 0
	case ':', '=':
		return KindColon, 0
	case '\'', '"', '`':
		return KindString, 0
	}

	if isASCIISpace(c) {
		return KindWhiteSpace, 0
	}

	return KindElse, 0
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}

// joinable reports whether consecutive bytes of this kind accumulate into
// a single lexeme instead of each emitting its own.
func (k LexemeKind) joinable() bool {
	return k == KindElse || k == KindString || k == KindWhiteSpace
}
