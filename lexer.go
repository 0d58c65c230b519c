package rekson

// Lexer is a single-byte state machine: feed it one input byte at a time
// and it reports a completed Lexeme whenever a boundary between two
// distinct lexemes has been crossed. It holds no reference to the input
// source — callers own reading; Lexer only classifies bytes.
//
// Unlike a ring-buffer tokenizer that reads ahead, Lexer always emits the
// *previous* held lexeme when a new, incompatible byte arrives (or, for
// quoted strings, emits immediately on the closing quote). This one-byte
// lag is why the driver must feed a trailing sentinel byte and a couple
// of terminator lexemes to flush the last pending run — see ProcessStreams.
type Lexer struct {
	pending    Lexeme
	hasPending bool
}

// NewLexer returns a ready-to-use Lexer.
func NewLexer() *Lexer {
	return &Lexer{}
}

// Process consumes one byte and reports the Lexeme that was completed by
// it, if any. ok is false when the byte only extended the lexeme still
// being built.
func (l *Lexer) Process(c byte) (lexeme Lexeme, ok bool) {
	if l.hasPending && l.pending.Kind == KindString {
		return l.processString(c)
	}

	kind, paired := classify(c)

	switch kind {
	case KindString:
		return l.take(Lexeme{Kind: KindString, Bytes: []byte{c}})
	case KindElse, KindWhiteSpace:
		return l.processJoinable(kind, c)
	default:
		// Comma, Colon, Open, Close: never joinable, always its own lexeme.
		return l.take(Lexeme{Kind: kind, Paired: paired, Bytes: []byte{c}})
	}
}

// processString implements the string sub-machine: everything accumulates,
// including other quote characters, until a byte equal to the opening
// quote closes it — unless the byte immediately before it in the buffer
// is a backslash. The closing quote is included in the emitted lexeme and
// the string is reported immediately, not deferred like other kinds.
func (l *Lexer) processString(c byte) (Lexeme, bool) {
	first := l.pending.Bytes[0]
	last := l.pending.Bytes[len(l.pending.Bytes)-1]

	l.pending.Bytes = append(l.pending.Bytes, c)

	if c == first && last != '\\' {
		out := l.pending
		l.pending = Lexeme{}
		l.hasPending = false
		return out, true
	}

	return Lexeme{}, false
}

// processJoinable accumulates a run of Else or WhiteSpace bytes, emitting
// the previously pending lexeme only when the kind actually changes.
func (l *Lexer) processJoinable(kind LexemeKind, c byte) (Lexeme, bool) {
	if l.hasPending && l.pending.Kind == kind {
		l.pending.Bytes = append(l.pending.Bytes, c)
		return Lexeme{}, false
	}

	return l.take(Lexeme{Kind: kind, Bytes: []byte{c}})
}

// take replaces the held lexeme with next, returning whatever was held
// before (if anything).
func (l *Lexer) take(next Lexeme) (Lexeme, bool) {
	out, ok := l.pending, l.hasPending
	l.pending, l.hasPending = next, true

	return out, ok
}
