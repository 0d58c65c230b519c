package rekson

// pdaState is one of the parser's structural states. The stack
// bottom is always implicitly stateFile; it is represented by an empty
// stack rather than stored explicitly, mirroring the fact that it is
// never popped.
type pdaState byte

const (
	stateFile pdaState = iota
	stateArray
	stateObject
	stateKey
	stateColon
	stateValue
	stateComma
)

func (s pdaState) String() string {
	switch s {
	case stateFile:
		return "File"
	case stateArray:
		return "Array"
	case stateObject:
		return "Object"
	case stateKey:
		return "Key"
	case stateColon:
		return "Colon"
	case stateValue:
		return "Value"
	case stateComma:
		return "Comma"
	}

	panic("unknown pdaState")
}

// stateFor maps the Paired family of an opening delimiter to the state it
// pushes: a brace opens an Object, a bracket opens an Array.
func stateFor(p Paired) pdaState {
	if p == PairedBrace {
		return stateObject
	}

	return stateArray
}

// outcomeKind names the shape of a repair-table decision.
type outcomeKind byte

const (
	outcomePush outcomeKind = iota
	outcomeTake
	outcomePop
	outcomeInsert
	outcomeDrop
	outcomeDropBefore
)

// outcome is the result of consulting the repair table for one (state,
// lexeme kind) pair. Only the fields relevant to kind are meaningful:
// state for Push/Take, insert for Insert.
type outcome struct {
	kind   outcomeKind
	state  pdaState
	insert Lexeme
}

func takeState(s pdaState) outcome  { return outcome{kind: outcomeTake, state: s} }
func pushState(s pdaState) outcome  { return outcome{kind: outcomePush, state: s} }
func insertLexeme(l Lexeme) outcome { return outcome{kind: outcomeInsert, insert: l} }

var (
	outcomePopOnly        = outcome{kind: outcomePop}
	outcomeDropOnly       = outcome{kind: outcomeDrop}
	outcomeDropBeforeOnly = outcome{kind: outcomeDropBefore}
)

// isValueBearing reports whether a lexeme kind is a String or Else — the
// two kinds that actually carry a scalar value, as opposed to structural
// punctuation.
func isValueBearing(k LexemeKind) bool {
	return k == KindString || k == KindElse
}

// validate is the repair table: a total function of the top
// structural state and the incoming lexeme kind (plus, for Open/Close,
// which bracket family). It never fails — every combination has a defined
// outcome, which is how the parser guarantees it never rejects input.
func validate(state pdaState, lex Lexeme) outcome {
	switch state {
	case stateFile:
		switch {
		case lex.Kind == KindOpen:
			return takeState(stateFor(lex.Paired))
		case lex.Kind == KindClose && lex.Paired == PairedFile:
			return outcomeDropOnly
		case lex.Kind == KindComma || lex.Kind == KindColon:
			// Bare punctuation noise at the top level, with no value ever
			// having appeared, carries nothing worth promoting: drop it
			// rather than manufacture an empty object around it (keeps
			// process(x) empty when x has no value-bearing lexeme).
			return outcomeDropOnly
		case isValueBearing(lex.Kind):
			// The top level is an implicit sequence of values, not an
			// implicit object: push Value so a second value in a row goes
			// through the Value row's own comma-insertion rule instead of
			// being wrapped as an object's first key.
			return pushState(stateValue)
		default:
			// Close(Brace), Close(Bracket): a mismatched closer with
			// nothing open yet still promotes the bare top level into an
			// implicit object.
			return insertLexeme(openBrace())
		}

	case stateArray:
		switch {
		case lex.Kind == KindComma || lex.Kind == KindColon:
			return outcomeDropOnly
		case isValueBearing(lex.Kind):
			return pushState(stateValue)
		case lex.Kind == KindOpen:
			return pushState(stateFor(lex.Paired))
		case lex.Kind == KindClose && lex.Paired == PairedBrace:
			return insertLexeme(closeBracket())
		case lex.Kind == KindClose && lex.Paired == PairedBracket:
			return takeState(stateValue)
		default: // Close(File)
			return insertLexeme(closeBracket())
		}

	case stateObject:
		switch {
		case lex.Kind == KindComma || lex.Kind == KindColon:
			return outcomeDropOnly
		case isValueBearing(lex.Kind):
			return pushState(stateKey)
		case lex.Kind == KindOpen:
			return pushState(stateFor(lex.Paired))
		case lex.Kind == KindClose && lex.Paired == PairedBrace:
			return takeState(stateValue)
		case lex.Kind == KindClose && lex.Paired == PairedBracket:
			return insertLexeme(closeBrace())
		default: // Close(File)
			return insertLexeme(closeBrace())
		}

	case stateValue:
		switch {
		case lex.Kind == KindComma:
			return takeState(stateComma)
		case lex.Kind == KindColon:
			return outcomeDropOnly
		case lex.Kind == KindClose:
			return outcomePopOnly
		default: // String/Else, Open(B): a value followed by another value
			return insertLexeme(comma())
		}

	case stateKey:
		switch {
		case lex.Kind == KindClose && lex.Paired == PairedBracket:
			return outcomeDropOnly
		case lex.Kind == KindComma:
			return outcomeDropOnly
		case lex.Kind == KindColon:
			return takeState(stateColon)
		default: // Open(B), Close(Brace/File), String/Else
			return insertLexeme(colon())
		}

	case stateColon:
		switch {
		case isValueBearing(lex.Kind):
			return takeState(stateValue)
		case lex.Kind == KindComma || lex.Kind == KindColon:
			return outcomeDropOnly
		case lex.Kind == KindOpen:
			return takeState(stateFor(lex.Paired))
		case lex.Kind == KindClose && lex.Paired == PairedBracket:
			return insertLexeme(openBracket())
		default: // Close(Brace), Close(File)
			return insertLexeme(openBrace())
		}

	case stateComma:
		switch {
		case isValueBearing(lex.Kind) || lex.Kind == KindOpen:
			return outcomePopOnly
		case lex.Kind == KindComma || lex.Kind == KindColon:
			return outcomeDropOnly
		default: // Close(Brace), Close(Bracket), Close(File)
			return outcomeDropBeforeOnly
		}
	}

	panic("unknown pdaState")
}
