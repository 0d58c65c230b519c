package rekson

import "github.com/alecthomas/repr"

// Parser is a repairing push-down validator: it consumes one lexeme at a
// time and emits zero or more canonical Tokens, rewriting
// the lexeme stream as needed (dropping stray punctuation, synthesizing
// missing brackets/separators, retracting a trailing separator) so the
// output always satisfies JSON grammar.
//
// Emission is buffered by one token (the "delay slot") so that a later
// repair can still retract the most recently produced token — see
// outcomeDropBefore in state.go.
type Parser struct {
	whitespace []byte
	states     []pdaState
	delay      Token
	hasDelay   bool
}

// NewParser returns a ready-to-use Parser, its stack implicitly at File.
func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) top() pdaState {
	if len(p.states) == 0 {
		return stateFile
	}

	return p.states[len(p.states)-1]
}

func (p *Parser) pushState(s pdaState) {
	p.states = append(p.states, s)
}

func (p *Parser) popState() {
	if len(p.states) == 0 {
		return
	}

	p.states = p.states[:len(p.states)-1]
}

func (p *Parser) takeState(s pdaState) {
	p.popState()
	p.pushState(s)
}

// Parse feeds one lexeme through the repair loop. WhiteSpace lexemes are
// absorbed into the pending whitespace buffer and never themselves
// produce a Token; every other lexeme is repeatedly checked against the
// repair table until it is consumed (pushed/taken/popped against),
// rewritten (inserted ahead of), or dropped.
func (p *Parser) Parse(lex Lexeme) []Token {
	if lex.Kind == KindWhiteSpace {
		p.whitespace = append(p.whitespace, lex.Bytes...)
		return nil
	}

	token := Token{Lexeme: lex, WhitespaceBefore: p.whitespace}
	p.whitespace = nil

	work := []Token{token}
	var result []Token

	for len(work) > 0 {
		current := work[len(work)-1]
		work = work[:len(work)-1]

		out := validate(p.top(), current.Lexeme)

		switch out.kind {
		case outcomePush:
			p.pushState(out.state)

		case outcomeTake:
			p.takeState(out.state)

		case outcomePop:
			p.popState()
			work = append(work, current)
			continue

		case outcomeInsert:
			work = append(work, current)
			work = append(work, Token{Lexeme: out.insert})
			continue

		case outcomeDrop:
			p.whitespace = append(p.whitespace, current.WhitespaceBefore...)
			continue

		case outcomeDropBefore:
			p.popState()
			if p.hasDelay {
				merged := append(append([]byte{}, p.delay.WhitespaceBefore...), current.WhitespaceBefore...)
				current.WhitespaceBefore = merged
				p.hasDelay = false
			}
			work = append(work, current)
			continue
		}

		if p.hasDelay {
			result = append(result, p.delay)
		}
		p.delay = current
		p.hasDelay = true
	}

	return result
}

// Flush drains the delay slot and any whitespace left dangling after the
// last real token. The driver must call it once after feeding the parser
// its terminator lexemes: the two terminator calls only drive the stack
// back to File and are themselves dropped, so neither the held-back last
// token nor trailing whitespace after it would otherwise reach the output.
func (p *Parser) Flush() []Token {
	var out []Token

	if p.hasDelay {
		out = append(out, p.delay)
		p.delay = Token{}
		p.hasDelay = false
	}

	if len(p.whitespace) > 0 {
		out = append(out, Token{Lexeme: Lexeme{Kind: KindWhiteSpace, Bytes: p.whitespace}})
		p.whitespace = nil
	}

	return out
}

// DebugState renders the parser's current stack and delay slot for
// troubleshooting a repair decision; it is never called on the hot path.
func (p *Parser) DebugState() string {
	return repr.String(struct {
		States   []pdaState
		HasDelay bool
		Delay    Token
	}{p.states, p.hasDelay, p.delay}, repr.Indent("  "))
}
