package rekson

// Token is the parser's unit of work: a lexeme paired with the verbatim
// whitespace that preceded it in the input. WhitespaceBefore must be
// reproduced on output exactly, even if the token carrying it is later
// dropped — in that case the bytes are folded back into the parser's
// pending whitespace buffer (Drop) or prepended to the incoming token's
// WhitespaceBefore (DropBefore) rather than discarded.
type Token struct {
	Lexeme           Lexeme
	WhitespaceBefore []byte
}

// Bytes renders a token's canonical output form: its whitespace prefix
// followed by the normalized lexeme.
func (t Token) Bytes() []byte {
	out := make([]byte, 0, len(t.WhitespaceBefore)+4)
	out = append(out, t.WhitespaceBefore...)
	out = append(out, Normalize(t.Lexeme)...)

	return out
}
