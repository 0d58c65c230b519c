package rekson

import "testing"

func normalizeString(s string) string {
	return string(Normalize(Lexeme{Kind: KindString, Bytes: []byte(s)}))
}

func normalizeElse(s string) string {
	return string(Normalize(Lexeme{Kind: KindElse, Bytes: []byte(s)}))
}

func TestNormalizeStringBasic(t *testing.T) {
	if got := normalizeString(`"hello"`); got != `"hello"` {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeStringQuoteStyles(t *testing.T) {
	if got := normalizeString("`key`"); got != `"key"` {
		t.Errorf("got %q", got)
	}
	if got := normalizeString("'value'"); got != `"value"` {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeStringEmbeddedDoubleQuoteFromOtherDelimiter(t *testing.T) {
	// a backtick-quoted string may contain raw double quotes, which must
	// be escaped since the output always delimits with double quotes.
	got := normalizeString("`he said \"hi\"`")
	want := `"he said \"hi\""`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeStringAlreadyEscapedQuotePreserved(t *testing.T) {
	got := normalizeString(`"a\"b"`)
	want := `"a\"b"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeStringRawNewlineEscaped(t *testing.T) {
	got := normalizeString("\"some\nmultiline\\nescaped\"")
	want := `"some\nmultiline\nescaped"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeStringAlreadyEscapedSequencesSurvive(t *testing.T) {
	if got := normalizeString(`"a\tb\\cA"`); got != `"a\tb\\cA"` {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeElseNullFamily(t *testing.T) {
	for _, s := range []string{"nil", "nul", "None", "NULL", "none"} {
		if got := normalizeElse(s); got != "null" {
			t.Errorf("normalizeElse(%q) = %q, want null", s, got)
		}
	}
}

func TestNormalizeElseBool(t *testing.T) {
	if got := normalizeElse("TruE"); got != "true" {
		t.Errorf("got %q", got)
	}
	if got := normalizeElse("False"); got != "false" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeElseNumeric(t *testing.T) {
	for _, s := range []string{"3", "-3", "+3", "3.14", ".5"} {
		if got := normalizeElse(s); got != s {
			t.Errorf("normalizeElse(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestNormalizeElseNumericAfterSignAndDot(t *testing.T) {
	// every leading sign/dot byte is skipped before the digit check, so a
	// sign followed by a dot (e.g. "-.5") is still a numeric literal.
	if got := normalizeElse("-.5"); got != "-.5" {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestNormalizeElseBareword(t *testing.T) {
	if got := normalizeElse("unknown"); got != `"unknown"` {
		t.Errorf("got %q", got)
	}
	if got := normalizeElse("a"); got != `"a"` {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeStructural(t *testing.T) {
	cases := []struct {
		lex  Lexeme
		want string
	}{
		{Lexeme{Kind: KindOpen, Paired: PairedBracket}, "["},
		{Lexeme{Kind: KindClose, Paired: PairedBracket}, "]"},
		{Lexeme{Kind: KindOpen, Paired: PairedBrace}, "{"},
		{Lexeme{Kind: KindClose, Paired: PairedBrace}, "}"},
		{Lexeme{Kind: KindComma}, ","},
		{Lexeme{Kind: KindColon}, ":"},
		{Lexeme{Kind: KindClose, Paired: PairedFile}, ""},
	}

	for _, c := range cases {
		if got := string(Normalize(c.lex)); got != c.want {
			t.Errorf("Normalize(%+v) = %q, want %q", c.lex, got, c.want)
		}
	}
}
