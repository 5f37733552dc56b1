package reader

import "testing"

func TestTokenize(t *testing.T) {
	toks := Tokenize([]byte("(cons 'a nil) ; trailing comment\n"), "t.pie")
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []TokenType{LPAREN, SYMBOL, QUOTE, SYMBOL, SYMBOL, RPAREN, EOF}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(types), types, len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, types[i], want[i])
		}
	}
}

func TestNormalizeStripsBOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("zero")...)
	got := Normalize(src)
	if string(got) != "zero" {
		t.Errorf("Normalize did not strip BOM: got %q", got)
	}
}
