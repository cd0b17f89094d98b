package frontend

import (
	"errors"
	"testing"

	"github.com/GriffinCanCode/minic/pkg/diag"
)

func lexKinds(t *testing.T, src string) ([]TokenKind, []string) {
	t.Helper()
	l := NewLexer([]byte(src))
	var kinds []TokenKind
	var lexemes []string
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		kinds = append(kinds, tok.Kind)
		lexemes = append(lexemes, string(tok.Lexeme))
		if tok.Kind == EOF {
			return kinds, lexemes
		}
	}
}

func TestLexMinimalProgram(t *testing.T) {
	tests := []struct {
		src      string
		name     string
		constant string
	}{
		{"int main(void){return 2;}", "main", "2"},
		{"int f(void) { return 0; }", "f", "0"},
		{"int answer_42(void)\n{\n\treturn 2147483647;\r\n}\n", "answer_42", "2147483647"},
	}

	want := []TokenKind{INT, IDENT, LPAREN, VOID, RPAREN, LBRACE, RETURN, CONSTANT, SEMICOLON, RBRACE, EOF}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kinds, lexemes := lexKinds(t, tt.src)
			if len(kinds) != len(want) {
				t.Fatalf("got %d tokens %v, want %d", len(kinds), kinds, len(want))
			}
			for i := range want {
				if kinds[i] != want[i] {
					t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
				}
			}
			if lexemes[1] != tt.name {
				t.Errorf("identifier = %q, want %q", lexemes[1], tt.name)
			}
			if lexemes[7] != tt.constant {
				t.Errorf("constant = %q, want %q", lexemes[7], tt.constant)
			}
		})
	}
}

func TestLexComments(t *testing.T) {
	kinds, lexemes := lexKinds(t, "// line\nint /* block\n comment */ x")

	want := []TokenKind{COMMENT, INT, COMMENT, IDENT, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
	if lexemes[0] != "// line" {
		t.Errorf("line comment lexeme = %q, must stop before newline", lexemes[0])
	}
	if lexemes[2] != "/* block\n comment */" {
		t.Errorf("block comment lexeme = %q", lexemes[2])
	}
}

func TestLexKeywordsNeedExactMatch(t *testing.T) {
	kinds, _ := lexKinds(t, "int integer void voids return returned in")
	want := []TokenKind{INT, IDENT, VOID, IDENT, RETURN, IDENT, IDENT, EOF}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexPositions(t *testing.T) {
	l := NewLexer([]byte("int\n  main"))

	tok, _ := l.Next()
	if tok.Line != 1 || tok.Col != 1 || tok.Offset != 0 {
		t.Errorf("int at %d:%d offset %d, want 1:1 offset 0", tok.Line, tok.Col, tok.Offset)
	}

	tok, _ = l.Next()
	if tok.Line != 2 || tok.Col != 3 || tok.Offset != 6 {
		t.Errorf("main at %d:%d offset %d, want 2:3 offset 6", tok.Line, tok.Col, tok.Offset)
	}

	tok, _ = l.Next()
	if tok.Kind != EOF || tok.Line != 2 || tok.Col != 7 {
		t.Errorf("eof = %v, want EOF at 2:7", tok)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		pos  diag.Pos
	}{
		{"unknown", "int main(void) { return @; }", ErrUnknownToken, diag.Pos{Line: 1, Col: 25}},
		{"unterminated comment", "int /* never closed", ErrUnterminatedComment, diag.Pos{Line: 1, Col: 5}},
		{"star without slash", "/* almost *", ErrUnterminatedComment, diag.Pos{Line: 1, Col: 1}},
		{"invalid constant", "return 12abc;", ErrInvalidConstant, diag.Pos{Line: 1, Col: 8}},
		{"leading underscore", "_x", ErrUnknownToken, diag.Pos{Line: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LexAll([]byte(tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if code := diag.CodeOf(err); code != diag.InvalidToken {
				t.Errorf("code = %v, want %v", code, diag.InvalidToken)
			}
			var de *diag.Error
			if errors.As(err, &de) && de.Pos != tt.pos {
				t.Errorf("pos = %v, want %v", de.Pos, tt.pos)
			}
		})
	}
}

func TestUnknownTokenAdvancesCursor(t *testing.T) {
	l := NewLexer([]byte("@;"))

	if _, err := l.Next(); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected unknown token, got %v", err)
	}
	tok, err := l.Next()
	if err != nil || tok.Kind != SEMICOLON {
		t.Errorf("after error got %v, %v; want ';'", tok, err)
	}
}

func TestLexIsPure(t *testing.T) {
	l := NewLexer([]byte("  /* c */ return 7;"))
	_, _ = l.Next() // comment

	snapshot := *l
	a, errA := l.Next()
	b, errB := snapshot.Next()
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a.Kind != b.Kind || string(a.Lexeme) != string(b.Lexeme) || a.Offset != b.Offset || a.Col != b.Col {
		t.Errorf("copies diverged: %v vs %v", a, b)
	}

	peeked, _ := l.Peek()
	next, _ := l.Next()
	if peeked.Kind != CONSTANT || next.Kind != CONSTANT || peeked.Offset != next.Offset {
		t.Errorf("Peek() = %v, Next() = %v", peeked, next)
	}
}

func TestLexAllCountsTokens(t *testing.T) {
	n, err := LexAll([]byte("int main(void) { // answer\n return 2; }"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 11 {
		t.Errorf("LexAll() = %d, want 11", n)
	}

	n, err = LexAll(nil)
	if err != nil || n != 0 {
		t.Errorf("LexAll(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := NewLexer([]byte(" "))
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil || tok.Kind != EOF {
			t.Fatalf("call %d: got %v, %v", i, tok, err)
		}
	}
}
