package lexer

import "testing"

func TestNextTokenTokenizesMixedStatement(t *testing.T) {
	input := "select * from users where id >= 5 and name != 'bob',(x)"
	want := []Kind{
		WORD, ASTERISK, WORD, WORD, WORD, WORD, GE, WORD, WORD, WORD, NEQ, STRING, COMMA, LPAREN, WORD, RPAREN, END,
	}

	l := New(input)
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: kind = %v, want %v (value %q)", i, tok.Kind, k, tok.Value)
		}
	}
}

func TestNextTokenRetainsQuotesOnString(t *testing.T) {
	l := New("'alice'")
	tok := l.NextToken()
	if tok.Kind != STRING {
		t.Fatalf("kind = %v, want STRING", tok.Kind)
	}
	if tok.Value != "'alice'" {
		t.Errorf("Value = %q, want %q", tok.Value, "'alice'")
	}
}

func TestNextTokenOperators(t *testing.T) {
	cases := map[string]Kind{
		"=": EQ, "!=": NEQ, "<": LT, "<=": LE, ">": GT, ">=": GE,
	}
	for input, want := range cases {
		l := New(input)
		if got := l.NextToken().Kind; got != want {
			t.Errorf("NextToken(%q) = %v, want %v", input, got, want)
		}
	}
}
