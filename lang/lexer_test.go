package lang

import "testing"

func lexAll(src string) []Token {
	lex := NewLexer(src)

	var tokens []Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)

		if tok.Kind == KindEOF {
			return tokens
		}
	}
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}

	return out
}

func TestLexer_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "keywords and identifier",
			input: `STORE count 42`,
			want:  []Kind{KindStore, KindIdent, KindNumber, KindEOF},
		},
		{
			name:  "string literal",
			input: `INTENT greeting "hello"`,
			want:  []Kind{KindIntent, KindIdent, KindString, KindEOF},
		},
		{
			name:  "operators",
			input: `+ - * / % ** ( )`,
			want: []Kind{
				KindPlus, KindMinus, KindStar, KindSlash, KindPercent,
				KindPower, KindLParen, KindRParen, KindEOF,
			},
		},
		{
			name:  "comparisons",
			input: `== != < > <= >=`,
			want: []Kind{
				KindEqual, KindNotEqual, KindLess, KindGreater,
				KindLessEqual, KindGreaterEqual, KindEOF,
			},
		},
		{
			name:  "comment runs to end of line",
			input: "STORE x 1 # trailing words\nSTORE y 2",
			want: []Kind{
				KindStore, KindIdent, KindNumber,
				KindStore, KindIdent, KindNumber, KindEOF,
			},
		},
		{
			name:  "lowercase words are identifiers",
			input: `store print`,
			want:  []Kind{KindIdent, KindIdent, KindEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(lexAll(tt.input))

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.want), len(got), got)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLexer_Tolerance(t *testing.T) {
	t.Run("single equals reads as comparison", func(t *testing.T) {
		tokens := lexAll(`x = 1`)
		if tokens[1].Kind != KindEqual {
			t.Errorf("expected ==, got %v", tokens[1].Kind)
		}
	})

	t.Run("lone bang is skipped", func(t *testing.T) {
		tokens := lexAll(`x ! y`)
		want := []Kind{KindIdent, KindIdent, KindEOF}

		for i, kind := range kinds(tokens) {
			if kind != want[i] {
				t.Errorf("token %d: expected %v, got %v", i, want[i], kind)
			}
		}
	})

	t.Run("unknown characters are skipped", func(t *testing.T) {
		tokens := lexAll(`x @ $ y`)
		want := []Kind{KindIdent, KindIdent, KindEOF}

		got := kinds(tokens)
		if len(got) != len(want) {
			t.Fatalf("expected %d tokens, got %v", len(want), got)
		}
	})

	t.Run("malformed number becomes zero", func(t *testing.T) {
		tokens := lexAll(`1.2.3`)
		if tokens[0].Kind != KindNumber || tokens[0].Num != 0 {
			t.Errorf("expected number 0, got %v %v", tokens[0].Kind, tokens[0].Num)
		}
	})

	t.Run("unterminated string keeps its text", func(t *testing.T) {
		tokens := lexAll(`"never closed`)
		if tokens[0].Kind != KindString || tokens[0].Text != "never closed" {
			t.Errorf("expected string token, got %v %q", tokens[0].Kind, tokens[0].Text)
		}
	})

	t.Run("no escape sequences in strings", func(t *testing.T) {
		tokens := lexAll(`"a\nb"`)
		if tokens[0].Text != `a\nb` {
			t.Errorf("expected raw backslash, got %q", tokens[0].Text)
		}
	})
}

func TestLexer_Positions(t *testing.T) {
	tokens := lexAll("STORE x 1\nSTORE y 2")

	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Errorf("first token at %d:%d, expected 1:1", tokens[0].Line, tokens[0].Col)
	}

	if tokens[3].Line != 2 {
		t.Errorf("second statement starts at line %d, expected 2", tokens[3].Line)
	}
}

func TestLexer_NumberValues(t *testing.T) {
	tokens := lexAll(`3.14 42 0.5`)

	want := []float64{3.14, 42, 0.5}
	for i, v := range want {
		if tokens[i].Num != v {
			t.Errorf("number %d: expected %v, got %v", i, v, tokens[i].Num)
		}
	}
}
