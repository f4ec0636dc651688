package lang

import "strconv"

// Lexer is a pull tokenizer over script source. Each call to [Lexer.Next]
// produces the next token, ending with an EOF token that repeats forever.
//
// The lexer is deliberately tolerant: it never fails. Unknown characters
// are skipped, malformed numeric literals collapse to zero, and an
// unterminated string runs to the end of input.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}

	return l.src[l.pos], true
}

func (l *Lexer) advance() {
	if l.pos < len(l.src) {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

func (l *Lexer) skipSpaceAndComments() {
	for {
		ch, ok := l.peek()
		if !ok {
			return
		}

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '#':
			for {
				ch, ok := l.peek()
				if !ok || ch == '\n' {
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

// Next returns the next token in the input.
func (l *Lexer) Next() Token {
	l.skipSpaceAndComments()

	line, col := l.line, l.col

	ch, ok := l.peek()
	if !ok {
		return Token{Kind: KindEOF, Line: line, Col: col}
	}

	switch {
	case isDigit(ch):
		return l.lexNumber(line, col)
	case isIdentStart(ch):
		return l.lexWord(line, col)
	case ch == '"':
		return l.lexString(line, col)
	}

	l.advance()

	two := func(next byte, with, without Kind) Token {
		if ch, ok := l.peek(); ok && ch == next {
			l.advance()
			return Token{Kind: with, Line: line, Col: col}
		}

		return Token{Kind: without, Line: line, Col: col}
	}

	switch ch {
	case '+':
		return Token{Kind: KindPlus, Line: line, Col: col}
	case '-':
		return Token{Kind: KindMinus, Line: line, Col: col}
	case '*':
		return two('*', KindPower, KindStar)
	case '/':
		return Token{Kind: KindSlash, Line: line, Col: col}
	case '%':
		return Token{Kind: KindPercent, Line: line, Col: col}
	case '(':
		return Token{Kind: KindLParen, Line: line, Col: col}
	case ')':
		return Token{Kind: KindRParen, Line: line, Col: col}
	case '=':
		// Both "==" and a bare "=" mean equality.
		return two('=', KindEqual, KindEqual)
	case '<':
		return two('=', KindLessEqual, KindLess)
	case '>':
		return two('=', KindGreaterEqual, KindGreater)
	case '!':
		if ch, ok := l.peek(); ok && ch == '=' {
			l.advance()
			return Token{Kind: KindNotEqual, Line: line, Col: col}
		}
		// A lone "!" is not part of the language; skip it.
		return l.Next()
	}

	// Anything unrecognized is skipped.
	return l.Next()
}

func (l *Lexer) lexNumber(line, col int) Token {
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || (!isDigit(ch) && ch != '.') {
			break
		}
		l.advance()
	}

	num, err := strconv.ParseFloat(l.src[start:l.pos], 64)
	if err != nil {
		num = 0
	}

	return Token{Kind: KindNumber, Num: num, Line: line, Col: col}
}

func (l *Lexer) lexWord(line, col int) Token {
	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || !isIdentPart(ch) {
			break
		}
		l.advance()
	}

	word := l.src[start:l.pos]
	if kind, ok := keywords[word]; ok {
		return Token{Kind: kind, Line: line, Col: col}
	}

	return Token{Kind: KindIdent, Text: word, Line: line, Col: col}
}

func (l *Lexer) lexString(line, col int) Token {
	l.advance() // opening quote

	start := l.pos
	for {
		ch, ok := l.peek()
		if !ok || ch == '"' {
			break
		}
		l.advance()
	}

	text := l.src[start:l.pos]
	l.advance() // closing quote, no-op at EOF

	return Token{Kind: KindString, Text: text, Line: line, Col: col}
}
