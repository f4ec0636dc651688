package lang

// Parser builds statements from a token stream with a single token of
// lookahead.
type Parser struct {
	lex *Lexer
	src string
	cur Token
}

// NewParser returns a parser over src primed with its first token.
func NewParser(src string) *Parser {
	p := &Parser{lex: NewLexer(src), src: src}
	p.cur = p.lex.Next()

	return p
}

func (p *Parser) advance() { p.cur = p.lex.Next() }

func (p *Parser) errorf(msg string) *ParseError {
	return NewParseError(msg, p.src, p.cur)
}

// expect consumes the current token when it has the given kind.
func (p *Parser) expect(kind Kind, context string) error {
	if p.cur.Kind != kind {
		return p.errorf("expected " + kind.String() + " " + context + ", got " + p.cur.String())
	}
	p.advance()

	return nil
}

// ident consumes and returns an identifier token.
func (p *Parser) ident(context string) (string, error) {
	if p.cur.Kind != KindIdent {
		return "", p.errorf("expected identifier " + context + ", got " + p.cur.String())
	}

	name := p.cur.Text
	p.advance()

	return name, nil
}

// stringLit consumes and returns a string literal token.
func (p *Parser) stringLit(context string) (string, error) {
	if p.cur.Kind != KindString {
		return "", p.errorf("expected string " + context + ", got " + p.cur.String())
	}

	text := p.cur.Text
	p.advance()

	return text, nil
}

// stringOrIdent consumes either a string literal or an identifier,
// returning its spelling. Dictionary keys and transform sources accept
// both forms.
func (p *Parser) stringOrIdent(context string) (string, error) {
	switch p.cur.Kind {
	case KindString, KindIdent:
		text := p.cur.Text
		p.advance()

		return text, nil
	default:
		return "", p.errorf("expected string or identifier " + context + ", got " + p.cur.String())
	}
}

// Parse consumes the whole input and returns its statements.
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt

	for p.cur.Kind != KindEOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// parseBody collects statements until one of the stop kinds or EOF.
// The stop token is left for the caller to consume. Every compound
// construct shares the full statement grammar.
func (p *Parser) parseBody(stop ...Kind) ([]Stmt, error) {
	var body []Stmt

	for {
		if p.cur.Kind == KindEOF {
			return body, nil
		}

		for _, kind := range stop {
			if p.cur.Kind == kind {
				return body, nil
			}
		}

		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		body = append(body, stmt)
	}
}

// parseExpr parses the loosest precedence level. The precedence order,
// loosest to tightest, is OR, AND, additive, comparison,
// multiplicative, power, primary. Comparison binding tighter than
// additive (and looser than multiplicative) is a defining quirk of the
// language and must not be "fixed".
func (p *Parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == KindOr {
		p.advance()

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: KindOr, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == KindAnd {
		p.advance()

		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: KindAnd, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseAdditive() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == KindPlus || p.cur.Kind == KindMinus {
		op := p.cur.Kind
		p.advance()

		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur.Kind {
		case KindEqual, KindNotEqual, KindLess, KindGreater, KindLessEqual, KindGreaterEqual:
		default:
			return left, nil
		}

		op := p.cur.Kind
		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == KindStar || p.cur.Kind == KindSlash || p.cur.Kind == KindPercent {
		op := p.cur.Kind
		p.advance()

		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parsePower() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.cur.Kind == KindPower {
		p.advance()

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: KindPower, Left: left, Right: right}
	}

	return left, nil
}

var zero = &NumberExpr{}

func (p *Parser) parsePrimary() (Expr, error) {
	switch p.cur.Kind {
	case KindNot:
		p.advance()

		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		return &BinaryExpr{Op: KindNot, Left: zero, Right: operand}, nil

	case KindNumber:
		num := p.cur.Num
		p.advance()

		return &NumberExpr{Value: num}, nil

	case KindMin, KindMax, KindFloor, KindCeil, KindRound, KindRandom, KindLength, KindSize:
		return p.parseBuiltin()

	case KindRecall:
		p.advance()

		name, err := p.ident("after RECALL")
		if err != nil {
			return nil, err
		}

		return &RecallExpr{Name: name}, nil

	case KindMinus:
		p.advance()

		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		return &BinaryExpr{Op: KindMinus, Left: zero, Right: operand}, nil

	case KindLParen:
		p.advance()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if err := p.expect(KindRParen, "to close expression"); err != nil {
			return nil, err
		}

		return inner, nil
	}

	return nil, p.errorf("unexpected token in expression: " + p.cur.String())
}

// parseBuiltin parses the parenthesized builtin forms. Each becomes a
// BinaryExpr so the evaluator has a single expression shape; unused
// operand slots hold zero literals.
func (p *Parser) parseBuiltin() (Expr, error) {
	op := p.cur.Kind
	p.advance()

	if err := p.expect(KindLParen, "after "+op.String()); err != nil {
		return nil, err
	}

	switch op {
	case KindMin, KindMax:
		first, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		second, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if err := p.expect(KindRParen, "after arguments"); err != nil {
			return nil, err
		}

		return &BinaryExpr{Op: op, Left: first, Right: second}, nil

	case KindFloor, KindCeil, KindRound:
		arg, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if err := p.expect(KindRParen, "after argument"); err != nil {
			return nil, err
		}

		return &BinaryExpr{Op: op, Left: zero, Right: arg}, nil

	case KindRandom:
		if err := p.expect(KindRParen, "after RANDOM("); err != nil {
			return nil, err
		}

		return &BinaryExpr{Op: op, Left: zero, Right: zero}, nil

	default: // KindLength, KindSize
		switch p.cur.Kind {
		case KindString:
			// A literal's length is a constant; fold it here.
			length := float64(len(p.cur.Text))
			p.advance()

			if err := p.expect(KindRParen, "after argument"); err != nil {
				return nil, err
			}

			return &NumberExpr{Value: length}, nil

		case KindIdent:
			name := p.cur.Text
			p.advance()

			if err := p.expect(KindRParen, "after argument"); err != nil {
				return nil, err
			}

			// The name resolves against intents or arrays at run
			// time, carried in the unevaluated left slot.
			return &BinaryExpr{Op: op, Left: &RecallExpr{Name: name}, Right: zero}, nil
		}

		return nil, p.errorf(op.String() + " expects a string literal or identifier")
	}
}
