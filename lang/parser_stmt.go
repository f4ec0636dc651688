package lang

// parseStmt dispatches on the statement keyword. Unlike expressions,
// statements are purely keyword-initial, so one token decides the
// production.
func (p *Parser) parseStmt() (Stmt, error) {
	switch p.cur.Kind {
	case KindIntent:
		return p.parseIntent()
	case KindManifest:
		return p.parseManifest()
	case KindCalculate:
		return p.parseCalculate()
	case KindStore:
		return p.parseStore()
	case KindCombine:
		return p.parseCombine()
	case KindPrint:
		return p.parsePrint()
	case KindRepeat:
		return p.parseRepeat()
	case KindIf:
		return p.parseIf()
	case KindWhile:
		return p.parseWhile()
	case KindIncrement, KindDecrement:
		return p.parseIncDec()
	case KindFor:
		return p.parseFor()
	case KindAssert:
		return p.parseAssert()
	case KindTry:
		return p.parseTry()
	case KindUppercase, KindLowercase, KindTrim:
		return p.parseStringTransform()
	case KindSwitch:
		return p.parseSwitch()
	case KindArray:
		return p.parseArrayCreate()
	case KindPush:
		return p.parseArrayPush()
	case KindPop:
		return p.parseArrayPop()
	case KindSize:
		return p.parseArraySize()
	case KindGet:
		return p.parseArrayGet()
	case KindSet:
		return p.parseArraySet()
	case KindImport:
		return p.parseImport()
	case KindExport:
		return p.parseExport()
	case KindBreak:
		p.advance()
		return &BreakStmt{}, nil
	case KindContinue:
		p.advance()
		return &ContinueStmt{}, nil
	case KindFunction:
		return p.parseFunction()
	case KindCall:
		return p.parseCall()
	case KindReturn:
		return p.parseReturn()
	case KindSort:
		return p.parseSort()
	case KindFilter:
		return p.parseFilter()
	case KindReverse:
		return p.parseReverse()
	case KindMap:
		return p.parseMap()
	case KindSum:
		return p.parseSum()
	case KindJoin:
		return p.parseJoin()
	case KindDict:
		return p.parseDictCreate()
	case KindPut:
		return p.parseDictPut()
	case KindFetch:
		return p.parseDictFetch()
	case KindKeys:
		return p.parseDictKeys()
	case KindValues:
		return p.parseDictValues()
	case KindDelete:
		return p.parseDictDelete()
	case KindReadFile:
		return p.parseReadFile()
	case KindWriteFile:
		return p.parseWriteFile(false)
	case KindAppendFile:
		return p.parseWriteFile(true)
	case KindExists:
		return p.parseExists()
	case KindSleep:
		return p.parseSleep()
	case KindInput:
		return p.parseInput()
	case KindType:
		return p.parseType()
	case KindParse:
		return p.parseParse()
	case KindToString:
		return p.parseToString()
	case KindRange:
		return p.parseRange()
	case KindFold, KindReduce:
		return p.parseFold()
	case KindFind, KindCount, KindAll, KindAny:
		return p.parsePredicate()
	case KindMinOf, KindMaxOf, KindAverage, KindMedian, KindMode, KindStddev, KindVariance:
		return p.parseStat()
	case KindUnique:
		return p.parseUnique()
	case KindConcat:
		return p.parseConcat()
	case KindTake:
		return p.parseTakeDrop(false)
	case KindDrop:
		return p.parseTakeDrop(true)
	case KindSlice:
		return p.parseSlice()
	case KindZip:
		return p.parseZip()
	case KindUnzip:
		return p.parseUnzip()
	case KindFlatten:
		return p.parseFlatten()
	case KindIncludes:
		return p.parseIncludes()
	case KindIndexOf:
		return p.parseIndexOf()
	case KindGroupBy:
		return p.parseGroupBy()
	case KindPartition:
		return p.parsePartition()
	case KindDiff, KindIntersection, KindUnion:
		return p.parseSetOp()
	case KindMerge:
		return p.parseMerge()
	case KindClear:
		return p.parseClear()
	case KindSwap:
		return p.parseSwap()
	case KindShuffle:
		return p.parseShuffle()
	case KindSample:
		return p.parseSample()
	case KindClone:
		return p.parseClone()
	case KindReplace:
		return p.parseReplace()
	case KindSplit:
		return p.parseSplit()
	case KindSubstring:
		return p.parseSubstring()
	case KindContains:
		return p.parseContains()
	case KindStartsWith, KindEndsWith:
		return p.parseAffix()
	case KindPad:
		return p.parsePad()
	case KindLambda, KindPipe, KindEval, KindTypeOf:
		return nil, p.errorf("reserved keyword " + p.cur.Kind.String() + " has no statement form")
	}

	return nil, p.errorf("unexpected token: " + p.cur.String())
}

func (p *Parser) parseIntent() (Stmt, error) {
	p.advance()

	name, err := p.ident("after INTENT")
	if err != nil {
		return nil, err
	}

	message, err := p.stringLit("after intent name")
	if err != nil {
		return nil, err
	}

	return &IntentStmt{Name: name, Message: message}, nil
}

func (p *Parser) parseManifest() (Stmt, error) {
	p.advance()

	name, err := p.ident("after MANIFEST")
	if err != nil {
		return nil, err
	}

	stmt := &ManifestStmt{Name: name}

	if p.cur.Kind == KindWith {
		p.advance()

		msg, err := p.stringLit("after WITH")
		if err != nil {
			return nil, err
		}

		stmt.With, stmt.HasWith = msg, true
	}

	return stmt, nil
}

func (p *Parser) parseCalculate() (Stmt, error) {
	p.advance()

	name, err := p.ident("after CALCULATE")
	if err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &CalculateStmt{Name: name, Expr: expr}, nil
}

func (p *Parser) parseStore() (Stmt, error) {
	p.advance()

	name, err := p.ident("after STORE")
	if err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &StoreStmt{Name: name, Expr: expr}, nil
}

// parseParts collects the literal/placeholder list shared by COMBINE
// and PRINT. Bare identifiers become ${name} placeholders resolved at
// run time.
func (p *Parser) parseParts(context string) ([]string, error) {
	var parts []string

	for {
		switch p.cur.Kind {
		case KindString:
			parts = append(parts, p.cur.Text)
			p.advance()
		case KindIdent:
			parts = append(parts, "${"+p.cur.Text+"}")
			p.advance()
		default:
			if len(parts) == 0 {
				return nil, p.errorf("expected strings or identifiers " + context)
			}

			return parts, nil
		}
	}
}

func (p *Parser) parseCombine() (Stmt, error) {
	p.advance()

	name, err := p.ident("after COMBINE")
	if err != nil {
		return nil, err
	}

	parts, err := p.parseParts("after COMBINE name")
	if err != nil {
		return nil, err
	}

	return &CombineStmt{Name: name, Parts: parts}, nil
}

func (p *Parser) parsePrint() (Stmt, error) {
	p.advance()

	parts, err := p.parseParts("after PRINT")
	if err != nil {
		return nil, err
	}

	return &PrintStmt{Parts: parts}, nil
}

func (p *Parser) parseRepeat() (Stmt, error) {
	p.advance()

	count, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindTimes, "after repeat count"); err != nil {
		return nil, err
	}

	if err := p.expect(KindDo, "after TIMES"); err != nil {
		return nil, err
	}

	body, err := p.parseBody(KindEnd)
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindEnd, "to close REPEAT"); err != nil {
		return nil, err
	}

	return &RepeatStmt{Count: count, Body: body}, nil
}

func (p *Parser) parseIf() (Stmt, error) {
	p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindThen, "after IF condition"); err != nil {
		return nil, err
	}

	then, err := p.parseBody(KindElse, KindEnd)
	if err != nil {
		return nil, err
	}

	var elseBody []Stmt

	if p.cur.Kind == KindElse {
		p.advance()

		elseBody, err = p.parseBody(KindEnd)
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(KindEnd, "to close IF"); err != nil {
		return nil, err
	}

	return &IfStmt{Cond: cond, Then: then, Else: elseBody}, nil
}

func (p *Parser) parseWhile() (Stmt, error) {
	p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindDo, "after WHILE condition"); err != nil {
		return nil, err
	}

	body, err := p.parseBody(KindEnd)
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindEnd, "to close WHILE"); err != nil {
		return nil, err
	}

	return &WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseIncDec() (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	name, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	if op == KindIncrement {
		return &IncrementStmt{Name: name}, nil
	}

	return &DecrementStmt{Name: name}, nil
}

func (p *Parser) parseFor() (Stmt, error) {
	p.advance()

	name, err := p.ident("after FOR")
	if err != nil {
		return nil, err
	}

	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindTo, "after FOR start value"); err != nil {
		return nil, err
	}

	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var step Expr

	if p.cur.Kind == KindStep {
		p.advance()

		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(KindDo, "after FOR parameters"); err != nil {
		return nil, err
	}

	body, err := p.parseBody(KindEnd)
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindEnd, "to close FOR"); err != nil {
		return nil, err
	}

	return &ForStmt{Var: name, Start: start, End: end, Step: step, Body: body}, nil
}

func (p *Parser) parseAssert() (Stmt, error) {
	p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	stmt := &AssertStmt{Cond: cond}

	if p.cur.Kind == KindString {
		stmt.Message, stmt.HasMessage = p.cur.Text, true
		p.advance()
	}

	return stmt, nil
}

func (p *Parser) parseTry() (Stmt, error) {
	p.advance()

	try, err := p.parseBody(KindCatch)
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindCatch, "after TRY body"); err != nil {
		return nil, err
	}

	catch, err := p.parseBody(KindEnd)
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindEnd, "to close TRY/CATCH"); err != nil {
		return nil, err
	}

	return &TryStmt{Try: try, Catch: catch}, nil
}

func (p *Parser) parseStringTransform() (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	name, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	source, err := p.stringOrIdent("after " + op.String() + " name")
	if err != nil {
		return nil, err
	}

	return &StringTransformStmt{Op: op, Name: name, Source: source}, nil
}

func (p *Parser) parseSwitch() (Stmt, error) {
	p.advance()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	stmt := &SwitchStmt{Expr: expr}

	for p.cur.Kind != KindEnd {
		switch p.cur.Kind {
		case KindCase:
			p.advance()

			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}

			if err := p.expect(KindDo, "after CASE value"); err != nil {
				return nil, err
			}

			body, err := p.parseBody(KindCase, KindDefault, KindEnd)
			if err != nil {
				return nil, err
			}

			stmt.Cases = append(stmt.Cases, SwitchCase{Value: value, Body: body})

		case KindDefault:
			p.advance()

			if err := p.expect(KindDo, "after DEFAULT"); err != nil {
				return nil, err
			}

			body, err := p.parseBody(KindEnd)
			if err != nil {
				return nil, err
			}

			stmt.Default = body

		default:
			return nil, p.errorf("expected CASE or DEFAULT in SWITCH, got " + p.cur.String())
		}
	}

	if err := p.expect(KindEnd, "to close SWITCH"); err != nil {
		return nil, err
	}

	return stmt, nil
}

func (p *Parser) parseArrayCreate() (Stmt, error) {
	p.advance()

	name, err := p.ident("after ARRAY")
	if err != nil {
		return nil, err
	}

	return &ArrayCreateStmt{Name: name}, nil
}

func (p *Parser) parseArrayPush() (Stmt, error) {
	p.advance()

	array, err := p.ident("after PUSH")
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ArrayPushStmt{Array: array, Value: value}, nil
}

func (p *Parser) parseArrayPop() (Stmt, error) {
	p.advance()

	array, err := p.ident("after POP")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for POP result")
	if err != nil {
		return nil, err
	}

	return &ArrayPopStmt{Array: array, Result: result}, nil
}

func (p *Parser) parseArraySize() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SIZE")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for SIZE result")
	if err != nil {
		return nil, err
	}

	return &ArraySizeStmt{Array: array, Result: result}, nil
}

func (p *Parser) parseArrayGet() (Stmt, error) {
	p.advance()

	array, err := p.ident("after GET")
	if err != nil {
		return nil, err
	}

	index, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for GET result")
	if err != nil {
		return nil, err
	}

	return &ArrayGetStmt{Array: array, Index: index, Result: result}, nil
}

func (p *Parser) parseArraySet() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SET")
	if err != nil {
		return nil, err
	}

	index, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ArraySetStmt{Array: array, Index: index, Value: value}, nil
}

func (p *Parser) parseImport() (Stmt, error) {
	p.advance()

	path, err := p.stringLit("after IMPORT")
	if err != nil {
		return nil, err
	}

	return &ImportStmt{Path: path}, nil
}

func (p *Parser) parseExport() (Stmt, error) {
	p.advance()

	var items []string

	for p.cur.Kind == KindIdent {
		items = append(items, p.cur.Text)
		p.advance()
	}

	if len(items) == 0 {
		return nil, p.errorf("expected items to export")
	}

	path, err := p.stringLit("after EXPORT items")
	if err != nil {
		return nil, err
	}

	return &ExportStmt{Items: items, Path: path}, nil
}

func (p *Parser) parseFunction() (Stmt, error) {
	p.advance()

	name, err := p.ident("after FUNCTION")
	if err != nil {
		return nil, err
	}

	var params []string

	if p.cur.Kind == KindLParen {
		p.advance()

		for p.cur.Kind != KindRParen && p.cur.Kind != KindEOF {
			param, err := p.ident("for parameter name")
			if err != nil {
				return nil, err
			}

			params = append(params, param)

			// "+" separates parameters.
			if p.cur.Kind == KindPlus {
				p.advance()
			}
		}

		if err := p.expect(KindRParen, "after function parameters"); err != nil {
			return nil, err
		}
	}

	if err := p.expect(KindDo, "after function signature"); err != nil {
		return nil, err
	}

	body, err := p.parseBody(KindEnd)
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindEnd, "to close FUNCTION"); err != nil {
		return nil, err
	}

	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseCall() (Stmt, error) {
	p.advance()

	name, err := p.ident("after CALL")
	if err != nil {
		return nil, err
	}

	stmt := &CallStmt{Name: name}

	if p.cur.Kind == KindLParen {
		p.advance()

		for p.cur.Kind != KindRParen && p.cur.Kind != KindEOF {
			// Arguments parse below the additive level so a top-level
			// "+" separates arguments instead of adding. Parenthesized
			// arguments admit full expressions.
			arg, err := p.parseComparison()
			if err != nil {
				return nil, err
			}

			stmt.Args = append(stmt.Args, arg)

			if p.cur.Kind == KindPlus {
				p.advance()
			}
		}

		if err := p.expect(KindRParen, "after function arguments"); err != nil {
			return nil, err
		}
	}

	// A trailing identifier names the result variable.
	if p.cur.Kind == KindIdent {
		stmt.Result = p.cur.Text
		p.advance()
	}

	return stmt, nil
}

func (p *Parser) parseReturn() (Stmt, error) {
	p.advance()

	if p.cur.Kind == KindEOF || p.cur.Kind == KindEnd {
		return &ReturnStmt{}, nil
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ReturnStmt{Value: value}, nil
}

func (p *Parser) parseSort() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SORT")
	if err != nil {
		return nil, err
	}

	stmt := &SortStmt{Array: array, Ascending: true}

	// An optional trailing ASC or DESC sets the direction.
	if p.cur.Kind == KindIdent {
		switch p.cur.Text {
		case "DESC":
			stmt.Ascending = false
			p.advance()
		case "ASC":
			p.advance()
		}
	}

	return stmt, nil
}

func (p *Parser) parseFilter() (Stmt, error) {
	p.advance()

	array, err := p.ident("after FILTER")
	if err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for FILTER result")
	if err != nil {
		return nil, err
	}

	return &FilterStmt{Array: array, Cond: cond, Result: result}, nil
}

func (p *Parser) parseReverse() (Stmt, error) {
	p.advance()

	array, err := p.ident("after REVERSE")
	if err != nil {
		return nil, err
	}

	return &ReverseStmt{Array: array}, nil
}

func (p *Parser) parseMap() (Stmt, error) {
	p.advance()

	array, err := p.ident("after MAP")
	if err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for MAP result")
	if err != nil {
		return nil, err
	}

	return &MapStmt{Array: array, Expr: expr, Result: result}, nil
}

func (p *Parser) parseSum() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SUM")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for SUM result")
	if err != nil {
		return nil, err
	}

	return &SumStmt{Array: array, Result: result}, nil
}

func (p *Parser) parseJoin() (Stmt, error) {
	p.advance()

	array, err := p.ident("after JOIN")
	if err != nil {
		return nil, err
	}

	sep, err := p.stringLit("for JOIN separator")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for JOIN result")
	if err != nil {
		return nil, err
	}

	return &JoinStmt{Array: array, Separator: sep, Result: result}, nil
}

func (p *Parser) parseDictCreate() (Stmt, error) {
	p.advance()

	name, err := p.ident("after DICT")
	if err != nil {
		return nil, err
	}

	return &DictCreateStmt{Name: name}, nil
}

func (p *Parser) parseDictPut() (Stmt, error) {
	p.advance()

	dict, err := p.ident("after PUT")
	if err != nil {
		return nil, err
	}

	key, err := p.stringOrIdent("for PUT key")
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &DictPutStmt{Dict: dict, Key: key, Value: value}, nil
}

func (p *Parser) parseDictFetch() (Stmt, error) {
	p.advance()

	dict, err := p.ident("after FETCH")
	if err != nil {
		return nil, err
	}

	key, err := p.stringOrIdent("for FETCH key")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for FETCH result")
	if err != nil {
		return nil, err
	}

	return &DictFetchStmt{Dict: dict, Key: key, Result: result}, nil
}

func (p *Parser) parseDictKeys() (Stmt, error) {
	p.advance()

	dict, err := p.ident("after KEYS")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for KEYS result")
	if err != nil {
		return nil, err
	}

	return &DictKeysStmt{Dict: dict, Result: result}, nil
}

func (p *Parser) parseDictValues() (Stmt, error) {
	p.advance()

	dict, err := p.ident("after VALUES")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for VALUES result")
	if err != nil {
		return nil, err
	}

	return &DictValuesStmt{Dict: dict, Result: result}, nil
}

func (p *Parser) parseDictDelete() (Stmt, error) {
	p.advance()

	dict, err := p.ident("after DELETE")
	if err != nil {
		return nil, err
	}

	key, err := p.stringOrIdent("for DELETE key")
	if err != nil {
		return nil, err
	}

	return &DictDeleteStmt{Dict: dict, Key: key}, nil
}

func (p *Parser) parseReadFile() (Stmt, error) {
	p.advance()

	path, err := p.stringLit("after READ_FILE")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for READ_FILE result")
	if err != nil {
		return nil, err
	}

	return &ReadFileStmt{Path: path, Result: result}, nil
}

func (p *Parser) parseWriteFile(appendTo bool) (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	path, err := p.stringLit("after " + op.String())
	if err != nil {
		return nil, err
	}

	var content string

	switch p.cur.Kind {
	case KindString:
		content = p.cur.Text
		p.advance()
	case KindIdent:
		content = "${" + p.cur.Text + "}"
		p.advance()
	default:
		return nil, p.errorf("expected content for " + op.String())
	}

	return &WriteFileStmt{Path: path, Content: content, Append: appendTo}, nil
}

func (p *Parser) parseExists() (Stmt, error) {
	p.advance()

	path, err := p.stringLit("after EXISTS")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for EXISTS result")
	if err != nil {
		return nil, err
	}

	return &ExistsStmt{Path: path, Result: result}, nil
}

func (p *Parser) parseSleep() (Stmt, error) {
	p.advance()

	millis, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &SleepStmt{Millis: millis}, nil
}

func (p *Parser) parseInput() (Stmt, error) {
	p.advance()

	prompt, err := p.stringLit("after INPUT")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for INPUT result")
	if err != nil {
		return nil, err
	}

	return &InputStmt{Prompt: prompt, Result: result}, nil
}

func (p *Parser) parseType() (Stmt, error) {
	p.advance()

	name, err := p.ident("after TYPE")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for TYPE result")
	if err != nil {
		return nil, err
	}

	return &TypeStmt{Name: name, Result: result}, nil
}

func (p *Parser) parseParse() (Stmt, error) {
	p.advance()

	source, err := p.stringOrIdent("after PARSE")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for PARSE result")
	if err != nil {
		return nil, err
	}

	return &ParseStmt{Source: source, Result: result}, nil
}

func (p *Parser) parseToString() (Stmt, error) {
	p.advance()

	name, err := p.ident("after TO_STRING")
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ToStringStmt{Name: name, Value: value}, nil
}

func (p *Parser) parseRange() (Stmt, error) {
	p.advance()

	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(KindTo, "after RANGE start"); err != nil {
		return nil, err
	}

	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	var step Expr

	if p.cur.Kind == KindStep {
		p.advance()

		step, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	result, err := p.ident("for RANGE result")
	if err != nil {
		return nil, err
	}

	return &RangeStmt{Start: start, End: end, Step: step, Result: result}, nil
}

func (p *Parser) parseFold() (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	array, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	initial, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	operation, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for " + op.String() + " result")
	if err != nil {
		return nil, err
	}

	return &FoldStmt{Array: array, Initial: initial, Op: operation, Result: result}, nil
}

func (p *Parser) parsePredicate() (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	array, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for " + op.String() + " result")
	if err != nil {
		return nil, err
	}

	return &PredicateStmt{Op: op, Array: array, Cond: cond, Result: result}, nil
}

func (p *Parser) parseStat() (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	array, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for " + op.String() + " result")
	if err != nil {
		return nil, err
	}

	return &StatStmt{Op: op, Array: array, Result: result}, nil
}

func (p *Parser) parseUnique() (Stmt, error) {
	p.advance()

	array, err := p.ident("after UNIQUE")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for UNIQUE result")
	if err != nil {
		return nil, err
	}

	return &UniqueStmt{Array: array, Result: result}, nil
}

func (p *Parser) parseConcat() (Stmt, error) {
	p.advance()

	a, err := p.ident("after CONCAT")
	if err != nil {
		return nil, err
	}

	b, err := p.ident("for CONCAT second array")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for CONCAT result")
	if err != nil {
		return nil, err
	}

	return &ConcatStmt{A: a, B: b, Result: result}, nil
}

func (p *Parser) parseTakeDrop(drop bool) (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	array, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	count, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for " + op.String() + " result")
	if err != nil {
		return nil, err
	}

	if drop {
		return &DropStmt{Array: array, Count: count, Result: result}, nil
	}

	return &TakeStmt{Array: array, Count: count, Result: result}, nil
}

func (p *Parser) parseSlice() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SLICE")
	if err != nil {
		return nil, err
	}

	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for SLICE result")
	if err != nil {
		return nil, err
	}

	return &SliceStmt{Array: array, Start: start, End: end, Result: result}, nil
}

func (p *Parser) parseZip() (Stmt, error) {
	p.advance()

	a, err := p.ident("after ZIP")
	if err != nil {
		return nil, err
	}

	b, err := p.ident("for ZIP second array")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for ZIP result")
	if err != nil {
		return nil, err
	}

	return &ZipStmt{A: a, B: b, Result: result}, nil
}

func (p *Parser) parseUnzip() (Stmt, error) {
	p.advance()

	array, err := p.ident("after UNZIP")
	if err != nil {
		return nil, err
	}

	resultA, err := p.ident("for UNZIP first result")
	if err != nil {
		return nil, err
	}

	resultB, err := p.ident("for UNZIP second result")
	if err != nil {
		return nil, err
	}

	return &UnzipStmt{Array: array, ResultA: resultA, ResultB: resultB}, nil
}

func (p *Parser) parseFlatten() (Stmt, error) {
	p.advance()

	array, err := p.ident("after FLATTEN")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for FLATTEN result")
	if err != nil {
		return nil, err
	}

	return &FlattenStmt{Array: array, Result: result}, nil
}

func (p *Parser) parseIncludes() (Stmt, error) {
	p.advance()

	array, err := p.ident("after INCLUDES")
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for INCLUDES result")
	if err != nil {
		return nil, err
	}

	return &IncludesStmt{Array: array, Value: value, Result: result}, nil
}

func (p *Parser) parseIndexOf() (Stmt, error) {
	p.advance()

	name, err := p.ident("after INDEX_OF")
	if err != nil {
		return nil, err
	}

	// A string operand searches within an intent; an expression
	// searches an array.
	if p.cur.Kind == KindString {
		needle := p.cur.Text
		p.advance()

		result, err := p.ident("for INDEX_OF result")
		if err != nil {
			return nil, err
		}

		return &IndexOfStrStmt{Source: name, Needle: needle, Result: result}, nil
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for INDEX_OF result")
	if err != nil {
		return nil, err
	}

	return &IndexOfStmt{Array: name, Value: value, Result: result}, nil
}

func (p *Parser) parseGroupBy() (Stmt, error) {
	p.advance()

	array, err := p.ident("after GROUP_BY")
	if err != nil {
		return nil, err
	}

	key, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for GROUP_BY result")
	if err != nil {
		return nil, err
	}

	return &GroupByStmt{Array: array, Key: key, Result: result}, nil
}

func (p *Parser) parsePartition() (Stmt, error) {
	p.advance()

	array, err := p.ident("after PARTITION")
	if err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	pass, err := p.ident("for PARTITION pass result")
	if err != nil {
		return nil, err
	}

	fail, err := p.ident("for PARTITION fail result")
	if err != nil {
		return nil, err
	}

	return &PartitionStmt{Array: array, Cond: cond, ResultPass: pass, ResultFail: fail}, nil
}

func (p *Parser) parseSetOp() (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	a, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	b, err := p.ident("for " + op.String() + " second array")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for " + op.String() + " result")
	if err != nil {
		return nil, err
	}

	return &SetOpStmt{Op: op, A: a, B: b, Result: result}, nil
}

func (p *Parser) parseMerge() (Stmt, error) {
	p.advance()

	a, err := p.ident("after MERGE")
	if err != nil {
		return nil, err
	}

	b, err := p.ident("for MERGE second dictionary")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for MERGE result")
	if err != nil {
		return nil, err
	}

	return &MergeStmt{A: a, B: b, Result: result}, nil
}

func (p *Parser) parseClear() (Stmt, error) {
	p.advance()

	target, err := p.ident("after CLEAR")
	if err != nil {
		return nil, err
	}

	return &ClearStmt{Target: target}, nil
}

func (p *Parser) parseSwap() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SWAP")
	if err != nil {
		return nil, err
	}

	i, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	j, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &SwapStmt{Array: array, I: i, J: j}, nil
}

func (p *Parser) parseShuffle() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SHUFFLE")
	if err != nil {
		return nil, err
	}

	return &ShuffleStmt{Array: array}, nil
}

func (p *Parser) parseSample() (Stmt, error) {
	p.advance()

	array, err := p.ident("after SAMPLE")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for SAMPLE result")
	if err != nil {
		return nil, err
	}

	return &SampleStmt{Array: array, Result: result}, nil
}

func (p *Parser) parseClone() (Stmt, error) {
	p.advance()

	source, err := p.ident("after CLONE")
	if err != nil {
		return nil, err
	}

	dest, err := p.ident("for CLONE destination")
	if err != nil {
		return nil, err
	}

	return &CloneStmt{Source: source, Dest: dest}, nil
}

func (p *Parser) parseReplace() (Stmt, error) {
	p.advance()

	text, err := p.ident("after REPLACE")
	if err != nil {
		return nil, err
	}

	pattern, err := p.stringLit("for REPLACE pattern")
	if err != nil {
		return nil, err
	}

	replacement, err := p.stringLit("for REPLACE replacement")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for REPLACE result")
	if err != nil {
		return nil, err
	}

	return &ReplaceStmt{Text: text, Pattern: pattern, Replacement: replacement, Result: result}, nil
}

func (p *Parser) parseSplit() (Stmt, error) {
	p.advance()

	text, err := p.ident("after SPLIT")
	if err != nil {
		return nil, err
	}

	delim, err := p.stringLit("for SPLIT delimiter")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for SPLIT result")
	if err != nil {
		return nil, err
	}

	return &SplitStmt{Text: text, Delimiter: delim, Result: result}, nil
}

func (p *Parser) parseSubstring() (Stmt, error) {
	p.advance()

	name, err := p.ident("after SUBSTRING")
	if err != nil {
		return nil, err
	}

	source, err := p.ident("for SUBSTRING source")
	if err != nil {
		return nil, err
	}

	start, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	end, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &SubstringStmt{Name: name, Source: source, Start: start, End: end}, nil
}

func (p *Parser) parseContains() (Stmt, error) {
	p.advance()

	source, err := p.ident("after CONTAINS")
	if err != nil {
		return nil, err
	}

	needle, err := p.stringLit("for CONTAINS needle")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for CONTAINS result")
	if err != nil {
		return nil, err
	}

	return &ContainsStmt{Source: source, Needle: needle, Result: result}, nil
}

func (p *Parser) parseAffix() (Stmt, error) {
	op := p.cur.Kind
	p.advance()

	source, err := p.ident("after " + op.String())
	if err != nil {
		return nil, err
	}

	affix, err := p.stringLit("for " + op.String() + " affix")
	if err != nil {
		return nil, err
	}

	result, err := p.ident("for " + op.String() + " result")
	if err != nil {
		return nil, err
	}

	return &AffixStmt{Op: op, Source: source, Affix: affix, Result: result}, nil
}

func (p *Parser) parsePad() (Stmt, error) {
	p.advance()

	name, err := p.ident("after PAD")
	if err != nil {
		return nil, err
	}

	source, err := p.ident("for PAD source")
	if err != nil {
		return nil, err
	}

	width, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &PadStmt{Name: name, Source: source, Width: width}, nil
}
