package lang

import "strings"

// intent resolves an intent name or fails with a suggestion.
func (in *Interp) intent(name string) (string, error) {
	text, ok := in.intents[name]
	if !ok {
		return "", nameError(ErrStringNotFound, name, mapKeys(in.intents))
	}

	return text, nil
}

// intentOrLiteral resolves source as an intent name when one exists,
// otherwise treats it as literal text.
func (in *Interp) intentOrLiteral(source string) string {
	if text, ok := in.intents[source]; ok {
		return text
	}

	return source
}

func (in *Interp) execString(stmt Stmt) error {
	switch s := stmt.(type) {
	case *StringTransformStmt:
		text := in.intentOrLiteral(s.Source)

		switch s.Op {
		case KindUppercase:
			text = strings.ToUpper(text)
		case KindLowercase:
			text = strings.ToLower(text)
		case KindTrim:
			text = strings.TrimSpace(text)
		}

		in.intents[s.Name] = text
	case *ReplaceStmt:
		text, err := in.intent(s.Text)
		if err != nil {
			return err
		}

		in.intents[s.Result] = strings.ReplaceAll(text, s.Pattern, s.Replacement)
		in.printf("Replaced '%s' with '%s' in string", s.Pattern, s.Replacement)
	case *SplitStmt:
		text, err := in.intent(s.Text)
		if err != nil {
			return err
		}

		parts := strings.Split(text, s.Delimiter)

		// Parts are strings and arrays hold numbers, so the result is
		// the part positions 0..n-1.
		positions := make([]float64, len(parts))
		for i := range positions {
			positions[i] = float64(i)
		}

		in.arrays[s.Result] = positions
		in.printf("Split string '%s' by '%s' into %d parts", s.Text, s.Delimiter, len(parts))
	case *SubstringStmt:
		text, err := in.intent(s.Source)
		if err != nil {
			return err
		}

		startVal, err := in.eval(s.Start)
		if err != nil {
			return err
		}

		endVal, err := in.eval(s.End)
		if err != nil {
			return err
		}

		start := min(max(int(startVal), 0), len(text))
		end := min(max(int(endVal), 0), len(text))

		if start > end {
			start = end
		}

		in.intents[s.Name] = text[start:end]
	case *ContainsStmt:
		text, err := in.intent(s.Source)
		if err != nil {
			return err
		}

		in.variables[s.Result] = b2f(strings.Contains(text, s.Needle))
	case *AffixStmt:
		text, err := in.intent(s.Source)
		if err != nil {
			return err
		}

		var has bool
		if s.Op == KindStartsWith {
			has = strings.HasPrefix(text, s.Affix)
		} else {
			has = strings.HasSuffix(text, s.Affix)
		}

		in.variables[s.Result] = b2f(has)
	case *IndexOfStrStmt:
		text, err := in.intent(s.Source)
		if err != nil {
			return err
		}

		in.variables[s.Result] = float64(strings.Index(text, s.Needle))
	case *PadStmt:
		text, err := in.intent(s.Source)
		if err != nil {
			return err
		}

		widthVal, err := in.eval(s.Width)
		if err != nil {
			return err
		}

		if width := int(widthVal); len(text) < width {
			text = strings.Repeat(" ", width-len(text)) + text
		}

		in.intents[s.Name] = text
	}

	return nil
}
