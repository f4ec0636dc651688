package repl

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// callContext describes the CALL argument list surrounding the cursor.
type callContext struct {
	inCall   bool
	name     string
	argIndex int
}

// detectCall reports whether the cursor sits inside the argument list of
// a CALL statement, along with the called function name and the index of
// the argument under the cursor. Arguments are separated by "+" at the
// top nesting level of the list.
func detectCall(input string, cursor int) callContext {
	if cursor > len(input) {
		cursor = len(input)
	}

	fields := strings.Fields(input)
	if len(fields) < 2 || fields[0] != "CALL" {
		return callContext{}
	}

	// The name may adjoin the paren, as in "CALL double(7".
	name, _, _ := strings.Cut(fields[1], "(")

	open := strings.IndexByte(input, '(')
	if open == -1 || cursor <= open {
		return callContext{}
	}

	depth := 0
	argIndex := 0

	for i := open; i < cursor; i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				// Cursor is past the closing paren.
				return callContext{}
			}
		case '+':
			if depth == 1 {
				argIndex++
			}
		}
	}

	if !isIdent(name) {
		return callContext{}
	}

	return callContext{inCall: true, name: name, argIndex: argIndex}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

// renderSignatureHint renders "name(a + b)" with the parameter at
// argIndex highlighted.
func renderSignatureHint(name string, params []string, argIndex int) string {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	var b strings.Builder

	b.WriteString(hintStyle.Render(name + "("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(hintStyle.Render(" + "))
		}

		if i == argIndex {
			b.WriteString(active.Render(param))
		} else {
			b.WriteString(hintStyle.Render(param))
		}
	}

	b.WriteString(hintStyle.Render(")"))

	return b.String()
}
