// Package lang implements the Anubhav scripting language: a tolerant
// line-oriented lexer, a single-lookahead recursive descent parser, and a
// tree-walking interpreter.
//
// # Philosophy
//
// Anubhav scripts read like annotated to-do lists. Every statement begins
// with an UPPERCASE keyword, values live in one of five namespaces, and
// execution proceeds top to bottom with no hidden control flow:
//
//   - Intents: named string messages (INTENT, MANIFEST, PROCLAIM)
//   - Variables: named numbers (STORE, INCREMENT, DECREMENT, ...)
//   - Calculations: named numeric results (CALCULATE and aliases)
//   - Arrays and dictionaries: ordered and keyed collections
//   - Functions: single-expression definitions invoked with CALL
//
// # Grammar
//
// Informal EBNF for the statement layer:
//
//	Script     → Statement* EOF
//	Statement  → Keyword Operands? Newline
//	Block      → (IF | REPEAT | WHILE | FUNCTION) ... DO? ... END
//	Expression → Comparison
//	Comparison → Additive (('<' | '>' | '==' | '!=' | '<=' | '>=') Additive)*
//	Additive   → Term (('+' | '-') Term)*
//	Term       → Primary (('*' | '/' | '%') Primary)*
//	Primary    → Number | String | RECALL Ident | CALL ... | '(' Expression ')'
//
// Comparisons bind looser than arithmetic and evaluate to 1 or 0, so they
// compose with arithmetic operands on either side.
//
// # Example
//
//	INTENT greeting "Hello, World!"
//	MANIFEST greeting
//
//	STORE count 3
//	REPEAT RECALL count TIMES DO
//	  PRINT "tick"
//	END
//
//	FUNCTION add (a + b) DO
//	  RETURN RECALL a + RECALL b
//	END
//	CALL add (1 + 2) total
//
// # Errors
//
// Parse failures are reported as *ParseError with line, column, and caret
// context. Runtime failures wrap sentinel *Error values that callers match
// with errors.Is. Unknown keywords produce a suggestion for the nearest
// known keyword when one is close enough.
package lang
