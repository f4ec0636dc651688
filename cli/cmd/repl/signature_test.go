package repl

import (
	"io"
	"testing"

	"github.com/anubhavg-icpl/anubhav-lang/lang"
	"github.com/anubhavg-icpl/anubhav-lang/log"
)

func testLogger() log.Logger {
	return log.Make(io.Discard)
}

func TestDetectCall(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		cursor   int
		inCall   bool
		fn       string
		argIndex int
	}{
		{
			name:   "not a call",
			input:  "STORE x 5",
			cursor: 9,
		},
		{
			name:   "call before paren",
			input:  "CALL add",
			cursor: 8,
		},
		{
			name:     "first argument",
			input:    "CALL add (3",
			cursor:   11,
			inCall:   true,
			fn:       "add",
			argIndex: 0,
		},
		{
			name:     "second argument",
			input:    "CALL add (3 + 4",
			cursor:   15,
			inCall:   true,
			fn:       "add",
			argIndex: 1,
		},
		{
			name:     "nested parens do not advance argument",
			input:    "CALL add ((1 + 2) + 4",
			cursor:   16,
			inCall:   true,
			fn:       "add",
			argIndex: 0,
		},
		{
			name:   "cursor past closing paren",
			input:  "CALL add (3 + 4) result",
			cursor: 20,
		},
		{
			name:     "name adjoins paren",
			input:    "CALL double(7",
			cursor:   13,
			inCall:   true,
			fn:       "double",
			argIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectCall(tt.input, tt.cursor)
			if got.inCall != tt.inCall {
				t.Fatalf("inCall = %v, want %v", got.inCall, tt.inCall)
			}

			if !tt.inCall {
				return
			}

			if got.name != tt.fn || got.argIndex != tt.argIndex {
				t.Errorf("detectCall = (%q, %d), want (%q, %d)",
					got.name, got.argIndex, tt.fn, tt.argIndex)
			}
		})
	}
}

func TestNeedsMore(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{name: "complete statement", src: "STORE x 5", want: false},
		{name: "unterminated repeat", src: "REPEAT 3 TIMES DO\nPRINT x", want: true},
		{name: "unterminated function", src: "FUNCTION f (a) DO", want: true},
		{name: "unterminated if", src: "IF RECALL x > 1 THEN\nPRINT x", want: true},
		{name: "reserved keyword", src: "LAMBDA", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lang.NewParser(tt.src).Parse()
			if got := needsMore(err); got != tt.want {
				t.Errorf("needsMore(%v) = %v, want %v", err, got, tt.want)
			}
		})
	}
}
