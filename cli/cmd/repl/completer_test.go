package repl

import (
	"slices"
	"testing"

	"github.com/anubhavg-icpl/anubhav-lang/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{
			name:   "empty input",
			input:  "",
			cursor: 0,
			word:   "",
			start:  0,
			end:    0,
		},
		{
			name:   "single word",
			input:  "STORE",
			cursor: 5,
			word:   "STORE",
			start:  0,
			end:    5,
		},
		{
			name:   "cursor mid word",
			input:  "MANIFEST",
			cursor: 4,
			word:   "MANIFEST",
			start:  0,
			end:    8,
		},
		{
			name:   "second word",
			input:  "STORE total",
			cursor: 11,
			word:   "total",
			start:  6,
			end:    11,
		},
		{
			name:   "cursor after space",
			input:  "STORE ",
			cursor: 6,
			word:   "",
			start:  6,
			end:    6,
		},
		{
			name:   "operator splits words",
			input:  "STORE x 1+total",
			cursor: 15,
			word:   "total",
			start:  10,
			end:    15,
		},
		{
			name:   "word inside parens",
			input:  "CALL add (first",
			cursor: 15,
			word:   "first",
			start:  10,
			end:    15,
		},
		{
			name:   "cursor past end clamps",
			input:  "PRINT",
			cursor: 99,
			word:   "PRINT",
			start:  0,
			end:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.word, tt.start, tt.end)
			}
		})
	}
}

func TestEvalCandidates(t *testing.T) {
	in := lang.New(lang.WithConsole(&captureConsole{}))

	src := `
STORE total 5
INTENT greeting "hello"
FUNCTION double (n) DO
RETURN RECALL n * 2
END
`
	if err := in.Run(src); err != nil {
		t.Fatalf("run: %v", err)
	}

	candidates := evalCandidates(in)

	for _, want := range []string{"STORE", "MANIFEST", "REPEAT", "total", "greeting", "double"} {
		if !slices.Contains(candidates, want) {
			t.Errorf("candidates missing %q", want)
		}
	}
}

func TestComputeMatches_CtrlMode(t *testing.T) {
	in := lang.New(lang.WithConsole(&captureConsole{}))
	m := newModel(t.Context(), in, &captureConsole{}, NewHistory(t.TempDir()+"/history.utf8"), testLogger())
	m.mode = modeCtrl
	m.input.SetValue("he")
	m.input.SetCursor(2)

	matches, candidates, start, end := m.computeMatches()
	if len(matches) == 0 {
		t.Fatal("expected at least one match for 'he'")
	}

	if matches[0].Str != "help" {
		t.Errorf("best match = %q, want help", matches[0].Str)
	}

	if !slices.Equal(candidates, ctrlCommands) {
		t.Errorf("candidates = %v, want control commands", candidates)
	}

	if start != 0 || end != 2 {
		t.Errorf("word bounds = (%d, %d), want (0, 2)", start, end)
	}
}

func TestComputeMatches_EmptyWordHasNoMatches(t *testing.T) {
	in := lang.New(lang.WithConsole(&captureConsole{}))
	m := newModel(t.Context(), in, &captureConsole{}, NewHistory(t.TempDir()+"/history.utf8"), testLogger())
	m.input.SetValue("STORE ")
	m.input.SetCursor(6)

	matches, _, _, _ := m.computeMatches()
	if len(matches) != 0 {
		t.Errorf("expected no matches on empty word, got %d", len(matches))
	}
}
