package lang

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// memFiles is an in-memory FileStore.
type memFiles map[string]string

func (m memFiles) ReadFile(path string) (string, error) {
	content, ok := m[path]
	if !ok {
		return "", fs.ErrNotExist
	}

	return content, nil
}

func (m memFiles) WriteFile(path, data string) error {
	m[path] = data
	return nil
}

func (m memFiles) AppendFile(path, data string) error {
	m[path] += data
	return nil
}

func (m memFiles) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

// memConsole records output lines and replays scripted input.
type memConsole struct {
	lines []string
	input []string
}

func (c *memConsole) Print(line string) {
	c.lines = append(c.lines, line)
}

func (c *memConsole) ReadLine(string) (string, error) {
	if len(c.input) == 0 {
		return "", io.EOF
	}

	line := c.input[0]
	c.input = c.input[1:]

	return line, nil
}

func (c *memConsole) contains(want string) bool {
	for _, line := range c.lines {
		if line == want {
			return true
		}
	}

	return false
}

// recordClock records requested delays without sleeping.
type recordClock struct {
	slept []time.Duration
}

func (c *recordClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
}

func testInterp(files memFiles) (*Interp, *memConsole, *recordClock) {
	console := &memConsole{}
	clock := &recordClock{}

	if files == nil {
		files = memFiles{}
	}

	return New(WithFiles(files), WithConsole(console), WithClock(clock)), console, clock
}

func run(t *testing.T, src string) (*Interp, *memConsole) {
	t.Helper()

	in, console, _ := testInterp(nil)
	if err := in.Run(src); err != nil {
		t.Fatalf("run error: %v", err)
	}

	return in, console
}

func wantVar(t *testing.T, in *Interp, name string, want float64) {
	t.Helper()

	got, ok := in.variables[name]
	if !ok {
		t.Fatalf("variable %q not set", name)
	}

	if got != want {
		t.Errorf("variable %q: expected %v, got %v", name, want, got)
	}
}

func TestInterp_StoreAndRecall(t *testing.T) {
	in, _ := run(t, `
STORE x 42
CALCULATE y RECALL x * 2
STORE z RECALL y + 1
`)

	wantVar(t, in, "x", 42)
	wantVar(t, in, "z", 85)

	if in.calculations["y"] != 84 {
		t.Errorf("calculation y: expected 84, got %v", in.calculations["y"])
	}
}

func TestInterp_RecallNeverSeesIntents(t *testing.T) {
	in, _, _ := testInterp(nil)

	err := in.Run(`
INTENT greeting "hello"
STORE x RECALL greeting
`)
	if !errors.Is(err, ErrNameNotFound) {
		t.Errorf("expected name not found, got %v", err)
	}
}

func TestInterp_ManifestAndPrint(t *testing.T) {
	_, console := run(t, `
INTENT greeting "hello"
MANIFEST greeting WITH "world"
CALCULATE total 2 + 3
MANIFEST total
PRINT "result is" total "!"
`)

	want := []string{"hello world", "5", "result is 5 !"}
	for i, line := range want {
		if console.lines[i] != line {
			t.Errorf("line %d: expected %q, got %q", i, line, console.lines[i])
		}
	}
}

func TestInterp_PlaceholderResolutionOrder(t *testing.T) {
	// Intents win over calculations, which win over variables.
	_, console := run(t, `
STORE name 1
CALCULATE name 2
PRINT name
INTENT name "three"
PRINT name
PRINT missing
`)

	want := []string{"2", "three", "<missing not found>"}
	for i, line := range want {
		if console.lines[i] != line {
			t.Errorf("line %d: expected %q, got %q", i, line, console.lines[i])
		}
	}
}

func TestInterp_PrecedenceQuirk(t *testing.T) {
	// 1 + 2 == 3 groups as 1 + (2 == 3), not (1 + 2) == 3.
	in, _ := run(t, `STORE r 1 + 2 == 3`)
	wantVar(t, in, "r", 1)

	in, _ = run(t, `STORE r 10 - 2 < 5`)
	wantVar(t, in, "r", 9)
}

func TestInterp_DivisionByZero(t *testing.T) {
	in, _, _ := testInterp(nil)

	err := in.Run(`STORE r 1 / 0`)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected division by zero, got %v", err)
	}

	// A failed STORE leaves the destination unset.
	if _, ok := in.variables["r"]; ok {
		t.Error("destination was set despite the error")
	}
}

func TestInterp_ModuloByZero(t *testing.T) {
	in, _, _ := testInterp(nil)

	if err := in.Run(`STORE r 7 % 0`); !errors.Is(err, ErrModuloByZero) {
		t.Errorf("expected modulo by zero, got %v", err)
	}
}

func TestInterp_Loops(t *testing.T) {
	t.Run("repeat with break", func(t *testing.T) {
		in, _ := run(t, `
STORE n 0
REPEAT 10 TIMES DO
  INCREMENT n
  IF RECALL n == 3 THEN
    BREAK
  END
END
`)
		wantVar(t, in, "n", 3)
	})

	t.Run("while with continue", func(t *testing.T) {
		in, _ := run(t, `
STORE i 0
STORE evens 0
WHILE RECALL i < 10 DO
  INCREMENT i
  IF RECALL i % 2 == 1 THEN
    CONTINUE
  END
  INCREMENT evens
END
`)
		wantVar(t, in, "evens", 5)
	})

	t.Run("for with negative step", func(t *testing.T) {
		in, _ := run(t, `
STORE sum 0
FOR i 5 TO 1 STEP 0 - 1 DO
  STORE sum RECALL sum + RECALL i
END
`)
		wantVar(t, in, "sum", 15)
	})

	t.Run("for continue still steps", func(t *testing.T) {
		in, _ := run(t, `
STORE n 0
FOR i 1 TO 5 DO
  IF RECALL i == 3 THEN
    CONTINUE
  END
  INCREMENT n
END
`)
		wantVar(t, in, "n", 4)
	})

	t.Run("zero step runs nothing", func(t *testing.T) {
		in, _ := run(t, `
STORE n 0
FOR i 1 TO 5 STEP 0 DO
  INCREMENT n
END
`)
		wantVar(t, in, "n", 0)
	})
}

func TestInterp_StrayControlSignals(t *testing.T) {
	in, _, _ := testInterp(nil)
	if err := in.Run(`BREAK`); !errors.Is(err, ErrStrayBreak) {
		t.Errorf("expected stray break error, got %v", err)
	}

	in, _, _ = testInterp(nil)
	if err := in.Run(`RETURN 1`); !errors.Is(err, ErrStrayReturn) {
		t.Errorf("expected stray return error, got %v", err)
	}
}

func TestInterp_IncrementDecrementCreate(t *testing.T) {
	in, _ := run(t, `
INCREMENT up
DECREMENT down
`)

	wantVar(t, in, "up", 1)
	wantVar(t, in, "down", -1)
}

func TestInterp_Functions(t *testing.T) {
	t.Run("arguments bind to a fresh frame", func(t *testing.T) {
		in, _ := run(t, `
STORE a 100
FUNCTION double (a) DO
  RETURN RECALL a * 2
END
CALL double (21) result
`)
		wantVar(t, in, "result", 42)
		wantVar(t, in, "a", 100)
	})

	t.Run("plus separates arguments", func(t *testing.T) {
		in, _ := run(t, `
FUNCTION add (x + y) DO
  RETURN RECALL x + RECALL y
END
CALL add (2 + 3) result
`)
		wantVar(t, in, "result", 5)
	})

	t.Run("parenthesized argument keeps full expressions", func(t *testing.T) {
		in, _ := run(t, `
FUNCTION add (x + y) DO
  RETURN RECALL x + RECALL y
END
CALL add ((2 + 3) + 10) result
`)
		wantVar(t, in, "result", 15)
	})

	t.Run("missing return yields zero", func(t *testing.T) {
		in, _ := run(t, `
FUNCTION noop DO
  STORE ignored 1
END
CALL noop result
`)
		wantVar(t, in, "result", 0)
	})

	t.Run("arity mismatch", func(t *testing.T) {
		in, _, _ := testInterp(nil)

		err := in.Run(`
FUNCTION add (a + b) DO
  RETURN RECALL a + RECALL b
END
CALL add (1) result
`)
		if !errors.Is(err, ErrArityMismatch) {
			t.Errorf("expected arity mismatch, got %v", err)
		}
	})

	t.Run("frame is popped after the call", func(t *testing.T) {
		in, _ := run(t, `
FUNCTION probe (secret) DO
  RETURN RECALL secret
END
CALL probe (7) out
`)

		if len(in.callStack) != 0 {
			t.Errorf("expected empty call stack, got %d frames", len(in.callStack))
		}

		if _, ok := in.variables["secret"]; ok {
			t.Error("parameter leaked into variables")
		}
	})

	t.Run("return unwinds nested loops", func(t *testing.T) {
		in, _ := run(t, `
FUNCTION firstOver (limit) DO
  FOR i 1 TO 100 DO
    IF RECALL i > RECALL limit THEN
      RETURN RECALL i
    END
  END
  RETURN 0 - 1
END
CALL firstOver (4) found
`)
		wantVar(t, in, "found", 5)
	})
}

func TestInterp_TryCatch(t *testing.T) {
	t.Run("catches runtime errors", func(t *testing.T) {
		in, _ := run(t, `
STORE caught 0
TRY
  STORE x 1 / 0
CATCH
  STORE caught 1
END
`)
		wantVar(t, in, "caught", 1)
	})

	t.Run("does not catch loop signals", func(t *testing.T) {
		in, _ := run(t, `
STORE n 0
REPEAT 5 TIMES DO
  INCREMENT n
  TRY
    BREAK
  CATCH
    STORE n 100
  END
END
`)
		wantVar(t, in, "n", 1)
	})

	t.Run("does not catch return", func(t *testing.T) {
		in, _ := run(t, `
FUNCTION f DO
  TRY
    RETURN 9
  CATCH
    RETURN 0 - 1
  END
END
CALL f out
`)
		wantVar(t, in, "out", 9)
	})
}

func TestInterp_Assert(t *testing.T) {
	t.Run("success prints confirmation", func(t *testing.T) {
		_, console := run(t, `ASSERT 1 == 1`)
		if !console.contains("✓ Assertion passed") {
			t.Errorf("expected confirmation, got %v", console.lines)
		}
	})

	t.Run("failure carries the message", func(t *testing.T) {
		in, _, _ := testInterp(nil)

		err := in.Run(`ASSERT 1 == 2 "math is broken"`)
		if !errors.Is(err, ErrAssertFailed) {
			t.Fatalf("expected assertion failure, got %v", err)
		}

		if !strings.Contains(err.Error(), "math is broken") {
			t.Errorf("expected message in error, got %v", err)
		}
	})
}

func TestInterp_Switch(t *testing.T) {
	in, _ := run(t, `
STORE x 2
SWITCH RECALL x
CASE 1 DO
  STORE hit 1
CASE 2 DO
  STORE hit 2
DEFAULT DO
  STORE hit 99
END
`)
	wantVar(t, in, "hit", 2)

	in, _ = run(t, `
SWITCH 42
CASE 1 DO
  STORE hit 1
DEFAULT DO
  STORE hit 99
END
`)
	wantVar(t, in, "hit", 99)
}

func TestInterp_Builtins(t *testing.T) {
	in, _ := run(t, `
STORE lo MIN(3 7)
STORE hi MAX(3 7)
STORE down FLOOR(2.9)
STORE up CEIL(2.1)
STORE near ROUND(2.5)
INTENT word "hello"
STORE n LENGTH(word)
`)

	wantVar(t, in, "lo", 3)
	wantVar(t, in, "hi", 7)
	wantVar(t, in, "down", 2)
	wantVar(t, in, "up", 3)
	wantVar(t, in, "near", 3)
	wantVar(t, in, "n", 5)
}

func TestInterp_LengthOfUnknownName(t *testing.T) {
	// The name lives in the unevaluated operand slot, so the error is
	// about the missing string, not a missing variable.
	in, _, _ := testInterp(nil)

	err := in.Run(`STORE n LENGTH(ghost)`)
	if !errors.Is(err, ErrStringNotFound) {
		t.Errorf("expected string not found, got %v", err)
	}
}

func TestInterp_TypeOf(t *testing.T) {
	in, _ := run(t, `
STORE num 1
INTENT text "hi"
ARRAY arr
DICT d
TYPE num t1
TYPE text t2
TYPE arr t3
TYPE d t4
TYPE ghost t5
`)

	want := map[string]string{
		"t1": "number",
		"t2": "string",
		"t3": "array",
		"t4": "dictionary",
		"t5": "undefined",
	}

	for name, kind := range want {
		if in.intents[name] != kind {
			t.Errorf("%s: expected %q, got %q", name, kind, in.intents[name])
		}
	}
}

func TestInterp_Parse(t *testing.T) {
	in, _ := run(t, `
INTENT raw "  3.5 "
PARSE raw num
PARSE "junk" bad
`)

	wantVar(t, in, "num", 3.5)
	wantVar(t, in, "bad", 0)
}

func TestInterp_ToString(t *testing.T) {
	in, _ := run(t, `TO_STRING rendered 2 + 0.5`)

	if in.intents["rendered"] != "2.5" {
		t.Errorf("expected %q, got %q", "2.5", in.intents["rendered"])
	}
}

func TestInterp_NumberFormatting(t *testing.T) {
	_, console := run(t, `
CALCULATE i 4
MANIFEST i
CALCULATE f 0.1 + 0.2
MANIFEST f
`)

	if console.lines[0] != "4" {
		t.Errorf("integers print without decimals, got %q", console.lines[0])
	}

	if console.lines[1] != "0.30000000000000004" {
		t.Errorf("floats print full precision, got %q", console.lines[1])
	}
}

func TestInterp_Combine(t *testing.T) {
	in, _ := run(t, `
STORE count 3
COMBINE msg "items: " count
`)

	if in.intents["msg"] != "items: 3" {
		t.Errorf("expected %q, got %q", "items: 3", in.intents["msg"])
	}
}

func TestInterp_Sleep(t *testing.T) {
	in, console, clock := testInterp(nil)

	if err := in.Run(`SLEEP 250`); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if len(clock.slept) != 1 || clock.slept[0] != 250*time.Millisecond {
		t.Errorf("expected one 250ms sleep, got %v", clock.slept)
	}

	if !console.contains("Sleeping for 250 ms...") {
		t.Errorf("expected sleep message, got %v", console.lines)
	}
}

func TestInterp_Input(t *testing.T) {
	in, console, _ := testInterp(nil)
	console.input = []string{"42", "not a number"}

	err := in.Run(`
INPUT "first: " num
INPUT "second: " text
`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	wantVar(t, in, "num", 42)

	if in.intents["text"] != "not a number" {
		t.Errorf("expected text intent, got %q", in.intents["text"])
	}
}

func TestInterp_FilesAndImport(t *testing.T) {
	t.Run("read write append exists", func(t *testing.T) {
		files := memFiles{"in.txt": "hello"}
		in, _, _ := testInterp(files)

		err := in.Run(`
READ_FILE "in.txt" content
WRITE_FILE "out.txt" content
APPEND_FILE "out.txt" "!"
EXISTS "out.txt" found
EXISTS "ghost.txt" missing
`)
		if err != nil {
			t.Fatalf("run error: %v", err)
		}

		if files["out.txt"] != "hello!" {
			t.Errorf("expected %q, got %q", "hello!", files["out.txt"])
		}

		wantVar(t, in, "found", 1)
		wantVar(t, in, "missing", 0)
	})

	t.Run("import shares namespaces", func(t *testing.T) {
		files := memFiles{"lib.anubhav": `
FUNCTION triple (x) DO
  RETURN RECALL x * 3
END
STORE shared 5
`}
		in, _, _ := testInterp(files)

		err := in.Run(`
IMPORT "lib.anubhav"
CALL triple (RECALL shared) result
`)
		if err != nil {
			t.Fatalf("run error: %v", err)
		}

		wantVar(t, in, "result", 15)
	})

	t.Run("import cycle is detected", func(t *testing.T) {
		files := memFiles{
			"a.anubhav": `IMPORT "b.anubhav"`,
			"b.anubhav": `IMPORT "a.anubhav"`,
		}
		in, _, _ := testInterp(files)

		if err := in.Run(`IMPORT "a.anubhav"`); !errors.Is(err, ErrImportCycle) {
			t.Errorf("expected import cycle, got %v", err)
		}
	})

	t.Run("repeated import of the same file is allowed", func(t *testing.T) {
		files := memFiles{"lib.anubhav": `INCREMENT imports`}
		in, _, _ := testInterp(files)

		err := in.Run(`
IMPORT "lib.anubhav"
IMPORT "lib.anubhav"
`)
		if err != nil {
			t.Fatalf("run error: %v", err)
		}

		wantVar(t, in, "imports", 2)
	})
}

func TestInterp_Export(t *testing.T) {
	files := memFiles{}
	in, console, _ := testInterp(files)

	err := in.Run(`
INTENT name "deep thought"
STORE answer 42
ARRAY nums
PUSH nums 1
PUSH nums 2
EXPORT name answer nums "state.anubhav"
`)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := `# Exported from Anubhav
INTENT name "deep thought"
STORE answer 42
ARRAY nums
PUSH nums 1
PUSH nums 2
`
	if files["state.anubhav"] != want {
		t.Errorf("export content mismatch:\n%s", files["state.anubhav"])
	}

	if !console.contains("Exported 3 items to state.anubhav") {
		t.Errorf("expected export confirmation, got %v", console.lines)
	}

	// The export must round-trip through a fresh interpreter.
	second, _, _ := testInterp(files)
	secondFiles := `IMPORT "state.anubhav"`

	if err := second.Run(secondFiles); err != nil {
		t.Fatalf("re-import error: %v", err)
	}

	wantVar(t, second, "answer", 42)

	if second.intents["name"] != "deep thought" {
		t.Errorf("intent did not round-trip: %q", second.intents["name"])
	}
}

func TestInterp_ErrorSuggestions(t *testing.T) {
	in, _, _ := testInterp(nil)

	err := in.Run(`
STORE counter 1
STORE x RECALL countr
`)
	if !errors.Is(err, ErrNameNotFound) {
		t.Fatalf("expected name not found, got %v", err)
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
}
