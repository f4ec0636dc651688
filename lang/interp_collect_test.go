package lang

import (
	"errors"
	"slices"
	"testing"
)

func wantArray(t *testing.T, in *Interp, name string, want []float64) {
	t.Helper()

	got, ok := in.arrays[name]
	if !ok {
		t.Fatalf("array %q not set", name)
	}

	if !slices.Equal(got, want) {
		t.Errorf("array %q: expected %v, got %v", name, want, got)
	}
}

func TestInterp_ArrayBasics(t *testing.T) {
	in, _ := run(t, `
ARRAY nums
PUSH nums 10
PUSH nums 20
PUSH nums 30
SIZE nums n
GET nums 1 middle
SET nums 0 99
POP nums last
`)

	wantArray(t, in, "nums", []float64{99, 20})
	wantVar(t, in, "n", 3)
	wantVar(t, in, "middle", 20)
	wantVar(t, in, "last", 30)
}

func TestInterp_ArrayErrors(t *testing.T) {
	t.Run("pop from empty", func(t *testing.T) {
		in, _, _ := testInterp(nil)
		err := in.Run(`
ARRAY nums
POP nums x
`)
		if !errors.Is(err, ErrEmptyArray) {
			t.Errorf("expected empty array error, got %v", err)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		in, _, _ := testInterp(nil)
		err := in.Run(`
ARRAY nums
PUSH nums 1
GET nums 5 x
`)
		if !errors.Is(err, ErrIndexRange) {
			t.Errorf("expected range error, got %v", err)
		}
	})

	t.Run("unknown array", func(t *testing.T) {
		in, _, _ := testInterp(nil)
		if err := in.Run(`PUSH ghost 1`); !errors.Is(err, ErrArrayNotFound) {
			t.Errorf("expected array not found, got %v", err)
		}
	})
}

func TestInterp_SortReverse(t *testing.T) {
	in, console := run(t, `
ARRAY nums
PUSH nums 3
PUSH nums 1
PUSH nums 2
SORT nums
REVERSE nums
`)

	wantArray(t, in, "nums", []float64{3, 2, 1})

	if !console.contains("Array 'nums' sorted ascending") {
		t.Errorf("expected sort confirmation, got %v", console.lines)
	}

	in, _ = run(t, `
ARRAY nums
PUSH nums 3
PUSH nums 1
PUSH nums 2
SORT nums DESC
`)

	wantArray(t, in, "nums", []float64{3, 2, 1})
}

func TestInterp_FilterMapScans(t *testing.T) {
	in, _ := run(t, `
ARRAY nums
PUSH nums 1
PUSH nums 2
PUSH nums 3
PUSH nums 4
FILTER nums RECALL item % 2 == 0 evens
MAP nums RECALL item * 10 tens
`)

	wantArray(t, in, "evens", []float64{2, 4})
	wantArray(t, in, "tens", []float64{10, 20, 30, 40})
}

func TestInterp_ScanBindingsAreRestored(t *testing.T) {
	in, _ := run(t, `
STORE item 77
ARRAY nums
PUSH nums 1
FILTER nums RECALL item > 0 all
`)

	wantVar(t, in, "item", 77)

	in, _ = run(t, `
ARRAY nums
PUSH nums 1
MAP nums RECALL item doubled
`)

	if _, ok := in.variables["item"]; ok {
		t.Error("scratch binding leaked into variables")
	}
}

func TestInterp_FoldAndPredicates(t *testing.T) {
	in, console := run(t, `
ARRAY nums
PUSH nums 1
PUSH nums 2
PUSH nums 3
PUSH nums 4
FOLD nums 0 RECALL acc + RECALL item total
FIND nums RECALL item > 2 first
COUNT nums RECALL item > 1 many
ALL nums RECALL item > 0 allPos
ANY nums RECALL item > 3 anyBig
ANY nums RECALL item > 9 anyHuge
`)

	wantVar(t, in, "total", 10)
	wantVar(t, in, "first", 3)
	wantVar(t, in, "many", 3)
	wantVar(t, in, "allPos", 1)
	wantVar(t, in, "anyBig", 1)
	wantVar(t, in, "anyHuge", 0)

	if !console.contains("Found value: 3") {
		t.Errorf("expected find confirmation, got %v", console.lines)
	}
}

func TestInterp_FindWithoutMatchLeavesResultUnset(t *testing.T) {
	in, _ := run(t, `
ARRAY nums
PUSH nums 1
FIND nums RECALL item > 10 missing
`)

	if _, ok := in.variables["missing"]; ok {
		t.Error("result was set despite no match")
	}
}

func TestInterp_RangeSumJoin(t *testing.T) {
	in, _ := run(t, `
RANGE 1 TO 9 STEP 2 odds
SUM odds total
JOIN odds "," csv
`)

	wantArray(t, in, "odds", []float64{1, 3, 5, 7, 9})
	wantVar(t, in, "total", 25)

	if in.intents["csv"] != "1,3,5,7,9" {
		t.Errorf("expected joined string, got %q", in.intents["csv"])
	}
}

func TestInterp_SliceTakeDrop(t *testing.T) {
	in, _ := run(t, `
RANGE 1 TO 5 nums
TAKE nums 2 head
DROP nums 2 tail
SLICE nums 1 4 mid
TAKE nums 99 all
SLICE nums 3 1 empty
`)

	wantArray(t, in, "head", []float64{1, 2})
	wantArray(t, in, "tail", []float64{3, 4, 5})
	wantArray(t, in, "mid", []float64{2, 3, 4})
	wantArray(t, in, "all", []float64{1, 2, 3, 4, 5})
	wantArray(t, in, "empty", []float64{})
}

func TestInterp_ZipUnzipFlatten(t *testing.T) {
	in, _ := run(t, `
ARRAY a
PUSH a 1
PUSH a 2
PUSH a 3
ARRAY b
PUSH b 10
PUSH b 20
ZIP a b pairs
UNZIP pairs left right
FLATTEN pairs copy
`)

	wantArray(t, in, "pairs", []float64{1, 10, 2, 20})
	wantArray(t, in, "left", []float64{1, 2})
	wantArray(t, in, "right", []float64{10, 20})
	wantArray(t, in, "copy", []float64{1, 10, 2, 20})
}

func TestInterp_SetOperations(t *testing.T) {
	in, _ := run(t, `
ARRAY a
PUSH a 1
PUSH a 2
PUSH a 3
PUSH a 2
ARRAY b
PUSH b 2
PUSH b 4
DIFF a b onlyA
INTERSECTION a b both
UNION a b all
UNIQUE a dedup
`)

	wantArray(t, in, "onlyA", []float64{1, 3})
	wantArray(t, in, "both", []float64{2})
	wantArray(t, in, "all", []float64{1, 2, 3, 4})
	wantArray(t, in, "dedup", []float64{1, 2, 3})
}

func TestInterp_GroupByPartition(t *testing.T) {
	in, _ := run(t, `
RANGE 1 TO 6 nums
GROUP_BY nums RECALL item % 2 buckets
PARTITION nums RECALL item > 3 big small
`)

	if in.dicts["buckets"]["0"] != 3 || in.dicts["buckets"]["1"] != 3 {
		t.Errorf("unexpected buckets: %v", in.dicts["buckets"])
	}

	wantArray(t, in, "big", []float64{4, 5, 6})
	wantArray(t, in, "small", []float64{1, 2, 3})
}

func TestInterp_IncludesIndexOfSwap(t *testing.T) {
	in, _ := run(t, `
ARRAY nums
PUSH nums 5
PUSH nums 7
PUSH nums 9
INCLUDES nums 7 has
INCLUDES nums 8 hasNot
INDEX_OF nums 9 pos
INDEX_OF nums 1 misses
SWAP nums 0 2
`)

	wantVar(t, in, "has", 1)
	wantVar(t, in, "hasNot", 0)
	wantVar(t, in, "pos", 2)
	wantVar(t, in, "misses", -1)
	wantArray(t, in, "nums", []float64{9, 7, 5})
}

func TestInterp_CloneAndClear(t *testing.T) {
	in, _ := run(t, `
ARRAY nums
PUSH nums 1
CLONE nums copy
PUSH copy 2
CLEAR nums
DICT d
PUT d "k" 1
CLONE d dcopy
CLEAR d
`)

	wantArray(t, in, "nums", []float64{})
	wantArray(t, in, "copy", []float64{1, 2})

	if len(in.dicts["d"]) != 0 {
		t.Errorf("expected cleared dictionary, got %v", in.dicts["d"])
	}

	if in.dicts["dcopy"]["k"] != 1 {
		t.Errorf("expected cloned dictionary, got %v", in.dicts["dcopy"])
	}
}

func TestInterp_ShuffleSampleDeterminism(t *testing.T) {
	src := `
RANGE 1 TO 10 nums
SHUFFLE nums
SAMPLE nums pick
`
	first, _ := run(t, src)
	second, _ := run(t, src)

	if !slices.Equal(first.arrays["nums"], second.arrays["nums"]) {
		t.Error("shuffle differs between identical runs")
	}

	if first.variables["pick"] != second.variables["pick"] {
		t.Error("sample differs between identical runs")
	}
}

func TestInterp_Dicts(t *testing.T) {
	in, console := run(t, `
DICT ages
PUT ages "alice" 30
PUT ages "bob" 25
FETCH ages "alice" a
KEYS ages keyIdx
VALUES ages vals
DELETE ages "bob"
SIZE keyIdx n
`)

	wantVar(t, in, "a", 30)
	wantArray(t, in, "keyIdx", []float64{0, 1})
	wantArray(t, in, "vals", []float64{30, 25})
	wantVar(t, in, "n", 2)

	if _, ok := in.dicts["ages"]["bob"]; ok {
		t.Error("expected bob deleted")
	}

	if !console.contains("Dictionary 'ages' created") {
		t.Errorf("expected creation message, got %v", console.lines)
	}

	if !console.contains("Set ages['alice'] = 30") {
		t.Errorf("expected put message, got %v", console.lines)
	}
}

func TestInterp_DictErrors(t *testing.T) {
	in, _, _ := testInterp(nil)
	err := in.Run(`
DICT d
FETCH d "ghost" x
`)
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected key not found, got %v", err)
	}
}

func TestInterp_MergeKeepsSecondOnConflict(t *testing.T) {
	in, _ := run(t, `
DICT a
PUT a "k" 1
PUT a "only" 5
DICT b
PUT b "k" 2
MERGE a b m
`)

	if in.dicts["m"]["k"] != 2 || in.dicts["m"]["only"] != 5 {
		t.Errorf("unexpected merge result: %v", in.dicts["m"])
	}
}

func TestInterp_StringOps(t *testing.T) {
	in, _ := run(t, `
INTENT raw "  Hello World  "
TRIM clean raw
UPPERCASE loud clean
LOWERCASE quiet clean
REPLACE clean "World" "There" greeting
SPLIT clean " " parts
SUBSTRING head clean 0 5
CONTAINS clean "World" has
STARTS_WITH clean "Hello" starts
ENDS_WITH clean "Hello" ends
INDEX_OF clean "World" pos
PAD padded clean 20
`)

	want := map[string]string{
		"clean":    "Hello World",
		"loud":     "HELLO WORLD",
		"quiet":    "hello world",
		"greeting": "Hello There",
		"head":     "Hello",
		"padded":   "         Hello World",
	}

	for name, text := range want {
		if in.intents[name] != text {
			t.Errorf("%s: expected %q, got %q", name, text, in.intents[name])
		}
	}

	wantArray(t, in, "parts", []float64{0, 1})
	wantVar(t, in, "has", 1)
	wantVar(t, in, "starts", 1)
	wantVar(t, in, "ends", 0)
	wantVar(t, in, "pos", 6)
}

func TestInterp_StringTransformLiteralSource(t *testing.T) {
	in, _ := run(t, `UPPERCASE loud "quiet words"`)

	if in.intents["loud"] != "QUIET WORDS" {
		t.Errorf("expected literal transform, got %q", in.intents["loud"])
	}
}

func TestInterp_Stats(t *testing.T) {
	in, _ := run(t, `
ARRAY nums
PUSH nums 2
PUSH nums 4
PUSH nums 4
PUSH nums 4
PUSH nums 5
PUSH nums 5
PUSH nums 7
PUSH nums 9
MIN_OF nums lo
MAX_OF nums hi
AVERAGE nums avg
MEDIAN nums med
MODE nums common
VARIANCE nums spread
STDDEV nums dev
`)

	wantVar(t, in, "lo", 2)
	wantVar(t, in, "hi", 9)
	wantVar(t, in, "avg", 5)
	wantVar(t, in, "med", 4.5)
	wantVar(t, in, "common", 4)
	wantVar(t, in, "spread", 4)
	wantVar(t, in, "dev", 2)
}

func TestInterp_StatsEdgeCases(t *testing.T) {
	t.Run("min of empty errors", func(t *testing.T) {
		in, _, _ := testInterp(nil)
		err := in.Run(`
ARRAY empty
MIN_OF empty x
`)
		if !errors.Is(err, ErrEmptyArray) {
			t.Errorf("expected empty array error, got %v", err)
		}
	})

	t.Run("average of empty is zero", func(t *testing.T) {
		in, _ := run(t, `
ARRAY empty
AVERAGE empty avg
MEDIAN empty med
STDDEV empty dev
`)
		wantVar(t, in, "avg", 0)
		wantVar(t, in, "med", 0)
		wantVar(t, in, "dev", 0)
	})

	t.Run("even median averages the middle pair", func(t *testing.T) {
		in, _ := run(t, `
ARRAY nums
PUSH nums 1
PUSH nums 2
PUSH nums 3
PUSH nums 4
MEDIAN nums med
`)
		wantVar(t, in, "med", 2.5)
	})
}

func TestInterp_CollectionConfirmations(t *testing.T) {
	in, console := run(t, `
RANGE 1 TO 5 nums
TAKE nums 2 head
DROP nums 2 tail
CLONE nums copy
DICT ages
PUT ages "amy" 30
VALUES ages vals
CLONE ages acopy
`)

	wantArray(t, in, "head", []float64{1, 2})

	for _, want := range []string{
		"Generated range array 'nums'",
		"Took 2 elements into 'head'",
		"Dropped 2 elements, result in 'tail'",
		"Cloned array 'nums' to 'copy'",
		"Extracted values from 'ages' to array 'vals'",
		"Cloned dictionary 'ages' to 'acopy'",
	} {
		if !console.contains(want) {
			t.Errorf("expected confirmation %q, got %v", want, console.lines)
		}
	}
}
