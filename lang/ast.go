package lang

// Expr is a node in an expression tree. Expressions always evaluate to
// a float64; comparisons and logic yield 1 or 0.
type Expr interface{ expr() }

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

// RecallExpr reads a name from the innermost call frame, then the
// variable store, then the calculation store.
type RecallExpr struct {
	Name string
}

// BinaryExpr applies Op to Left and Right. Unary and builtin forms
// reuse this node with placeholder operands: NOT and unary minus carry
// a zero literal on the left, FLOOR/CEIL/ROUND carry the operand on
// the right, RANDOM carries zeros on both sides, and LENGTH/SIZE carry
// the name to resolve as a RecallExpr on the left.
type BinaryExpr struct {
	Op    Kind
	Left  Expr
	Right Expr
}

func (*NumberExpr) expr() {}
func (*RecallExpr) expr() {}
func (*BinaryExpr) expr() {}

// Stmt is a single statement of a script.
type Stmt interface{ stmt() }

// IntentStmt binds a string message to a name.
type IntentStmt struct {
	Name    string
	Message string
}

// ManifestStmt prints the named intent or calculation, optionally
// followed by a context message.
type ManifestStmt struct {
	Name    string
	With    string
	HasWith bool
}

// CalculateStmt evaluates an expression into the calculation store.
type CalculateStmt struct {
	Name string
	Expr Expr
}

// StoreStmt evaluates an expression into the variable store.
type StoreStmt struct {
	Name string
	Expr Expr
}

// CombineStmt concatenates literal parts and ${name} placeholders into
// a new intent.
type CombineStmt struct {
	Name  string
	Parts []string
}

// PrintStmt writes literal parts and ${name} placeholders to the
// console, space separated.
type PrintStmt struct {
	Parts []string
}

// RepeatStmt runs Body a fixed number of times.
type RepeatStmt struct {
	Count Expr
	Body  []Stmt
}

// IfStmt branches on a condition; Else may be nil.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// WhileStmt loops while the condition is nonzero.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
}

// IncrementStmt adds one to a variable, creating it at 1 if absent.
type IncrementStmt struct {
	Name string
}

// DecrementStmt subtracts one from a variable, creating it at -1 if
// absent.
type DecrementStmt struct {
	Name string
}

// ForStmt is a counted loop. Step may be nil, meaning 1. The loop
// continues while the counter has not passed End in the direction of
// the step sign.
type ForStmt struct {
	Var   string
	Start Expr
	End   Expr
	Step  Expr
	Body  []Stmt
}

// AssertStmt fails with an error when its condition is zero.
type AssertStmt struct {
	Cond       Expr
	Message    string
	HasMessage bool
}

// TryStmt runs Try and, if it fails with a runtime error, runs Catch.
// Loop and return signals pass through uncaught.
type TryStmt struct {
	Try   []Stmt
	Catch []Stmt
}

// StringTransformStmt rewrites an intent string. Op is one of
// UPPERCASE, LOWERCASE, or TRIM; Source names an intent or is used as
// a literal when no intent exists.
type StringTransformStmt struct {
	Op     Kind
	Name   string
	Source string
}

// SwitchCase is one CASE arm of a SwitchStmt.
type SwitchCase struct {
	Value Expr
	Body  []Stmt
}

// SwitchStmt compares an expression against case values in order and
// runs the first match, or Default when none match.
type SwitchStmt struct {
	Expr    Expr
	Cases   []SwitchCase
	Default []Stmt
}

// ArrayCreateStmt creates an empty array.
type ArrayCreateStmt struct {
	Name string
}

// ArrayPushStmt appends a value to an array.
type ArrayPushStmt struct {
	Array string
	Value Expr
}

// ArrayPopStmt removes the last element into a variable.
type ArrayPopStmt struct {
	Array  string
	Result string
}

// ArraySizeStmt stores the element count of an array into a variable.
type ArraySizeStmt struct {
	Array  string
	Result string
}

// ArrayGetStmt reads one element by index into a variable.
type ArrayGetStmt struct {
	Array  string
	Index  Expr
	Result string
}

// ArraySetStmt writes one element by index.
type ArraySetStmt struct {
	Array string
	Index Expr
	Value Expr
}

// ImportStmt parses and runs another script in the same interpreter.
type ImportStmt struct {
	Path string
}

// ExportStmt writes named items to a file in re-importable form.
type ExportStmt struct {
	Items []string
	Path  string
}

// BreakStmt exits the innermost loop.
type BreakStmt struct{}

// ContinueStmt advances the innermost loop.
type ContinueStmt struct{}

// FunctionStmt defines a named function.
type FunctionStmt struct {
	Name   string
	Params []string
	Body   []Stmt
}

// CallStmt invokes a function. Result, when nonempty, names the
// variable receiving the return value.
type CallStmt struct {
	Name   string
	Args   []Expr
	Result string
}

// ReturnStmt exits the enclosing function; Value may be nil, meaning 0.
type ReturnStmt struct {
	Value Expr
}

// SortStmt orders an array in place.
type SortStmt struct {
	Array     string
	Ascending bool
}

// FilterStmt copies elements passing a condition into a new array.
// The condition sees each element as "item" and its position as
// "index".
type FilterStmt struct {
	Array  string
	Cond   Expr
	Result string
}

// ReverseStmt reverses an array in place.
type ReverseStmt struct {
	Array string
}

// MapStmt evaluates an expression for each element into a new array.
// The expression sees "item" and "index".
type MapStmt struct {
	Array  string
	Expr   Expr
	Result string
}

// SumStmt totals an array into a variable.
type SumStmt struct {
	Array  string
	Result string
}

// JoinStmt renders array elements separated by a string into an
// intent.
type JoinStmt struct {
	Array     string
	Separator string
	Result    string
}

// DictCreateStmt creates an empty dictionary.
type DictCreateStmt struct {
	Name string
}

// DictPutStmt sets one key.
type DictPutStmt struct {
	Dict  string
	Key   string
	Value Expr
}

// DictFetchStmt reads one key into a variable; a missing key is a
// runtime error.
type DictFetchStmt struct {
	Dict   string
	Key    string
	Result string
}

// DictKeysStmt stores the key positions 0..n-1 of a dictionary into an
// array.
type DictKeysStmt struct {
	Dict   string
	Result string
}

// DictValuesStmt copies dictionary values into an array.
type DictValuesStmt struct {
	Dict   string
	Result string
}

// DictDeleteStmt removes one key.
type DictDeleteStmt struct {
	Dict string
	Key  string
}

// ReadFileStmt stores a file's contents as an intent.
type ReadFileStmt struct {
	Path   string
	Result string
}

// WriteFileStmt writes content to a file, replacing or appending.
// Content may be a ${name} placeholder resolved against intents.
type WriteFileStmt struct {
	Path    string
	Content string
	Append  bool
}

// ExistsStmt stores 1 or 0 depending on whether a file exists.
type ExistsStmt struct {
	Path   string
	Result string
}

// SleepStmt pauses the script for a number of milliseconds.
type SleepStmt struct {
	Millis Expr
}

// InputStmt prompts for a console line. Numeric input lands in
// variables, anything else in intents.
type InputStmt struct {
	Prompt string
	Result string
}

// TypeStmt stores the kind of a name ("number", "string", "array",
// "dictionary", or "undefined") as an intent.
type TypeStmt struct {
	Name   string
	Result string
}

// ParseStmt parses an intent (or the literal source text) as a number
// into a variable, defaulting to 0.
type ParseStmt struct {
	Source string
	Result string
}

// ToStringStmt renders a numeric expression as an intent.
type ToStringStmt struct {
	Name  string
	Value Expr
}

// RangeStmt fills an array with values from Start toward End. Step may
// be nil, meaning 1; the termination test follows the step sign.
type RangeStmt struct {
	Start  Expr
	End    Expr
	Step   Expr
	Result string
}

// FoldStmt reduces an array to one value. The operation sees the
// accumulator as "acc" and each element as "item".
type FoldStmt struct {
	Array   string
	Initial Expr
	Op      Expr
	Result  string
}

// PredicateStmt scans an array with a condition over "item". Op
// selects the result: FIND stores the first match, COUNT the number of
// matches, ALL and ANY a 1/0 answer.
type PredicateStmt struct {
	Op     Kind
	Array  string
	Cond   Expr
	Result string
}

// StatStmt computes one statistic of an array into a variable. Op is
// one of MIN_OF, MAX_OF, AVERAGE, MEDIAN, MODE, STDDEV, VARIANCE.
type StatStmt struct {
	Op     Kind
	Array  string
	Result string
}

// UniqueStmt copies an array dropping repeated values, keeping first
// occurrences in order.
type UniqueStmt struct {
	Array  string
	Result string
}

// ConcatStmt appends two arrays into a third.
type ConcatStmt struct {
	A      string
	B      string
	Result string
}

// TakeStmt copies the first Count elements of an array.
type TakeStmt struct {
	Array  string
	Count  Expr
	Result string
}

// DropStmt copies an array without its first Count elements.
type DropStmt struct {
	Array  string
	Count  Expr
	Result string
}

// SliceStmt copies the half-open index range [Start, End) of an array.
type SliceStmt struct {
	Array  string
	Start  Expr
	End    Expr
	Result string
}

// ZipStmt interleaves two arrays element by element, stopping at the
// shorter one.
type ZipStmt struct {
	A      string
	B      string
	Result string
}

// UnzipStmt splits an interleaved array back into even and odd
// positions.
type UnzipStmt struct {
	Array   string
	ResultA string
	ResultB string
}

// FlattenStmt copies an array. Arrays hold only numbers, so there is
// no nesting to collapse; the statement exists for symmetry with ZIP.
type FlattenStmt struct {
	Array  string
	Result string
}

// IncludesStmt stores 1 or 0 depending on whether an array contains a
// value.
type IncludesStmt struct {
	Array  string
	Value  Expr
	Result string
}

// IndexOfStmt stores the first index of a value in an array, or -1.
type IndexOfStmt struct {
	Array  string
	Value  Expr
	Result string
}

// GroupByStmt buckets array elements by a key expression over "item",
// storing the count per rendered key in a dictionary.
type GroupByStmt struct {
	Array  string
	Key    Expr
	Result string
}

// PartitionStmt splits an array by a condition over "item" into pass
// and fail arrays.
type PartitionStmt struct {
	Array      string
	Cond       Expr
	ResultPass string
	ResultFail string
}

// SetOpStmt combines two arrays as value sets. Op is one of DIFF,
// INTERSECTION, or UNION.
type SetOpStmt struct {
	Op     Kind
	A      string
	B      string
	Result string
}

// MergeStmt copies two dictionaries into a third; keys of B win.
type MergeStmt struct {
	A      string
	B      string
	Result string
}

// ClearStmt empties an array or dictionary.
type ClearStmt struct {
	Target string
}

// SwapStmt exchanges two array elements by index.
type SwapStmt struct {
	Array string
	I     Expr
	J     Expr
}

// ShuffleStmt permutes an array in place using the deterministic
// generator.
type ShuffleStmt struct {
	Array string
}

// SampleStmt stores one element of an array chosen by the
// deterministic generator.
type SampleStmt struct {
	Array  string
	Result string
}

// CloneStmt copies an array or dictionary under a new name.
type CloneStmt struct {
	Source string
	Dest   string
}

// ReplaceStmt substitutes every occurrence of a pattern in an intent
// string.
type ReplaceStmt struct {
	Text        string
	Pattern     string
	Replacement string
	Result      string
}

// SplitStmt splits an intent string by a delimiter, storing the part
// positions 0..n-1 as an array.
type SplitStmt struct {
	Text      string
	Delimiter string
	Result    string
}

// SubstringStmt stores a byte range of an intent string as a new
// intent.
type SubstringStmt struct {
	Name   string
	Source string
	Start  Expr
	End    Expr
}

// ContainsStmt stores 1 or 0 depending on whether an intent string
// contains a substring.
type ContainsStmt struct {
	Source string
	Needle string
	Result string
}

// AffixStmt stores 1 or 0 depending on whether an intent string starts
// or ends with Affix. Op is STARTS_WITH or ENDS_WITH.
type AffixStmt struct {
	Op     Kind
	Source string
	Affix  string
	Result string
}

// IndexOfStrStmt stores the byte index of a substring in an intent, or
// -1.
type IndexOfStrStmt struct {
	Source string
	Needle string
	Result string
}

// PadStmt left-pads an intent string with spaces to a minimum width.
type PadStmt struct {
	Name   string
	Source string
	Width  Expr
}

func (*IntentStmt) stmt()          {}
func (*ManifestStmt) stmt()        {}
func (*CalculateStmt) stmt()       {}
func (*StoreStmt) stmt()           {}
func (*CombineStmt) stmt()         {}
func (*PrintStmt) stmt()           {}
func (*RepeatStmt) stmt()          {}
func (*IfStmt) stmt()              {}
func (*WhileStmt) stmt()           {}
func (*IncrementStmt) stmt()       {}
func (*DecrementStmt) stmt()       {}
func (*ForStmt) stmt()             {}
func (*AssertStmt) stmt()          {}
func (*TryStmt) stmt()             {}
func (*StringTransformStmt) stmt() {}
func (*SwitchStmt) stmt()          {}
func (*ArrayCreateStmt) stmt()     {}
func (*ArrayPushStmt) stmt()       {}
func (*ArrayPopStmt) stmt()        {}
func (*ArraySizeStmt) stmt()       {}
func (*ArrayGetStmt) stmt()        {}
func (*ArraySetStmt) stmt()        {}
func (*ImportStmt) stmt()          {}
func (*ExportStmt) stmt()          {}
func (*BreakStmt) stmt()           {}
func (*ContinueStmt) stmt()        {}
func (*FunctionStmt) stmt()        {}
func (*CallStmt) stmt()            {}
func (*ReturnStmt) stmt()          {}
func (*SortStmt) stmt()            {}
func (*FilterStmt) stmt()          {}
func (*ReverseStmt) stmt()         {}
func (*MapStmt) stmt()             {}
func (*SumStmt) stmt()             {}
func (*JoinStmt) stmt()            {}
func (*DictCreateStmt) stmt()      {}
func (*DictPutStmt) stmt()         {}
func (*DictFetchStmt) stmt()       {}
func (*DictKeysStmt) stmt()        {}
func (*DictValuesStmt) stmt()      {}
func (*DictDeleteStmt) stmt()      {}
func (*ReadFileStmt) stmt()        {}
func (*WriteFileStmt) stmt()       {}
func (*ExistsStmt) stmt()          {}
func (*SleepStmt) stmt()           {}
func (*InputStmt) stmt()           {}
func (*TypeStmt) stmt()            {}
func (*ParseStmt) stmt()           {}
func (*ToStringStmt) stmt()        {}
func (*RangeStmt) stmt()           {}
func (*FoldStmt) stmt()            {}
func (*PredicateStmt) stmt()       {}
func (*StatStmt) stmt()            {}
func (*UniqueStmt) stmt()          {}
func (*ConcatStmt) stmt()          {}
func (*TakeStmt) stmt()            {}
func (*DropStmt) stmt()            {}
func (*SliceStmt) stmt()           {}
func (*ZipStmt) stmt()             {}
func (*UnzipStmt) stmt()           {}
func (*FlattenStmt) stmt()         {}
func (*IncludesStmt) stmt()        {}
func (*IndexOfStmt) stmt()         {}
func (*GroupByStmt) stmt()         {}
func (*PartitionStmt) stmt()       {}
func (*SetOpStmt) stmt()           {}
func (*MergeStmt) stmt()           {}
func (*ClearStmt) stmt()           {}
func (*SwapStmt) stmt()            {}
func (*ShuffleStmt) stmt()         {}
func (*SampleStmt) stmt()          {}
func (*CloneStmt) stmt()           {}
func (*ReplaceStmt) stmt()         {}
func (*SplitStmt) stmt()           {}
func (*SubstringStmt) stmt()       {}
func (*ContainsStmt) stmt()        {}
func (*AffixStmt) stmt()           {}
func (*IndexOfStrStmt) stmt()      {}
func (*PadStmt) stmt()             {}
