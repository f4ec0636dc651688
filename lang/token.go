package lang

import "strconv"

// Kind identifies the lexical class of a [Token].
type Kind int

const (
	KindEOF Kind = iota
	KindNumber
	KindString
	KindIdent

	// Operators and punctuation.
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindPower
	KindEqual
	KindNotEqual
	KindLess
	KindGreater
	KindLessEqual
	KindGreaterEqual
	KindLParen
	KindRParen

	// Keywords.
	KindIntent
	KindManifest
	KindCalculate
	KindWith
	KindStore
	KindRecall
	KindCombine
	KindRepeat
	KindTimes
	KindDo
	KindEnd
	KindIf
	KindThen
	KindElse
	KindAnd
	KindOr
	KindNot
	KindPrint
	KindWhile
	KindIncrement
	KindDecrement
	KindFor
	KindTo
	KindStep
	KindMin
	KindMax
	KindAssert
	KindTry
	KindCatch
	KindFloor
	KindCeil
	KindRound
	KindRandom
	KindLength
	KindSubstring
	KindUppercase
	KindLowercase
	KindContains
	KindSwitch
	KindCase
	KindDefault
	KindArray
	KindPush
	KindPop
	KindSize
	KindGet
	KindSet
	KindImport
	KindExport
	KindBreak
	KindContinue
	KindFunction
	KindCall
	KindReturn
	KindSort
	KindFilter
	KindReverse
	KindMap
	KindReduce
	KindSum
	KindJoin
	KindDict
	KindPut
	KindFetch
	KindKeys
	KindValues
	KindReadFile
	KindWriteFile
	KindAppendFile
	KindDelete
	KindExists
	KindSleep
	KindInput
	KindType
	KindParse
	KindToString
	KindLambda
	KindPipe
	KindRange
	KindFold
	KindFind
	KindAll
	KindAny
	KindZip
	KindUnzip
	KindFlatten
	KindUnique
	KindCount
	KindGroupBy
	KindPartition
	KindTake
	KindDrop
	KindSlice
	KindConcat
	KindSplit
	KindReplace
	KindTrim
	KindStartsWith
	KindEndsWith
	KindIncludes
	KindIndexOf
	KindPad
	KindEval
	KindTypeOf
	KindClone
	KindMerge
	KindDiff
	KindIntersection
	KindUnion
	KindClear
	KindSwap
	KindShuffle
	KindSample
	KindMinOf
	KindMaxOf
	KindAverage
	KindMedian
	KindMode
	KindStddev
	KindVariance
)

// Token is a single lexical unit with its source position.
// Text holds the spelling of identifiers and string literals,
// Num the value of numeric literals.
type Token struct {
	Kind Kind
	Text string
	Num  float64
	Line int
	Col  int
}

// keywords maps each reserved word to its token kind.
// Keywords are case sensitive and always uppercase.
var keywords = map[string]Kind{
	"INTENT":       KindIntent,
	"MANIFEST":     KindManifest,
	"CALCULATE":    KindCalculate,
	"WITH":         KindWith,
	"STORE":        KindStore,
	"RECALL":       KindRecall,
	"COMBINE":      KindCombine,
	"REPEAT":       KindRepeat,
	"TIMES":        KindTimes,
	"DO":           KindDo,
	"END":          KindEnd,
	"IF":           KindIf,
	"THEN":         KindThen,
	"ELSE":         KindElse,
	"AND":          KindAnd,
	"OR":           KindOr,
	"NOT":          KindNot,
	"PRINT":        KindPrint,
	"WHILE":        KindWhile,
	"INCREMENT":    KindIncrement,
	"DECREMENT":    KindDecrement,
	"FOR":          KindFor,
	"TO":           KindTo,
	"STEP":         KindStep,
	"MIN":          KindMin,
	"MAX":          KindMax,
	"ASSERT":       KindAssert,
	"TRY":          KindTry,
	"CATCH":        KindCatch,
	"FLOOR":        KindFloor,
	"CEIL":         KindCeil,
	"ROUND":        KindRound,
	"RANDOM":       KindRandom,
	"LENGTH":       KindLength,
	"SUBSTRING":    KindSubstring,
	"UPPERCASE":    KindUppercase,
	"LOWERCASE":    KindLowercase,
	"CONTAINS":     KindContains,
	"SWITCH":       KindSwitch,
	"CASE":         KindCase,
	"DEFAULT":      KindDefault,
	"ARRAY":        KindArray,
	"PUSH":         KindPush,
	"POP":          KindPop,
	"SIZE":         KindSize,
	"GET":          KindGet,
	"SET":          KindSet,
	"IMPORT":       KindImport,
	"EXPORT":       KindExport,
	"BREAK":        KindBreak,
	"CONTINUE":     KindContinue,
	"FUNCTION":     KindFunction,
	"CALL":         KindCall,
	"RETURN":       KindReturn,
	"SORT":         KindSort,
	"FILTER":       KindFilter,
	"REVERSE":      KindReverse,
	"MAP":          KindMap,
	"REDUCE":       KindReduce,
	"SUM":          KindSum,
	"JOIN":         KindJoin,
	"DICT":         KindDict,
	"PUT":          KindPut,
	"FETCH":        KindFetch,
	"KEYS":         KindKeys,
	"VALUES":       KindValues,
	"READ_FILE":    KindReadFile,
	"WRITE_FILE":   KindWriteFile,
	"APPEND_FILE":  KindAppendFile,
	"DELETE":       KindDelete,
	"EXISTS":       KindExists,
	"SLEEP":        KindSleep,
	"INPUT":        KindInput,
	"TYPE":         KindType,
	"PARSE":        KindParse,
	"TO_STRING":    KindToString,
	"LAMBDA":       KindLambda,
	"PIPE":         KindPipe,
	"RANGE":        KindRange,
	"FOLD":         KindFold,
	"FIND":         KindFind,
	"ALL":          KindAll,
	"ANY":          KindAny,
	"ZIP":          KindZip,
	"UNZIP":        KindUnzip,
	"FLATTEN":      KindFlatten,
	"UNIQUE":       KindUnique,
	"COUNT":        KindCount,
	"GROUP_BY":     KindGroupBy,
	"PARTITION":    KindPartition,
	"TAKE":         KindTake,
	"DROP":         KindDrop,
	"SLICE":        KindSlice,
	"CONCAT":       KindConcat,
	"SPLIT":        KindSplit,
	"REPLACE":      KindReplace,
	"TRIM":         KindTrim,
	"STARTS_WITH":  KindStartsWith,
	"ENDS_WITH":    KindEndsWith,
	"INCLUDES":     KindIncludes,
	"INDEX_OF":     KindIndexOf,
	"PAD":          KindPad,
	"EVAL":         KindEval,
	"TYPE_OF":      KindTypeOf,
	"CLONE":        KindClone,
	"MERGE":        KindMerge,
	"DIFF":         KindDiff,
	"INTERSECTION": KindIntersection,
	"UNION":        KindUnion,
	"CLEAR":        KindClear,
	"SWAP":         KindSwap,
	"SHUFFLE":      KindShuffle,
	"SAMPLE":       KindSample,
	"MIN_OF":       KindMinOf,
	"MAX_OF":       KindMaxOf,
	"AVERAGE":      KindAverage,
	"MEDIAN":       KindMedian,
	"MODE":         KindMode,
	"STDDEV":       KindStddev,
	"VARIANCE":     KindVariance,
}

var kindName = map[Kind]string{
	KindEOF:          "end of input",
	KindNumber:       "number",
	KindString:       "string",
	KindIdent:        "identifier",
	KindPlus:         "+",
	KindMinus:        "-",
	KindStar:         "*",
	KindSlash:        "/",
	KindPercent:      "%",
	KindPower:        "**",
	KindEqual:        "==",
	KindNotEqual:     "!=",
	KindLess:         "<",
	KindGreater:      ">",
	KindLessEqual:    "<=",
	KindGreaterEqual: ">=",
	KindLParen:       "(",
	KindRParen:       ")",
}

func init() {
	for word, kind := range keywords {
		kindName[kind] = word
	}
}

// String returns the display name of the token kind.
func (k Kind) String() string {
	if name, ok := kindName[k]; ok {
		return name
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(t.Text)
	case KindIdent:
		return t.Text
	default:
		return t.Kind.String()
	}
}

// IsKeyword reports whether the token kind is a reserved word.
func (k Kind) IsKeyword() bool {
	_, ok := kindName[k]
	return ok && k > KindRParen
}

// Keywords returns every reserved word of the language in no
// particular order. The REPL uses it for completion.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}

	return words
}
