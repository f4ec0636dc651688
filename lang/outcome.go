package lang

// signal distinguishes how a statement sequence finished. Loop and
// return controls travel as values alongside the error return, so a
// genuine runtime error can never be confused with BREAK, CONTINUE, or
// RETURN, and TRY/CATCH only ever catches real errors.
type signal uint8

const (
	sigNormal signal = iota
	sigBreak
	sigContinue
	sigReturn
)

// outcome is the non-error result of executing statements. ret is only
// meaningful when sig is sigReturn.
type outcome struct {
	sig signal
	ret float64
}
