package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/anubhavg-icpl/anubhav-lang/log"
)

// Interp executes parsed statements. One interpreter owns five
// namespaces (intents, calculations, variables, arrays, dictionaries),
// the function table, the call stack, and the deterministic random
// generator. All I/O flows through the injected FileStore, Console,
// and Clock.
type Interp struct {
	intents      map[string]string
	calculations map[string]float64
	variables    map[string]float64
	arrays       map[string][]float64
	dicts        map[string]map[string]float64
	functions    map[string]function
	callStack    []map[string]float64
	rand         lcg
	files        FileStore
	console      Console
	clock        Clock
	importing    map[string]bool
	logger       log.Logger
}

type function struct {
	params []string
	body   []Stmt
}

// Option configures an Interp.
type Option func(*Interp)

// WithFiles substitutes the file store.
func WithFiles(fs FileStore) Option {
	return func(in *Interp) { in.files = fs }
}

// WithConsole substitutes the console.
func WithConsole(c Console) Option {
	return func(in *Interp) { in.console = c }
}

// WithClock substitutes the clock.
func WithClock(c Clock) Option {
	return func(in *Interp) { in.clock = c }
}

// WithLogger attaches a structured logger for trace output.
func WithLogger(l log.Logger) Option {
	return func(in *Interp) { in.logger = l }
}

// WithSeed overrides the starting state of the random generator.
func WithSeed(seed uint64) Option {
	return func(in *Interp) { in.rand.seed = seed }
}

// New returns an interpreter bound to the operating system by default.
func New(opts ...Option) *Interp {
	in := &Interp{
		intents:      map[string]string{},
		calculations: map[string]float64{},
		variables:    map[string]float64{},
		arrays:       map[string][]float64{},
		dicts:        map[string]map[string]float64{},
		functions:    map[string]function{},
		rand:         lcg{seed: DefaultSeed},
		files:        OSFiles{},
		console:      NewStdConsole(),
		clock:        SystemClock{},
		importing:    map[string]bool{},
	}

	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Run parses src and executes it.
func (in *Interp) Run(src string) error {
	stmts, err := NewParser(src).Parse()
	if err != nil {
		return err
	}

	return in.Execute(stmts)
}

// Execute runs statements at the top level. A BREAK, CONTINUE, or
// RETURN escaping every enclosing construct is a runtime error here
// rather than a silent no-op.
func (in *Interp) Execute(stmts []Stmt) error {
	out, err := in.exec(stmts)
	if err != nil {
		return err
	}

	switch out.sig {
	case sigBreak:
		return ErrStrayBreak
	case sigContinue:
		return ErrStrayContinue
	case sigReturn:
		return ErrStrayReturn
	}

	return nil
}

// exec runs a statement sequence, stopping early when a statement
// raises a control signal.
func (in *Interp) exec(stmts []Stmt) (outcome, error) {
	for _, stmt := range stmts {
		out, err := in.execStmt(stmt)
		if err != nil {
			return outcome{}, err
		}

		if out.sig != sigNormal {
			return out, nil
		}
	}

	return outcome{}, nil
}

func (in *Interp) execStmt(stmt Stmt) (outcome, error) {
	in.logger.Trace("exec", slog.String("stmt", fmt.Sprintf("%T", stmt)))

	switch s := stmt.(type) {
	case *IntentStmt:
		in.intents[s.Name] = s.Message
	case *ManifestStmt:
		return outcome{}, in.manifest(s)
	case *CalculateStmt:
		value, err := in.eval(s.Expr)
		if err != nil {
			return outcome{}, err
		}
		in.calculations[s.Name] = value
	case *StoreStmt:
		value, err := in.eval(s.Expr)
		if err != nil {
			return outcome{}, err
		}
		in.variables[s.Name] = value
	case *CombineStmt:
		var combined strings.Builder
		for _, part := range s.Parts {
			combined.WriteString(in.resolvePart(part))
		}
		in.intents[s.Name] = combined.String()
	case *PrintStmt:
		var output strings.Builder
		for _, part := range s.Parts {
			output.WriteString(in.resolvePart(part))
			output.WriteByte(' ')
		}
		in.console.Print(strings.TrimSpace(output.String()))
	case *RepeatStmt:
		return in.execRepeat(s)
	case *IfStmt:
		cond, err := in.eval(s.Cond)
		if err != nil {
			return outcome{}, err
		}
		if cond != 0 {
			return in.exec(s.Then)
		}
		return in.exec(s.Else)
	case *WhileStmt:
		return in.execWhile(s)
	case *IncrementStmt:
		in.variables[s.Name]++
	case *DecrementStmt:
		in.variables[s.Name]--
	case *ForStmt:
		return in.execFor(s)
	case *AssertStmt:
		return outcome{}, in.execAssert(s)
	case *TryStmt:
		out, err := in.exec(s.Try)
		if err != nil {
			// Only true runtime errors reach here; control
			// signals passed through as outcomes above.
			in.logger.Debug("caught", slog.Any("error", WrapError(err)))
			return in.exec(s.Catch)
		}
		return out, nil
	case *SwitchStmt:
		return in.execSwitch(s)
	case *BreakStmt:
		return outcome{sig: sigBreak}, nil
	case *ContinueStmt:
		return outcome{sig: sigContinue}, nil
	case *FunctionStmt:
		in.functions[s.Name] = function{params: s.Params, body: s.Body}
		in.printf("Function '%s' defined with %d parameters", s.Name, len(s.Params))
	case *CallStmt:
		return outcome{}, in.execCall(s)
	case *ReturnStmt:
		ret := 0.0
		if s.Value != nil {
			value, err := in.eval(s.Value)
			if err != nil {
				return outcome{}, err
			}
			ret = value
		}
		return outcome{sig: sigReturn, ret: ret}, nil
	case *TypeStmt:
		in.intents[s.Result] = in.typeOf(s.Name)
	case *ParseStmt:
		source := s.Source
		if text, ok := in.intents[s.Source]; ok {
			source = text
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(source), 64)
		if err != nil {
			value = 0
		}
		in.variables[s.Result] = value
	case *ToStringStmt:
		value, err := in.eval(s.Value)
		if err != nil {
			return outcome{}, err
		}
		in.intents[s.Name] = formatNum(value)
	default:
		return in.execCollect(stmt)
	}

	return outcome{}, nil
}

func (in *Interp) manifest(s *ManifestStmt) error {
	line, ok := in.intents[s.Name]
	if !ok {
		value, okc := in.calculations[s.Name]
		if !okc {
			pool := append(mapKeys(in.intents), mapKeys(in.calculations)...)
			return nameError(ErrNameNotFound, s.Name, pool)
		}
		line = formatNum(value)
	}

	if s.HasWith {
		line += " " + s.With
	}

	in.console.Print(line)

	return nil
}

func (in *Interp) execRepeat(s *RepeatStmt) (outcome, error) {
	count, err := in.eval(s.Count)
	if err != nil {
		return outcome{}, err
	}

	for range int(count) {
		out, err := in.exec(s.Body)
		if err != nil {
			return outcome{}, err
		}

		switch out.sig {
		case sigBreak:
			return outcome{}, nil
		case sigContinue:
			continue
		case sigReturn:
			return out, nil
		}
	}

	return outcome{}, nil
}

func (in *Interp) execWhile(s *WhileStmt) (outcome, error) {
	for {
		cond, err := in.eval(s.Cond)
		if err != nil {
			return outcome{}, err
		}

		if cond == 0 {
			return outcome{}, nil
		}

		out, err := in.exec(s.Body)
		if err != nil {
			return outcome{}, err
		}

		switch out.sig {
		case sigBreak:
			return outcome{}, nil
		case sigReturn:
			return out, nil
		}
	}
}

func (in *Interp) execFor(s *ForStmt) (outcome, error) {
	start, err := in.eval(s.Start)
	if err != nil {
		return outcome{}, err
	}

	end, err := in.eval(s.End)
	if err != nil {
		return outcome{}, err
	}

	step := 1.0
	if s.Step != nil {
		step, err = in.eval(s.Step)
		if err != nil {
			return outcome{}, err
		}
	}

	// The step sign picks the termination test; a zero step runs
	// nothing at all.
	for current := start; (step > 0 && current <= end) || (step < 0 && current >= end); current += step {
		in.variables[s.Var] = current

		out, err := in.exec(s.Body)
		if err != nil {
			return outcome{}, err
		}

		switch out.sig {
		case sigBreak:
			return outcome{}, nil
		case sigReturn:
			return out, nil
		}
		// CONTINUE falls through to the step.
	}

	return outcome{}, nil
}

func (in *Interp) execAssert(s *AssertStmt) error {
	value, err := in.eval(s.Cond)
	if err != nil {
		return err
	}

	if value == 0 {
		if s.HasMessage {
			return ErrAssertFailed.Wrap(errors.New(s.Message))
		}
		return ErrAssertFailed
	}

	in.console.Print("✓ Assertion passed")

	return nil
}

func (in *Interp) execSwitch(s *SwitchStmt) (outcome, error) {
	value, err := in.eval(s.Expr)
	if err != nil {
		return outcome{}, err
	}

	for _, c := range s.Cases {
		caseValue, err := in.eval(c.Value)
		if err != nil {
			return outcome{}, err
		}

		if value == caseValue {
			return in.exec(c.Body)
		}
	}

	return in.exec(s.Default)
}

func (in *Interp) execCall(s *CallStmt) error {
	fn, ok := in.functions[s.Name]
	if !ok {
		return nameError(ErrFunctionNotFound, s.Name, mapKeys(in.functions))
	}

	args := make([]float64, len(s.Args))
	for i, arg := range s.Args {
		value, err := in.eval(arg)
		if err != nil {
			return err
		}
		args[i] = value
	}

	if len(args) != len(fn.params) {
		return ErrArityMismatch.Wrap(fmt.Errorf(
			"function '%s' expects %d parameters, got %d",
			s.Name, len(fn.params), len(args)))
	}

	frame := make(map[string]float64, len(fn.params))
	for i, param := range fn.params {
		frame[param] = args[i]
	}

	in.callStack = append(in.callStack, frame)
	out, err := in.exec(fn.body)
	in.callStack = in.callStack[:len(in.callStack)-1]

	if err != nil {
		return err
	}

	switch out.sig {
	case sigBreak:
		return ErrStrayBreak
	case sigContinue:
		return ErrStrayContinue
	}

	ret := 0.0
	if out.sig == sigReturn {
		ret = out.ret
	}

	if s.Result != "" {
		in.variables[s.Result] = ret
	}

	return nil
}

// recall resolves a name the way RECALL does: innermost call frame,
// then variables, then calculations. Intents are never consulted.
func (in *Interp) recall(name string) (float64, error) {
	if len(in.callStack) > 0 {
		if value, ok := in.callStack[len(in.callStack)-1][name]; ok {
			return value, nil
		}
	}

	if value, ok := in.variables[name]; ok {
		return value, nil
	}

	if value, ok := in.calculations[name]; ok {
		return value, nil
	}

	return 0, nameError(ErrNameNotFound, name, in.scalarNames())
}

// resolvePart expands a ${name} placeholder against intents, then
// calculations, then variables. Anything else passes through as a
// literal.
func (in *Interp) resolvePart(part string) string {
	if !strings.HasPrefix(part, "${") || !strings.HasSuffix(part, "}") {
		return part
	}

	name := part[2 : len(part)-1]

	if text, ok := in.intents[name]; ok {
		return text
	}

	if value, ok := in.calculations[name]; ok {
		return formatNum(value)
	}

	if value, ok := in.variables[name]; ok {
		return formatNum(value)
	}

	return "<" + name + " not found>"
}

func (in *Interp) typeOf(name string) string {
	switch {
	case mapHas(in.variables, name):
		return "number"
	case mapHas(in.intents, name):
		return "string"
	case mapHas(in.arrays, name):
		return "array"
	case mapHas(in.dicts, name):
		return "dictionary"
	}

	return "undefined"
}

func mapHas[V any](m map[string]V, name string) bool {
	_, ok := m[name]
	return ok
}

// printf writes one formatted line to the script console.
func (in *Interp) printf(format string, args ...any) {
	in.console.Print(fmt.Sprintf(format, args...))
}

// formatNum renders a value the way scripts see numbers: no exponent,
// no trailing zeros, integers without a decimal point.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nameError(base *Error, name string, pool []string) error {
	e := base.Wrap(errors.New(strconv.Quote(name))).With(slog.String("name", name))

	if match := suggest(name, pool); match != "" && match != name {
		e = e.With(slog.String("did_you_mean", match))
	}

	return e
}
