package lang

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// previewWidth caps intent previews so long strings stay on one line.
const previewWidth = 40

// Binding describes one name defined in an interpreter namespace.
type Binding struct {
	Name    string
	Kind    string
	Preview string
}

// Bindings returns every defined name with a short value preview,
// sorted by name within each namespace. Functions list their
// parameters, collections list their sizes.
func (in *Interp) Bindings() []Binding {
	var out []Binding

	for _, name := range slices.Sorted(maps.Keys(in.intents)) {
		text := in.intents[name]
		if len(text) > previewWidth {
			text = text[:previewWidth-3] + "..."
		}

		out = append(out, Binding{name, "intent", strconv.Quote(text)})
	}

	for _, name := range slices.Sorted(maps.Keys(in.variables)) {
		out = append(out, Binding{name, "variable", "= " + formatNum(in.variables[name])})
	}

	for _, name := range slices.Sorted(maps.Keys(in.calculations)) {
		out = append(out, Binding{name, "calculation", "= " + formatNum(in.calculations[name])})
	}

	for _, name := range slices.Sorted(maps.Keys(in.arrays)) {
		out = append(out, Binding{name, "array", fmt.Sprintf("[%d elements]", len(in.arrays[name]))})
	}

	for _, name := range slices.Sorted(maps.Keys(in.dicts)) {
		out = append(out, Binding{name, "dictionary", fmt.Sprintf("{%d keys}", len(in.dicts[name]))})
	}

	for _, name := range slices.Sorted(maps.Keys(in.functions)) {
		params := in.functions[name].params
		out = append(out, Binding{name, "function", "(" + strings.Join(params, " + ") + ")"})
	}

	return out
}

// Names returns every defined name across all namespaces, sorted and
// deduplicated. The REPL uses it for completion.
func (in *Interp) Names() []string {
	var names []string

	names = slices.AppendSeq(names, maps.Keys(in.intents))
	names = slices.AppendSeq(names, maps.Keys(in.variables))
	names = slices.AppendSeq(names, maps.Keys(in.calculations))
	names = slices.AppendSeq(names, maps.Keys(in.arrays))
	names = slices.AppendSeq(names, maps.Keys(in.dicts))
	names = slices.AppendSeq(names, maps.Keys(in.functions))

	slices.Sort(names)

	return slices.Compact(names)
}

// FunctionParams returns the parameter names of a defined function.
func (in *Interp) FunctionParams(name string) ([]string, bool) {
	fn, ok := in.functions[name]
	if !ok {
		return nil, false
	}

	return slices.Clone(fn.params), true
}
