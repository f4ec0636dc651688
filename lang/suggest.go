package lang

import "github.com/sahilm/fuzzy"

// suggest returns the closest candidate to name, or "" when nothing
// ranks. Runtime name errors carry the result as a did-you-mean hint.
func suggest(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}

	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// scalarNames collects every name RECALL could resolve, innermost
// frame first.
func (in *Interp) scalarNames() []string {
	names := make([]string, 0, len(in.variables)+len(in.calculations))

	if len(in.callStack) > 0 {
		for name := range in.callStack[len(in.callStack)-1] {
			names = append(names, name)
		}
	}

	for name := range in.variables {
		names = append(names, name)
	}

	for name := range in.calculations {
		names = append(names, name)
	}

	return names
}

func mapKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	return names
}
