package lang

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// execCollect handles the collection, string, statistic, and I/O
// statements left over from the core dispatch in execStmt.
func (in *Interp) execCollect(stmt Stmt) (outcome, error) {
	switch s := stmt.(type) {
	case *ArrayCreateStmt:
		in.arrays[s.Name] = []float64{}
	case *ArrayPushStmt:
		return outcome{}, in.arrayPush(s)
	case *ArrayPopStmt:
		return outcome{}, in.arrayPop(s)
	case *ArraySizeStmt:
		arr, err := in.array(s.Array)
		if err != nil {
			return outcome{}, err
		}
		in.variables[s.Result] = float64(len(arr))
	case *ArrayGetStmt:
		return outcome{}, in.arrayGet(s)
	case *ArraySetStmt:
		return outcome{}, in.arraySet(s)
	case *SortStmt:
		return outcome{}, in.arraySort(s)
	case *FilterStmt:
		return outcome{}, in.arrayFilter(s)
	case *ReverseStmt:
		arr, err := in.array(s.Array)
		if err != nil {
			return outcome{}, err
		}
		slices.Reverse(arr)
		in.printf("Array '%s' reversed", s.Array)
	case *MapStmt:
		return outcome{}, in.arrayMap(s)
	case *SumStmt:
		arr, err := in.array(s.Array)
		if err != nil {
			return outcome{}, err
		}
		total := 0.0
		for _, v := range arr {
			total += v
		}
		in.variables[s.Result] = total
		in.printf("Sum of array '%s' is %s", s.Array, formatNum(total))
	case *JoinStmt:
		return outcome{}, in.arrayJoin(s)
	case *RangeStmt:
		return outcome{}, in.arrayRange(s)
	case *FoldStmt:
		return outcome{}, in.arrayFold(s)
	case *PredicateStmt:
		return outcome{}, in.arrayPredicate(s)
	case *UniqueStmt:
		arr, err := in.array(s.Array)
		if err != nil {
			return outcome{}, err
		}
		seen := make(map[float64]bool, len(arr))
		unique := make([]float64, 0, len(arr))
		for _, v := range arr {
			if !seen[v] {
				seen[v] = true
				unique = append(unique, v)
			}
		}
		in.arrays[s.Result] = unique
		in.printf("Created unique array '%s'", s.Result)
	case *ConcatStmt:
		a, err := in.array(s.A)
		if err != nil {
			return outcome{}, err
		}
		b, err := in.array(s.B)
		if err != nil {
			return outcome{}, err
		}
		in.arrays[s.Result] = append(slices.Clone(a), b...)
		in.printf("Concatenated arrays into '%s'", s.Result)
	case *TakeStmt:
		return outcome{}, in.arrayTake(s)
	case *DropStmt:
		return outcome{}, in.arrayDrop(s)
	case *SliceStmt:
		return outcome{}, in.arraySlice(s)
	case *ZipStmt:
		return outcome{}, in.arrayZip(s)
	case *UnzipStmt:
		return outcome{}, in.arrayUnzip(s)
	case *FlattenStmt:
		arr, err := in.array(s.Array)
		if err != nil {
			return outcome{}, err
		}
		in.arrays[s.Result] = slices.Clone(arr)
		in.printf("Flattened array '%s' into '%s'", s.Array, s.Result)
	case *IncludesStmt:
		return outcome{}, in.arrayIncludes(s)
	case *IndexOfStmt:
		return outcome{}, in.arrayIndexOf(s)
	case *GroupByStmt:
		return outcome{}, in.arrayGroupBy(s)
	case *PartitionStmt:
		return outcome{}, in.arrayPartition(s)
	case *SetOpStmt:
		return outcome{}, in.arraySetOp(s)
	case *ClearStmt:
		return outcome{}, in.clear(s)
	case *SwapStmt:
		return outcome{}, in.arraySwap(s)
	case *ShuffleStmt:
		return outcome{}, in.arrayShuffle(s)
	case *SampleStmt:
		return outcome{}, in.arraySample(s)
	case *CloneStmt:
		return outcome{}, in.clone(s)
	case *StatStmt:
		return outcome{}, in.arrayStat(s)

	case *DictCreateStmt, *DictPutStmt, *DictFetchStmt, *DictKeysStmt,
		*DictValuesStmt, *DictDeleteStmt, *MergeStmt:
		return outcome{}, in.execDict(stmt)

	case *StringTransformStmt, *ReplaceStmt, *SplitStmt, *SubstringStmt,
		*ContainsStmt, *AffixStmt, *IndexOfStrStmt, *PadStmt:
		return outcome{}, in.execString(stmt)

	case *ReadFileStmt, *WriteFileStmt, *ExistsStmt, *SleepStmt,
		*InputStmt, *ExportStmt:
		return outcome{}, in.execIO(stmt)

	case *ImportStmt:
		return in.execImport(s)
	}

	return outcome{}, nil
}

// array resolves an array name or fails with a suggestion.
func (in *Interp) array(name string) ([]float64, error) {
	arr, ok := in.arrays[name]
	if !ok {
		return nil, nameError(ErrArrayNotFound, name, mapKeys(in.arrays))
	}

	return arr, nil
}

// saveVars snapshots scratch variable bindings so scan statements can
// expose "item", "index", and "acc" without clobbering script state.
func (in *Interp) saveVars(names ...string) func() {
	saved := make(map[string]float64, len(names))
	present := make(map[string]bool, len(names))

	for _, name := range names {
		if value, ok := in.variables[name]; ok {
			saved[name] = value
			present[name] = true
		}
	}

	return func() {
		for _, name := range names {
			if present[name] {
				in.variables[name] = saved[name]
			} else {
				delete(in.variables, name)
			}
		}
	}
}

func (in *Interp) arrayPush(s *ArrayPushStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	value, err := in.eval(s.Value)
	if err != nil {
		return err
	}

	in.arrays[s.Array] = append(arr, value)

	return nil
}

func (in *Interp) arrayPop(s *ArrayPopStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	if len(arr) == 0 {
		return ErrEmptyArray.Wrap(errors.New(strconv.Quote(s.Array)))
	}

	in.variables[s.Result] = arr[len(arr)-1]
	in.arrays[s.Array] = arr[:len(arr)-1]

	return nil
}

func (in *Interp) arrayGet(s *ArrayGetStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	index, err := in.eval(s.Index)
	if err != nil {
		return err
	}

	i := int(index)
	if i < 0 || i >= len(arr) {
		return ErrIndexRange.Wrap(fmt.Errorf(
			"index %d out of range for array '%s' of length %d", i, s.Array, len(arr)))
	}

	in.variables[s.Result] = arr[i]

	return nil
}

func (in *Interp) arraySet(s *ArraySetStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	index, err := in.eval(s.Index)
	if err != nil {
		return err
	}

	value, err := in.eval(s.Value)
	if err != nil {
		return err
	}

	i := int(index)
	if i < 0 || i >= len(arr) {
		return ErrIndexRange.Wrap(fmt.Errorf(
			"index %d out of range for array '%s' of length %d", i, s.Array, len(arr)))
	}

	arr[i] = value

	return nil
}

func (in *Interp) arraySort(s *SortStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	slices.Sort(arr)

	order := "ascending"
	if !s.Ascending {
		slices.Reverse(arr)
		order = "descending"
	}

	in.printf("Array '%s' sorted %s", s.Array, order)

	return nil
}

func (in *Interp) arrayFilter(s *FilterStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	restore := in.saveVars("item", "index")
	defer restore()

	filtered := []float64{}

	for i, v := range slices.Clone(arr) {
		in.variables["item"] = v
		in.variables["index"] = float64(i)

		keep, err := in.eval(s.Cond)
		if err != nil {
			return err
		}

		if keep != 0 {
			filtered = append(filtered, v)
		}
	}

	in.arrays[s.Result] = filtered
	in.printf("Filtered %s into %s with %d elements", s.Array, s.Result, len(filtered))

	return nil
}

func (in *Interp) arrayMap(s *MapStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	restore := in.saveVars("item", "index")
	defer restore()

	mapped := make([]float64, 0, len(arr))

	for i, v := range slices.Clone(arr) {
		in.variables["item"] = v
		in.variables["index"] = float64(i)

		value, err := in.eval(s.Expr)
		if err != nil {
			return err
		}

		mapped = append(mapped, value)
	}

	in.arrays[s.Result] = mapped
	in.printf("Mapped %s into %s with %d elements", s.Array, s.Result, len(mapped))

	return nil
}

func (in *Interp) arrayJoin(s *JoinStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	parts := make([]string, len(arr))
	for i, v := range arr {
		parts[i] = formatNum(v)
	}

	joined := strings.Join(parts, s.Separator)
	in.intents[s.Result] = joined
	in.printf("Joined array '%s' into string: %s", s.Array, joined)

	return nil
}

func (in *Interp) arrayRange(s *RangeStmt) error {
	start, err := in.eval(s.Start)
	if err != nil {
		return err
	}

	end, err := in.eval(s.End)
	if err != nil {
		return err
	}

	step := 1.0
	if s.Step != nil {
		step, err = in.eval(s.Step)
		if err != nil {
			return err
		}
	}

	// A zero step yields an empty array rather than a hung loop.
	values := []float64{}
	for v := start; (step > 0 && v <= end) || (step < 0 && v >= end); v += step {
		values = append(values, v)
	}

	in.arrays[s.Result] = values
	in.printf("Generated range array '%s'", s.Result)

	return nil
}

func (in *Interp) arrayFold(s *FoldStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	acc, err := in.eval(s.Initial)
	if err != nil {
		return err
	}

	restore := in.saveVars("acc", "item")
	defer restore()

	for _, v := range slices.Clone(arr) {
		in.variables["acc"] = acc
		in.variables["item"] = v

		acc, err = in.eval(s.Op)
		if err != nil {
			return err
		}
	}

	in.variables[s.Result] = acc
	in.printf("Folded array '%s' into result: %s", s.Array, formatNum(acc))

	return nil
}

func (in *Interp) arrayPredicate(s *PredicateStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	restore := in.saveVars("item")
	defer restore()

	matches := 0

	for _, v := range slices.Clone(arr) {
		in.variables["item"] = v

		ok, err := in.eval(s.Cond)
		if err != nil {
			return err
		}

		if ok != 0 {
			if s.Op == KindFind {
				in.variables[s.Result] = v
				in.printf("Found value: %s", formatNum(v))

				return nil
			}

			matches++
		}
	}

	switch s.Op {
	case KindFind:
		// No match leaves the result untouched.
	case KindCount:
		in.variables[s.Result] = float64(matches)
		in.printf("Counted %d items matching condition in '%s'", matches, s.Array)
	case KindAll:
		in.variables[s.Result] = b2f(matches == len(arr))
	case KindAny:
		in.variables[s.Result] = b2f(matches > 0)
	}

	return nil
}

func (in *Interp) arrayTake(s *TakeStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	count, err := in.eval(s.Count)
	if err != nil {
		return err
	}

	n := min(max(int(count), 0), len(arr))
	in.arrays[s.Result] = slices.Clone(arr[:n])
	in.printf("Took %d elements into '%s'", n, s.Result)

	return nil
}

func (in *Interp) arrayDrop(s *DropStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	count, err := in.eval(s.Count)
	if err != nil {
		return err
	}

	n := min(max(int(count), 0), len(arr))
	in.arrays[s.Result] = slices.Clone(arr[n:])
	in.printf("Dropped %d elements, result in '%s'", n, s.Result)

	return nil
}

func (in *Interp) arraySlice(s *SliceStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	startVal, err := in.eval(s.Start)
	if err != nil {
		return err
	}

	endVal, err := in.eval(s.End)
	if err != nil {
		return err
	}

	start := min(max(int(startVal), 0), len(arr))
	end := min(max(int(endVal), 0), len(arr))

	if start > end {
		start = end
	}

	in.arrays[s.Result] = slices.Clone(arr[start:end])
	in.printf("Sliced '%s' into '%s'", s.Array, s.Result)

	return nil
}

func (in *Interp) arrayZip(s *ZipStmt) error {
	a, err := in.array(s.A)
	if err != nil {
		return err
	}

	b, err := in.array(s.B)
	if err != nil {
		return err
	}

	n := min(len(a), len(b))
	zipped := make([]float64, 0, 2*n)

	for i := range n {
		zipped = append(zipped, a[i], b[i])
	}

	in.arrays[s.Result] = zipped
	in.printf("Zipped arrays '%s' and '%s' into '%s'", s.A, s.B, s.Result)

	return nil
}

func (in *Interp) arrayUnzip(s *UnzipStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	var evens, odds []float64
	for i, v := range arr {
		if i%2 == 0 {
			evens = append(evens, v)
		} else {
			odds = append(odds, v)
		}
	}

	in.arrays[s.ResultA] = evens
	in.arrays[s.ResultB] = odds
	in.printf("Unzipped '%s' into '%s' and '%s'", s.Array, s.ResultA, s.ResultB)

	return nil
}

func (in *Interp) arrayIncludes(s *IncludesStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	value, err := in.eval(s.Value)
	if err != nil {
		return err
	}

	in.variables[s.Result] = b2f(slices.Contains(arr, value))

	return nil
}

func (in *Interp) arrayIndexOf(s *IndexOfStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	value, err := in.eval(s.Value)
	if err != nil {
		return err
	}

	in.variables[s.Result] = float64(slices.Index(arr, value))

	return nil
}

func (in *Interp) arrayGroupBy(s *GroupByStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	restore := in.saveVars("item")
	defer restore()

	groups := map[string]float64{}

	for _, v := range slices.Clone(arr) {
		in.variables["item"] = v

		key, err := in.eval(s.Key)
		if err != nil {
			return err
		}

		groups[formatNum(key)]++
	}

	in.dicts[s.Result] = groups
	in.printf("Grouped '%s' into '%s'", s.Array, s.Result)

	return nil
}

func (in *Interp) arrayPartition(s *PartitionStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	restore := in.saveVars("item")
	defer restore()

	pass := []float64{}
	fail := []float64{}

	for _, v := range slices.Clone(arr) {
		in.variables["item"] = v

		ok, err := in.eval(s.Cond)
		if err != nil {
			return err
		}

		if ok != 0 {
			pass = append(pass, v)
		} else {
			fail = append(fail, v)
		}
	}

	in.arrays[s.ResultPass] = pass
	in.arrays[s.ResultFail] = fail
	in.printf("Partitioned '%s' into '%s' and '%s'", s.Array, s.ResultPass, s.ResultFail)

	return nil
}

func (in *Interp) arraySetOp(s *SetOpStmt) error {
	a, err := in.array(s.A)
	if err != nil {
		return err
	}

	b, err := in.array(s.B)
	if err != nil {
		return err
	}

	inB := make(map[float64]bool, len(b))
	for _, v := range b {
		inB[v] = true
	}

	seen := map[float64]bool{}
	result := []float64{}

	add := func(v float64) {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}

	switch s.Op {
	case KindDiff:
		for _, v := range a {
			if !inB[v] {
				add(v)
			}
		}
		in.printf("Difference of '%s' and '%s' stored in '%s'", s.A, s.B, s.Result)
	case KindIntersection:
		for _, v := range a {
			if inB[v] {
				add(v)
			}
		}
		in.printf("Intersection of '%s' and '%s' stored in '%s'", s.A, s.B, s.Result)
	case KindUnion:
		for _, v := range a {
			add(v)
		}
		for _, v := range b {
			add(v)
		}
		in.printf("Union of '%s' and '%s' stored in '%s'", s.A, s.B, s.Result)
	}

	in.arrays[s.Result] = result

	return nil
}

func (in *Interp) clear(s *ClearStmt) error {
	if _, ok := in.arrays[s.Target]; ok {
		in.arrays[s.Target] = []float64{}
		in.printf("Cleared array '%s'", s.Target)

		return nil
	}

	if _, ok := in.dicts[s.Target]; ok {
		in.dicts[s.Target] = map[string]float64{}
		in.printf("Cleared dictionary '%s'", s.Target)

		return nil
	}

	pool := append(mapKeys(in.arrays), mapKeys(in.dicts)...)

	return nameError(ErrArrayNotFound, s.Target, pool)
}

func (in *Interp) arraySwap(s *SwapStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	iVal, err := in.eval(s.I)
	if err != nil {
		return err
	}

	jVal, err := in.eval(s.J)
	if err != nil {
		return err
	}

	i, j := int(iVal), int(jVal)
	if i < 0 || i >= len(arr) || j < 0 || j >= len(arr) {
		return ErrIndexRange.Wrap(fmt.Errorf(
			"indices %d and %d out of range for array '%s' of length %d",
			i, j, s.Array, len(arr)))
	}

	arr[i], arr[j] = arr[j], arr[i]
	in.printf("Swapped elements %d and %d in '%s'", i, j, s.Array)

	return nil
}

func (in *Interp) arrayShuffle(s *ShuffleStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	for i := range arr {
		j := min(int(in.rand.next()*float64(len(arr))), len(arr)-1)
		arr[i], arr[j] = arr[j], arr[i]
	}

	in.printf("Shuffled array '%s'", s.Array)

	return nil
}

func (in *Interp) arraySample(s *SampleStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	if len(arr) == 0 {
		return ErrEmptyArray.Wrap(errors.New(strconv.Quote(s.Array)))
	}

	i := min(int(in.rand.next()*float64(len(arr))), len(arr)-1)
	value := arr[i]

	in.variables[s.Result] = value
	in.printf("Sampled value: %s", formatNum(value))

	return nil
}

func (in *Interp) clone(s *CloneStmt) error {
	if arr, ok := in.arrays[s.Source]; ok {
		in.arrays[s.Dest] = slices.Clone(arr)
		in.printf("Cloned array '%s' to '%s'", s.Source, s.Dest)

		return nil
	}

	if dict, ok := in.dicts[s.Source]; ok {
		clone := make(map[string]float64, len(dict))
		for k, v := range dict {
			clone[k] = v
		}
		in.dicts[s.Dest] = clone
		in.printf("Cloned dictionary '%s' to '%s'", s.Source, s.Dest)

		return nil
	}

	pool := append(mapKeys(in.arrays), mapKeys(in.dicts)...)

	return nameError(ErrArrayNotFound, s.Source, pool)
}
