package lang

import (
	"fmt"
	"maps"
	"slices"
)

// dict resolves a dictionary name or fails with a suggestion.
func (in *Interp) dict(name string) (map[string]float64, error) {
	d, ok := in.dicts[name]
	if !ok {
		return nil, nameError(ErrDictNotFound, name, mapKeys(in.dicts))
	}

	return d, nil
}

func (in *Interp) execDict(stmt Stmt) error {
	switch s := stmt.(type) {
	case *DictCreateStmt:
		in.dicts[s.Name] = map[string]float64{}
		in.printf("Dictionary '%s' created", s.Name)
	case *DictPutStmt:
		d, err := in.dict(s.Dict)
		if err != nil {
			return err
		}

		value, err := in.eval(s.Value)
		if err != nil {
			return err
		}

		d[s.Key] = value
		in.printf("Set %s['%s'] = %s", s.Dict, s.Key, formatNum(value))
	case *DictFetchStmt:
		d, err := in.dict(s.Dict)
		if err != nil {
			return err
		}

		value, ok := d[s.Key]
		if !ok {
			return ErrKeyNotFound.Wrap(fmt.Errorf(
				"key '%s' not found in dictionary '%s'", s.Key, s.Dict))
		}

		in.variables[s.Result] = value
		in.printf("Fetched %s['%s'] = %s", s.Dict, s.Key, formatNum(value))
	case *DictKeysStmt:
		d, err := in.dict(s.Dict)
		if err != nil {
			return err
		}

		// Keys are strings and arrays hold numbers, so the result is
		// the key positions 0..n-1.
		positions := make([]float64, len(d))
		for i := range positions {
			positions[i] = float64(i)
		}

		in.arrays[s.Result] = positions
		in.printf("Extracted keys from '%s'", s.Dict)
	case *DictValuesStmt:
		d, err := in.dict(s.Dict)
		if err != nil {
			return err
		}

		// Iterate keys in sorted order for a deterministic result.
		values := make([]float64, 0, len(d))
		for _, key := range slices.Sorted(maps.Keys(d)) {
			values = append(values, d[key])
		}

		in.arrays[s.Result] = values
		in.printf("Extracted values from '%s' to array '%s'", s.Dict, s.Result)
	case *DictDeleteStmt:
		d, err := in.dict(s.Dict)
		if err != nil {
			return err
		}

		delete(d, s.Key)
		in.printf("Deleted key '%s' from '%s'", s.Key, s.Dict)
	case *MergeStmt:
		a, err := in.dict(s.A)
		if err != nil {
			return err
		}

		b, err := in.dict(s.B)
		if err != nil {
			return err
		}

		merged := make(map[string]float64, len(a)+len(b))
		maps.Copy(merged, a)
		maps.Copy(merged, b)

		in.dicts[s.Result] = merged
		in.printf("Merged '%s' and '%s' into '%s'", s.A, s.B, s.Result)
	}

	return nil
}
