package lang

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

func (in *Interp) arrayStat(s *StatStmt) error {
	arr, err := in.array(s.Array)
	if err != nil {
		return err
	}

	var value float64

	switch s.Op {
	case KindMinOf, KindMaxOf:
		if len(arr) == 0 {
			return ErrEmptyArray.Wrap(errors.New(strconv.Quote(s.Array)))
		}

		if s.Op == KindMinOf {
			value = slices.Min(arr)
		} else {
			value = slices.Max(arr)
		}
	case KindAverage:
		value = mean(arr)
	case KindMedian:
		value = median(arr)
	case KindMode:
		value = mode(arr)
	case KindVariance:
		value = variance(arr)
	case KindStddev:
		value = math.Sqrt(variance(arr))
	}

	in.variables[s.Result] = value
	in.printf("%s of '%s' is %s",
		statLabel(s.Op), s.Array, formatNum(value))

	return nil
}

func statLabel(op Kind) string {
	label := strings.ReplaceAll(op.String(), "_", " ")

	return strings.ToUpper(label[:1]) + strings.ToLower(label[1:])
}

func mean(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	total := 0.0
	for _, v := range arr {
		total += v
	}

	return total / float64(len(arr))
}

func median(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	sorted := slices.Clone(arr)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// mode returns the most frequent value, breaking ties toward the
// smallest value so the answer is deterministic.
func mode(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	counts := make(map[float64]int, len(arr))
	for _, v := range arr {
		counts[v]++
	}

	best := arr[0]
	bestCount := 0

	for v, count := range counts {
		if count > bestCount || (count == bestCount && v < best) {
			best = v
			bestCount = count
		}
	}

	return best
}

// variance is the population variance.
func variance(arr []float64) float64 {
	if len(arr) == 0 {
		return 0
	}

	m := mean(arr)

	total := 0.0
	for _, v := range arr {
		total += (v - m) * (v - m)
	}

	return total / float64(len(arr))
}
