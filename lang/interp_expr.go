package lang

import (
	"fmt"
	"math"
)

// eval reduces an expression to a number. Every value in the language
// is a float64; comparisons and logic yield 1 or 0.
func (in *Interp) eval(e Expr) (float64, error) {
	switch e := e.(type) {
	case *NumberExpr:
		return e.Value, nil
	case *RecallExpr:
		return in.recall(e.Name)
	case *BinaryExpr:
		return in.evalBinary(e)
	}

	return 0, ErrInvalidOperator.Wrap(fmt.Errorf("%T", e))
}

func (in *Interp) evalBinary(e *BinaryExpr) (float64, error) {
	// RANDOM, LENGTH, and SIZE ignore their placeholder operands, so
	// they must be dispatched before operand evaluation.
	switch e.Op {
	case KindRandom:
		return in.rand.next(), nil
	case KindLength:
		name := e.Left.(*RecallExpr).Name
		text, ok := in.intents[name]
		if !ok {
			return 0, nameError(ErrStringNotFound, name, mapKeys(in.intents))
		}
		return float64(len(text)), nil
	case KindSize:
		name := e.Left.(*RecallExpr).Name
		arr, err := in.array(name)
		if err != nil {
			return 0, err
		}
		return float64(len(arr)), nil
	}

	left, err := in.eval(e.Left)
	if err != nil {
		return 0, err
	}

	right, err := in.eval(e.Right)
	if err != nil {
		return 0, err
	}

	switch e.Op {
	case KindPlus:
		return left + right, nil
	case KindMinus:
		return left - right, nil
	case KindStar:
		return left * right, nil
	case KindSlash:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case KindPercent:
		if right == 0 {
			return 0, ErrModuloByZero
		}
		return math.Mod(left, right), nil
	case KindPower:
		return math.Pow(left, right), nil
	case KindEqual:
		return b2f(left == right), nil
	case KindNotEqual:
		return b2f(left != right), nil
	case KindLess:
		return b2f(left < right), nil
	case KindGreater:
		return b2f(left > right), nil
	case KindLessEqual:
		return b2f(left <= right), nil
	case KindGreaterEqual:
		return b2f(left >= right), nil
	case KindAnd:
		return b2f(left != 0 && right != 0), nil
	case KindOr:
		return b2f(left != 0 || right != 0), nil
	case KindNot:
		return b2f(right == 0), nil
	case KindMin:
		return math.Min(left, right), nil
	case KindMax:
		return math.Max(left, right), nil
	case KindFloor:
		return math.Floor(right), nil
	case KindCeil:
		return math.Ceil(right), nil
	case KindRound:
		return math.Round(right), nil
	}

	return 0, ErrInvalidOperator.Wrap(fmt.Errorf("%s", e.Op))
}

func b2f(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
