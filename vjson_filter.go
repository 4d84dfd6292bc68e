// Created by dhawalhost (2025-11-10 15:52:11)
package vjson

import (
	"fmt"
	"regexp"
)

// evalFilter decides whether a candidate node passes a filter tree. Sub-path
// operands are evaluated against the document root for '$' paths and against
// the candidate for '@' paths.
func evalFilter(n *filterNode, root, context *Value) (bool, error) {
	if n == nil {
		return false, nil
	}
	switch n.kind {
	case filterOr:
		ok, err := evalFilter(n.left, root, context)
		if err != nil || ok {
			return ok, err
		}
		return evalFilter(n.right, root, context)
	case filterAnd:
		ok, err := evalFilter(n.left, root, context)
		if err != nil || !ok {
			return ok, err
		}
		return evalFilter(n.right, root, context)
	case filterNot:
		ok, err := evalFilter(n.left, root, context)
		return !ok, err
	case filterComparison:
		lhs, err := evalOperand(&n.lhs, root, context)
		if err != nil {
			return false, err
		}
		rhs, err := evalOperand(&n.rhs, root, context)
		if err != nil {
			return false, err
		}
		return compareOperands(n.op, lhs, rhs)
	case filterExists:
		nodes, err := evalOperand(&n.operand, root, context)
		if err != nil {
			return false, err
		}
		return anyTruthy(nodes), nil
	}
	return false, nil
}

// evalOperand resolves an operand to the set of nodes it denotes. Literals
// and function results are single-element sets; paths may match any number
// of nodes.
func evalOperand(op *filterOperand, root, context *Value) ([]*Value, error) {
	switch op.kind {
	case operandLiteral:
		return []*Value{op.literal}, nil
	case operandPath:
		start := root
		if op.path.relative {
			start = context
		}
		return evalSteps(start, op.path.steps, root)
	case operandFunction:
		v, err := evalFunction(op.fn, root, context)
		if err != nil {
			return nil, err
		}
		return []*Value{v}, nil
	}
	return nil, nil
}

func evalFunction(fn *functionCall, root, context *Value) (*Value, error) {
	if len(fn.args) != 1 {
		return nil, fmt.Errorf("jsonpath filter function expects exactly one argument")
	}
	arg, err := evalOperand(&fn.args[0], root, context)
	if err != nil {
		return nil, err
	}
	if len(arg) == 0 {
		return NewLong(0), nil
	}
	target := arg[0]
	switch fn.name {
	case fnLength:
		return NewLong(lengthOf(target)), nil
	case fnCount:
		switch target.Type() {
		case TypeArray, TypeObject:
			return NewLong(int64(target.Len())), nil
		}
		return NewLong(1), nil
	}
	return nil, fmt.Errorf("unsupported jsonpath filter function")
}

// lengthOf is the length() semantics: byte length for strings, member count
// for containers, zero for everything else.
func lengthOf(v *Value) int64 {
	switch v.Type() {
	case TypeString:
		return int64(len(v.s))
	case TypeArray:
		return int64(len(v.a))
	case TypeObject:
		return int64(v.o.Len())
	}
	return 0
}

//------------------------------------------------------------------------------
// COMPARISONS
//------------------------------------------------------------------------------

func compareOperands(op cmpOp, lhs, rhs []*Value) (bool, error) {
	switch op {
	case cmpEq:
		return equalsAny(lhs, rhs), nil
	case cmpNe:
		return notEquals(lhs, rhs), nil
	case cmpLt, cmpLe, cmpGt, cmpGe:
		return relational(op, lhs, rhs), nil
	case cmpRegex:
		return regexMatch(lhs, rhs)
	}
	return false, nil
}

// equalsAny is set-wise equality: some pair of nodes compares JSON-equal.
func equalsAny(lhs, rhs []*Value) bool {
	if len(lhs) == 0 || len(rhs) == 0 {
		return false
	}
	for _, l := range lhs {
		for _, r := range rhs {
			if l.Equals(r) {
				return true
			}
		}
	}
	return false
}

// notEquals holds when some lhs node has no equal among the rhs nodes. An
// empty lhs matches nothing; an empty rhs differs from everything.
func notEquals(lhs, rhs []*Value) bool {
	if len(lhs) == 0 {
		return false
	}
	if len(rhs) == 0 {
		return true
	}
	for _, l := range lhs {
		anyEqual := false
		for _, r := range rhs {
			if l.Equals(r) {
				anyEqual = true
				break
			}
		}
		if !anyEqual {
			return true
		}
	}
	return false
}

// relational holds when some pair coerces to a common scalar kind and the
// comparison holds for it. Booleans coerce to 0/1 for numeric comparison;
// strings compare byte-wise.
func relational(op cmpOp, lhs, rhs []*Value) bool {
	for _, l := range lhs {
		lNum, lIsNum := coerceNumber(l)
		lStr, lIsStr := l.Str()
		for _, r := range rhs {
			rNum, rIsNum := coerceNumber(r)
			rStr, rIsStr := r.Str()
			if lIsNum && rIsNum && compareNumbers(lNum, rNum, op) {
				return true
			}
			if lIsStr && rIsStr && compareStrings(lStr, rStr, op) {
				return true
			}
		}
	}
	return false
}

// regexMatch treats the first rhs node as a pattern and searches each lhs
// string for it.
func regexMatch(lhs, rhs []*Value) (bool, error) {
	if len(lhs) == 0 || len(rhs) == 0 {
		return false, nil
	}
	pattern, ok := rhs[0].Str()
	if !ok {
		return false, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid regular expression in jsonpath filter: %w", err)
	}
	for _, l := range lhs {
		if text, ok := l.Str(); ok && re.MatchString(text) {
			return true, nil
		}
	}
	return false, nil
}

func coerceNumber(v *Value) (float64, bool) {
	switch v.Type() {
	case TypeLong:
		return float64(v.i), true
	case TypeFloat, TypeDouble:
		return v.f, true
	case TypeBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func compareNumbers(l, r float64, op cmpOp) bool {
	switch op {
	case cmpLt:
		return l < r
	case cmpLe:
		return l <= r
	case cmpGt:
		return l > r
	case cmpGe:
		return l >= r
	}
	return false
}

func compareStrings(l, r string, op cmpOp) bool {
	switch op {
	case cmpLt:
		return l < r
	case cmpLe:
		return l <= r
	case cmpGt:
		return l > r
	case cmpGe:
		return l >= r
	}
	return false
}

//------------------------------------------------------------------------------
// TRUTHINESS
//------------------------------------------------------------------------------

func anyTruthy(nodes []*Value) bool {
	for _, n := range nodes {
		if truthy(n) {
			return true
		}
	}
	return false
}

// truthy: non-null, non-false, non-zero number, non-empty string or
// container.
func truthy(v *Value) bool {
	switch v.Type() {
	case TypeBool:
		return v.b
	case TypeLong:
		return v.i != 0
	case TypeFloat, TypeDouble:
		return v.f != 0
	case TypeString:
		return len(v.s) != 0
	case TypeArray:
		return len(v.a) != 0
	case TypeObject:
		return v.o.Len() != 0
	}
	return false
}
