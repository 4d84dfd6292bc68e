// Created by dhawalhost (2025-11-11 10:18:36)
package vjson

import (
	"errors"
	"sort"
)

// Errors reported by path evaluation. Compile failures carry their own
// position-bearing messages.
var (
	ErrRelativePath  = errors.New("jsonpath expression must start with '$'")
	ErrSliceStepZero = errors.New("jsonpath slice step cannot be zero")
)

// JSONPath evaluates expr against the document rooted at v and returns the
// matching nodes in evaluation order. The returned pointers alias the
// document: mutating them mutates the tree. Relative ('@'-rooted)
// expressions are rejected here; they are only meaningful inside filters.
func (v *Value) JSONPath(expr string) ([]*Value, error) {
	compiled, err := compiledPathFor(expr)
	if err != nil {
		return nil, err
	}
	if compiled.relative {
		return nil, ErrRelativePath
	}
	return evalSteps(v, compiled.steps, v)
}

// UpdateJSONPath overwrites every node matching expr with newValue and
// returns the number of nodes changed. The first match takes ownership of
// newValue; further matches receive deep copies, so the caller must not use
// newValue afterwards.
func (v *Value) UpdateJSONPath(expr string, newValue *Value) (int, error) {
	matches, err := v.JSONPath(expr)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}
	if newValue == nil {
		newValue = NewNull()
	}
	*matches[0] = *newValue
	for _, m := range matches[1:] {
		*m = *matches[0].Clone()
	}
	return len(matches), nil
}

// DeleteJSONPath removes every node matching expr from its parent and
// returns the number removed. Array slots under a common parent are removed
// highest index first so earlier selections stay valid. A match on the root
// itself is ignored.
func (v *Value) DeleteJSONPath(expr string) (int, error) {
	compiled, err := compiledPathFor(expr)
	if err != nil {
		return 0, err
	}
	if compiled.relative {
		return 0, ErrRelativePath
	}
	matches, err := evalLocations(v, compiled.steps, v)
	if err != nil {
		return 0, err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].kind == locIndex && matches[j].kind == locIndex {
			return matches[i].index > matches[j].index
		}
		return false
	})
	count := 0
	for _, m := range matches {
		if m.parent == nil {
			continue
		}
		switch m.kind {
		case locIndex:
			if m.parent.t == TypeArray && m.index < len(m.parent.a) {
				m.parent.a = append(m.parent.a[:m.index], m.parent.a[m.index+1:]...)
				count++
			}
		case locKey:
			if m.parent.t == TypeObject && m.parent.o.Del(m.key) {
				count++
			}
		}
	}
	return count, nil
}

//------------------------------------------------------------------------------
// READ EVALUATION
//------------------------------------------------------------------------------

// evalSteps applies a step list to a working set that starts as {start}.
// Each step maps the set to the nodes it selects, in the canonical iteration
// order of the containers involved.
func evalSteps(start *Value, steps []pathStep, root *Value) ([]*Value, error) {
	current := []*Value{start}
	if len(steps) == 0 {
		return current, nil
	}
	var next []*Value
	var descendants []*Value
	for si := range steps {
		step := &steps[si]
		base := current
		if step.recursive {
			descendants = descendants[:0]
			for _, node := range current {
				descendants = collectDescendants(node, descendants)
			}
			base = descendants
		}
		next = next[:0]
		for _, node := range base {
			var err error
			next, err = applyStep(node, step, next, root)
			if err != nil {
				return nil, err
			}
		}
		current, next = next, current
	}
	return append([]*Value(nil), current...), nil
}

func applyStep(node *Value, step *pathStep, out []*Value, root *Value) ([]*Value, error) {
	switch step.kind {
	case stepName:
		if node.t == TypeObject {
			if child := node.o.Get(step.name); child != nil {
				out = append(out, child)
			}
		}
	case stepWildcard:
		out = appendChildren(node, out)
	case stepIndices:
		if node.t == TypeArray {
			for _, raw := range step.indices {
				if idx, ok := normalizeIndex(raw, len(node.a)); ok {
					out = append(out, node.a[idx])
				}
			}
		}
	case stepSlice:
		return applySlice(node, &step.slice, out)
	case stepUnion:
		for i := range step.union {
			var err error
			out, err = applyUnionEntry(node, &step.union[i], out)
			if err != nil {
				return nil, err
			}
		}
	case stepFilter:
		if step.filter == nil {
			break
		}
		for _, child := range childValues(node) {
			ok, err := evalFilter(step.filter, root, child)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, child)
			}
		}
	}
	return out, nil
}

func appendChildren(node *Value, out []*Value) []*Value {
	switch node.t {
	case TypeArray:
		out = append(out, node.a...)
	case TypeObject:
		for _, e := range node.o.kvs {
			out = append(out, e.v)
		}
	}
	return out
}

func childValues(node *Value) []*Value {
	switch node.t {
	case TypeArray:
		return node.a
	case TypeObject:
		children := make([]*Value, 0, len(node.o.kvs))
		for _, e := range node.o.kvs {
			children = append(children, e.v)
		}
		return children
	}
	return nil
}

// collectDescendants appends node and every descendant in pre-order.
func collectDescendants(node *Value, out []*Value) []*Value {
	out = append(out, node)
	switch node.t {
	case TypeArray:
		for _, e := range node.a {
			out = collectDescendants(e, out)
		}
	case TypeObject:
		for _, e := range node.o.kvs {
			out = collectDescendants(e.v, out)
		}
	}
	return out
}

func normalizeIndex(index int64, size int) (int, bool) {
	if index < 0 {
		index += int64(size)
	}
	if index < 0 || index >= int64(size) {
		return 0, false
	}
	return int(index), true
}

// sliceBounds normalizes a slice against an array length, Python-style:
// clamped to [0,len] for positive steps and [-1,len-1] for negative ones.
func sliceBounds(s *sliceArg, size int64) (start, end, step int64, err error) {
	step = int64(1)
	if s.hasStep {
		step = s.step
	}
	if step == 0 {
		return 0, 0, 0, ErrSliceStepZero
	}
	if step > 0 {
		start, end = int64(0), size
		if s.hasStart {
			start = s.start
		}
		if s.hasEnd {
			end = s.end
		}
		if start < 0 {
			start += size
		}
		if end < 0 {
			end += size
		}
		start = min(max(start, 0), size)
		end = min(max(end, 0), size)
		return start, end, step, nil
	}
	start, end = size-1, int64(-1)
	if s.hasStart {
		start = s.start
		if start < 0 {
			start += size
		}
	}
	if s.hasEnd {
		end = s.end
		if end < 0 {
			end += size
		}
	}
	if start >= size {
		start = size - 1
	}
	if start < 0 {
		start = -1
	}
	if end >= size {
		end = size - 1
	}
	if end < -1 {
		end = -1
	}
	return start, end, step, nil
}

func applySlice(node *Value, s *sliceArg, out []*Value) ([]*Value, error) {
	if node.t != TypeArray || len(node.a) == 0 {
		return out, nil
	}
	size := int64(len(node.a))
	start, end, step, err := sliceBounds(s, size)
	if err != nil {
		return nil, err
	}
	if step > 0 {
		if start < end {
			out = grow(out, int((end-start+step-1)/step))
		}
		for i := start; i < end; i += step {
			out = append(out, node.a[i])
		}
	} else {
		for i := start; i > end; i += step {
			if i >= 0 && i < size {
				out = append(out, node.a[i])
			}
		}
	}
	return out, nil
}

func grow(s []*Value, n int) []*Value {
	if cap(s)-len(s) >= n {
		return s
	}
	ns := make([]*Value, len(s), len(s)+n)
	copy(ns, s)
	return ns
}

func applyUnionEntry(node *Value, entry *unionEntry, out []*Value) ([]*Value, error) {
	switch entry.kind {
	case unionName:
		if node.t == TypeObject {
			if child := node.o.Get(entry.name); child != nil {
				out = append(out, child)
			}
		}
	case unionIndex:
		if node.t == TypeArray {
			if idx, ok := normalizeIndex(entry.index, len(node.a)); ok {
				out = append(out, node.a[idx])
			}
		}
	case unionSlice:
		return applySlice(node, &entry.slice, out)
	case unionWildcard:
		out = appendChildren(node, out)
	}
	return out, nil
}

//------------------------------------------------------------------------------
// LOCATION-AWARE EVALUATION
//------------------------------------------------------------------------------

type locationKind uint8

const (
	locRoot locationKind = iota
	locIndex
	locKey
)

// location pairs a selected node with the parent and slot it occupies, which
// deletion needs to splice it out. The starting node has no parent.
type location struct {
	node   *Value
	parent *Value
	kind   locationKind
	index  int
	key    string
}

func childLocation(parent *Value, idx int, key string, kind locationKind, node *Value) location {
	return location{node: node, parent: parent, kind: kind, index: idx, key: key}
}

// evalLocations mirrors evalSteps but tracks each selection's parent and
// slot. Slice entries inside a union select nothing here; reads honor them,
// so delete-through-union-slice is asymmetric with jsonpath.
func evalLocations(start *Value, steps []pathStep, root *Value) ([]location, error) {
	current := []location{{node: start, kind: locRoot}}
	if len(steps) == 0 {
		return current, nil
	}
	var next []location
	var descendants []location
	for si := range steps {
		step := &steps[si]
		base := current
		if step.recursive {
			descendants = descendants[:0]
			for _, item := range current {
				descendants = collectDescendantLocations(item, descendants)
			}
			base = descendants
		}
		next = next[:0]
		for _, item := range base {
			var err error
			next, err = applyLocationStep(item, step, next, root)
			if err != nil {
				return nil, err
			}
		}
		current, next = next, current
	}
	return append([]location(nil), current...), nil
}

// collectDescendantLocations appends item and every descendant pre-order,
// keeping parent and slot for each.
func collectDescendantLocations(item location, out []location) []location {
	out = append(out, item)
	node := item.node
	switch node.t {
	case TypeArray:
		for i, e := range node.a {
			out = collectDescendantLocations(childLocation(node, i, "", locIndex, e), out)
		}
	case TypeObject:
		for _, e := range node.o.kvs {
			out = collectDescendantLocations(childLocation(node, 0, e.k, locKey, e.v), out)
		}
	}
	return out
}

func applyLocationStep(item location, step *pathStep, out []location, root *Value) ([]location, error) {
	node := item.node
	switch step.kind {
	case stepName:
		if node.t == TypeObject {
			if i, ok := node.o.find(step.name); ok {
				out = append(out, childLocation(node, 0, step.name, locKey, node.o.kvs[i].v))
			}
		}
	case stepWildcard:
		out = appendChildLocations(node, out)
	case stepIndices:
		if node.t == TypeArray {
			for _, raw := range step.indices {
				if idx, ok := normalizeIndex(raw, len(node.a)); ok {
					out = append(out, childLocation(node, idx, "", locIndex, node.a[idx]))
				}
			}
		}
	case stepSlice:
		return applySliceLocations(node, &step.slice, out)
	case stepUnion:
		for i := range step.union {
			entry := &step.union[i]
			switch entry.kind {
			case unionName:
				if node.t == TypeObject {
					if j, ok := node.o.find(entry.name); ok {
						out = append(out, childLocation(node, 0, entry.name, locKey, node.o.kvs[j].v))
					}
				}
			case unionIndex:
				if node.t == TypeArray {
					if idx, ok := normalizeIndex(entry.index, len(node.a)); ok {
						out = append(out, childLocation(node, idx, "", locIndex, node.a[idx]))
					}
				}
			case unionSlice:
				// Not supported for location-aware evaluation.
			case unionWildcard:
				out = appendChildLocations(node, out)
			}
		}
	case stepFilter:
		if step.filter == nil {
			break
		}
		switch node.t {
		case TypeArray:
			for i, e := range node.a {
				ok, err := evalFilter(step.filter, root, e)
				if err != nil {
					return nil, err
				}
				if ok {
					out = append(out, childLocation(node, i, "", locIndex, e))
				}
			}
		case TypeObject:
			for _, e := range node.o.kvs {
				ok, err := evalFilter(step.filter, root, e.v)
				if err != nil {
					return nil, err
				}
				if ok {
					out = append(out, childLocation(node, 0, e.k, locKey, e.v))
				}
			}
		}
	}
	return out, nil
}

func appendChildLocations(node *Value, out []location) []location {
	switch node.t {
	case TypeArray:
		for i, e := range node.a {
			out = append(out, childLocation(node, i, "", locIndex, e))
		}
	case TypeObject:
		for _, e := range node.o.kvs {
			out = append(out, childLocation(node, 0, e.k, locKey, e.v))
		}
	}
	return out
}

func applySliceLocations(node *Value, s *sliceArg, out []location) ([]location, error) {
	if node.t != TypeArray || len(node.a) == 0 {
		return out, nil
	}
	size := int64(len(node.a))
	start, end, step, err := sliceBounds(s, size)
	if err != nil {
		return nil, err
	}
	if step > 0 {
		for i := start; i < end; i += step {
			out = append(out, childLocation(node, int(i), "", locIndex, node.a[i]))
		}
	} else {
		for i := start; i > end; i += step {
			if i >= 0 && i < size {
				out = append(out, childLocation(node, int(i), "", locIndex, node.a[i]))
			}
		}
	}
	return out, nil
}
