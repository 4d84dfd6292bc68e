// Created by dhawalhost (2025-11-08 10:02:15)
package vjson

import "sort"

// Type identifies which variant a Value holds.
type Type uint8

const (
	TypeNull Type = iota
	TypeBool
	TypeLong
	TypeFloat
	TypeDouble
	TypeString
	TypeArray
	TypeObject
)

// String returns a short name for t.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return "invalid"
}

// Value is one node of a JSON document tree. The zero Value is null.
//
// Numbers keep their parsed or assigned width: a 64-bit integer stays
// TypeLong, a 32-bit float stays TypeFloat, a 64-bit double stays TypeDouble.
// Copying a Value preserves the width tag.
//
// A Value must not be mutated concurrently with any other access to the same
// document; independent documents may be used from different goroutines
// freely.
type Value struct {
	t Type
	b bool
	i int64
	f float64 // payload for both TypeFloat and TypeDouble
	s string
	a []*Value
	o Object
}

//------------------------------------------------------------------------------
// CONSTRUCTORS
//------------------------------------------------------------------------------

// NewNull returns a null Value.
func NewNull() *Value { return &Value{} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{t: TypeBool, b: b} }

// NewLong returns a 64-bit integer Value.
func NewLong(i int64) *Value { return &Value{t: TypeLong, i: i} }

// NewFloat returns a 32-bit float Value. The width tag is preserved through
// copies and serialization.
func NewFloat(f float32) *Value { return &Value{t: TypeFloat, f: float64(f)} }

// NewDouble returns a 64-bit float Value.
func NewDouble(f float64) *Value { return &Value{t: TypeDouble, f: f} }

// NewString returns a string Value. The string is stored as raw bytes; it is
// not required to be valid UTF-8. The serializer escapes bytes that do not
// decode one at a time, so its output is always valid UTF-8; a decoded code
// point beyond U+10FFFF is written as U+FFFD.
func NewString(s string) *Value { return &Value{t: TypeString, s: s} }

// NewArray returns an array Value holding elems.
func NewArray(elems ...*Value) *Value {
	v := &Value{t: TypeArray}
	for _, e := range elems {
		if e == nil {
			e = NewNull()
		}
		v.a = append(v.a, e)
	}
	return v
}

// NewObject returns an empty object Value.
func NewObject() *Value { return &Value{t: TypeObject} }

//------------------------------------------------------------------------------
// ACCESSORS
//------------------------------------------------------------------------------

// Type returns the variant tag. A nil receiver reads as null.
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

func (v *Value) IsNull() bool   { return v.Type() == TypeNull }
func (v *Value) IsBool() bool   { return v.Type() == TypeBool }
func (v *Value) IsLong() bool   { return v.Type() == TypeLong }
func (v *Value) IsFloat() bool  { return v.Type() == TypeFloat }
func (v *Value) IsDouble() bool { return v.Type() == TypeDouble }
func (v *Value) IsString() bool { return v.Type() == TypeString }
func (v *Value) IsArray() bool  { return v.Type() == TypeArray }
func (v *Value) IsObject() bool { return v.Type() == TypeObject }

// IsNumber reports whether v holds any numeric variant.
func (v *Value) IsNumber() bool {
	t := v.Type()
	return t == TypeLong || t == TypeFloat || t == TypeDouble
}

// Bool returns the boolean payload.
func (v *Value) Bool() (bool, bool) {
	if v.Type() != TypeBool {
		return false, false
	}
	return v.b, true
}

// Long returns the integer payload.
func (v *Value) Long() (int64, bool) {
	if v.Type() != TypeLong {
		return 0, false
	}
	return v.i, true
}

// Float32 returns the payload of a 32-bit float Value.
func (v *Value) Float32() (float32, bool) {
	if v.Type() != TypeFloat {
		return 0, false
	}
	return float32(v.f), true
}

// Float64 returns the payload of a floating-point Value of either width.
func (v *Value) Float64() (float64, bool) {
	switch v.Type() {
	case TypeFloat, TypeDouble:
		return v.f, true
	}
	return 0, false
}

// Number returns any numeric payload widened to float64.
func (v *Value) Number() (float64, bool) {
	switch v.Type() {
	case TypeLong:
		return float64(v.i), true
	case TypeFloat, TypeDouble:
		return v.f, true
	}
	return 0, false
}

// Str returns the string payload.
func (v *Value) Str() (string, bool) {
	if v.Type() != TypeString {
		return "", false
	}
	return v.s, true
}

// Array returns the element slice of an array Value. The slice aliases the
// document; mutating elements mutates the tree.
func (v *Value) Array() ([]*Value, bool) {
	if v.Type() != TypeArray {
		return nil, false
	}
	return v.a, true
}

// Object returns the object payload.
func (v *Value) Object() (*Object, bool) {
	if v.Type() != TypeObject {
		return nil, false
	}
	return &v.o, true
}

// Len returns the element count for containers and zero otherwise.
func (v *Value) Len() int {
	switch v.Type() {
	case TypeArray:
		return len(v.a)
	case TypeObject:
		return v.o.Len()
	}
	return 0
}

//------------------------------------------------------------------------------
// MUTATION
//------------------------------------------------------------------------------

// SetArray replaces v with an empty array, releasing any previous payload.
func (v *Value) SetArray() {
	*v = Value{t: TypeArray}
}

// SetObject replaces v with an empty object, releasing any previous payload.
func (v *Value) SetObject() {
	*v = Value{t: TypeObject}
}

// Item returns the i-th element of an array Value, or nil when v is not an
// array or i is out of range.
func (v *Value) Item(i int) *Value {
	if v.Type() != TypeArray || i < 0 || i >= len(v.a) {
		return nil
	}
	return v.a[i]
}

// SetIndex stores elem at index i, converting v to an array if needed and
// growing it with null fill when i is past the end.
func (v *Value) SetIndex(i int, elem *Value) {
	if i < 0 {
		return
	}
	if v.t != TypeArray {
		v.SetArray()
	}
	for len(v.a) <= i {
		v.a = append(v.a, NewNull())
	}
	if elem == nil {
		elem = NewNull()
	}
	v.a[i] = elem
}

// Key returns the member named name of an object Value, or nil.
func (v *Value) Key(name string) *Value {
	if v.Type() != TypeObject {
		return nil
	}
	return v.o.Get(name)
}

// SetKey stores elem under name, converting v to an object if needed.
func (v *Value) SetKey(name string, elem *Value) {
	if v.t != TypeObject {
		v.SetObject()
	}
	if elem == nil {
		elem = NewNull()
	}
	v.o.Set(name, elem)
}

// Contains reports whether v is an object with a member named name.
func (v *Value) Contains(name string) bool {
	return v.Key(name) != nil
}

//------------------------------------------------------------------------------
// COPY AND EQUALITY
//------------------------------------------------------------------------------

// Clone returns a deep copy of v. Numeric width tags are preserved.
func (v *Value) Clone() *Value {
	if v == nil {
		return NewNull()
	}
	nv := &Value{t: v.t, b: v.b, i: v.i, f: v.f, s: v.s}
	switch v.t {
	case TypeArray:
		nv.a = make([]*Value, len(v.a))
		for i, e := range v.a {
			nv.a[i] = e.Clone()
		}
	case TypeObject:
		nv.o.kvs = make([]keyValue, len(v.o.kvs))
		for i, e := range v.o.kvs {
			nv.o.kvs[i] = keyValue{k: e.k, v: e.v.Clone()}
		}
	}
	return nv
}

// Equals reports structural equality. Numbers compare by numeric value across
// widths; booleans never compare equal to numbers. Objects compare in their
// canonical sorted order, so insertion history is irrelevant.
func (v *Value) Equals(other *Value) bool {
	lt, rt := v.Type(), other.Type()
	if lt != rt {
		if v.IsNumber() && other.IsNumber() {
			ln, _ := v.Number()
			rn, _ := other.Number()
			return ln == rn
		}
		return false
	}
	switch lt {
	case TypeNull:
		return true
	case TypeBool:
		return v.b == other.b
	case TypeLong:
		return v.i == other.i
	case TypeFloat, TypeDouble:
		return v.f == other.f
	case TypeString:
		return v.s == other.s
	case TypeArray:
		if len(v.a) != len(other.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equals(other.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if v.o.Len() != other.o.Len() {
			return false
		}
		for i := range v.o.kvs {
			if v.o.kvs[i].k != other.o.kvs[i].k {
				return false
			}
			if !v.o.kvs[i].v.Equals(other.o.kvs[i].v) {
				return false
			}
		}
		return true
	}
	return false
}

//------------------------------------------------------------------------------
// OBJECT
//------------------------------------------------------------------------------

type keyValue struct {
	k string
	v *Value
}

// Object is an ordered mapping from string keys to Values. Members are kept
// sorted by byte-wise key order; that order is the canonical iteration order
// used by the serializer, the path evaluator, and equality.
type Object struct {
	kvs []keyValue
}

// Len returns the member count.
func (o *Object) Len() int { return len(o.kvs) }

// find locates key by binary search. Returns the insertion point and whether
// the key is present.
func (o *Object) find(key string) (int, bool) {
	i := sort.Search(len(o.kvs), func(i int) bool { return o.kvs[i].k >= key })
	return i, i < len(o.kvs) && o.kvs[i].k == key
}

// Get returns the member named key, or nil.
func (o *Object) Get(key string) *Value {
	if i, ok := o.find(key); ok {
		return o.kvs[i].v
	}
	return nil
}

// Set stores v under key, replacing any existing member.
func (o *Object) Set(key string, v *Value) {
	i, ok := o.find(key)
	if ok {
		o.kvs[i].v = v
		return
	}
	o.kvs = append(o.kvs, keyValue{})
	copy(o.kvs[i+1:], o.kvs[i:])
	o.kvs[i] = keyValue{k: key, v: v}
}

// Del removes the member named key and reports whether it was present.
func (o *Object) Del(key string) bool {
	i, ok := o.find(key)
	if !ok {
		return false
	}
	o.kvs = append(o.kvs[:i], o.kvs[i+1:]...)
	return true
}

// Keys returns the member names in canonical order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.kvs))
	for _, e := range o.kvs {
		keys = append(keys, e.k)
	}
	return keys
}

// Visit calls f for each member in canonical order.
func (o *Object) Visit(f func(key string, v *Value)) {
	if o == nil {
		return
	}
	for _, e := range o.kvs {
		f(e.k, e.v)
	}
}

// append adds a member without maintaining order. The parser appends members
// as they arrive and calls sort once at the closing brace.
func (o *Object) append(key string, v *Value) {
	o.kvs = append(o.kvs, keyValue{k: key, v: v})
}

// sort orders members by key and resolves duplicates last-write-wins.
func (o *Object) sort() {
	if len(o.kvs) < 2 {
		return
	}
	sort.SliceStable(o.kvs, func(i, j int) bool { return o.kvs[i].k < o.kvs[j].k })
	uniq := o.kvs[:1]
	for _, e := range o.kvs[1:] {
		if uniq[len(uniq)-1].k == e.k {
			uniq = uniq[:len(uniq)-1]
		}
		uniq = append(uniq, e)
	}
	o.kvs = uniq
}
