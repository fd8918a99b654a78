// Package tree models provider responses whose shape is not known ahead of
// time. A Node is a scalar, an ordered mapping, or an ordered list; the zero
// Node stands for "nothing here" so lookups never need a nil check.
package tree

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Node holds.
type Kind uint8

const (
	Missing Kind = iota
	Scalar
	Map
	List
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Map:
		return "map"
	case List:
		return "list"
	default:
		return "missing"
	}
}

// Field is one key/value member of a Map node.
type Field struct {
	Key   string
	Value Node
}

// Node is an immutable response tree value.
type Node struct {
	kind   Kind
	value  any // string, float64, bool or nil for Scalar nodes
	fields []Field
	items  []Node
}

func String(s string) Node { return Node{kind: Scalar, value: s} }

func Number(f float64) Node { return Node{kind: Scalar, value: f} }

func Bool(b bool) Node { return Node{kind: Scalar, value: b} }

func Null() Node { return Node{kind: Scalar} }

// F is shorthand for a Field, used when building trees by hand.
func F(key string, v Node) Field { return Field{Key: key, Value: v} }

// Object builds a Map node. Keys are unique: a repeated key replaces the
// earlier value but keeps the earlier position.
func Object(fields ...Field) Node {
	out := make([]Field, 0, len(fields))
	pos := make(map[string]int, len(fields))
	for _, f := range fields {
		if i, ok := pos[f.Key]; ok {
			out[i].Value = f.Value
			continue
		}
		pos[f.Key] = len(out)
		out = append(out, f)
	}
	return Node{kind: Map, fields: out}
}

// Array builds a List node.
func Array(items ...Node) Node {
	return Node{kind: List, items: append([]Node(nil), items...)}
}

func (n Node) Kind() Kind { return n.kind }

// Exists reports whether the node holds anything, including a JSON null.
func (n Node) Exists() bool { return n.kind != Missing }

// IsNull reports whether the node is a scalar null.
func (n Node) IsNull() bool { return n.kind == Scalar && n.value == nil }

// Len returns the number of fields of a Map or items of a List.
func (n Node) Len() int {
	switch n.kind {
	case Map:
		return len(n.fields)
	case List:
		return len(n.items)
	default:
		return 0
	}
}

// Fields returns the members of a Map node in insertion order. The slice must
// not be modified.
func (n Node) Fields() []Field {
	if n.kind != Map {
		return nil
	}
	return n.fields
}

// Items returns the elements of a List node. The slice must not be modified.
func (n Node) Items() []Node {
	if n.kind != List {
		return nil
	}
	return n.items
}

// Get looks up a key in a Map node.
func (n Node) Get(key string) (Node, bool) {
	if n.kind != Map {
		return Node{}, false
	}
	for _, f := range n.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Node{}, false
}

// Index looks up an element of a List node.
func (n Node) Index(i int) (Node, bool) {
	if n.kind != List || i < 0 || i >= len(n.items) {
		return Node{}, false
	}
	return n.items[i], true
}

// Path walks nested nodes. String steps index maps and int steps index lists;
// any other step, or any miss along the way, yields the missing node.
func (n Node) Path(steps ...any) Node {
	cur := n
	for _, step := range steps {
		var ok bool
		switch s := step.(type) {
		case string:
			cur, ok = cur.Get(s)
		case int:
			cur, ok = cur.Index(s)
		}
		if !ok {
			return Node{}
		}
	}
	return cur
}

// AsString returns the value of a string scalar.
func (n Node) AsString() (string, bool) {
	if n.kind != Scalar {
		return "", false
	}
	s, ok := n.value.(string)
	return s, ok
}

// AsFloat coerces a number, or a string holding a decimal number, to a
// finite float64. Anything else is not a number.
func (n Node) AsFloat() (float64, bool) {
	if n.kind != Scalar {
		return 0, false
	}
	var f float64
	switch v := n.value.(type) {
	case float64:
		f = v
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.ContainsAny(s, "xX") {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Text renders a non-null scalar as a string. Numbers use the shortest
// representation, so 3 renders as "3".
func (n Node) Text() (string, bool) {
	if n.kind != Scalar {
		return "", false
	}
	switch v := n.value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
