package tree

import (
	"bytes"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a response body is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid JSON document")

// Parse decodes a JSON document into a Node, keeping object members in
// document order. An empty or whitespace-only body yields the missing node.
func Parse(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Node{}, nil
	}
	if !gjson.ValidBytes(data) {
		return Node{}, ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) Node {
	switch {
	case r.IsObject():
		var fields []Field
		r.ForEach(func(key, value gjson.Result) bool {
			fields = append(fields, Field{Key: key.String(), Value: fromResult(value)})
			return true
		})
		return Object(fields...)
	case r.IsArray():
		var items []Node
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, fromResult(value))
			return true
		})
		return Node{kind: List, items: items}
	}

	switch r.Type {
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		return Number(r.Num)
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	default:
		return Null()
	}
}
