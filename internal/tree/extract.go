package tree

import (
	"strings"

	"order-weather/internal/types"
)

// ProbabilityKeys are the field names read as a precipitation probability,
// in order of preference.
var ProbabilityKeys = []string{
	"precipitation_probability",
	"precipitationProbability",
	"pop",
	"rain_chance",
	"precipitation",
	"probability",
}

// FindString returns the first non-blank string stored under one of keys.
// The keys are tried in order on the top-level map first; after that every
// nested map value and list element is searched depth-first in encounter
// order.
func FindString(n Node, keys ...string) (string, bool) {
	return find(n, keys, func(v Node) (string, bool) {
		s, ok := v.AsString()
		if !ok || strings.TrimSpace(s) == "" {
			return "", false
		}
		return s, true
	})
}

// FindNumber is FindString for numeric values. Numbers and decimal strings
// match; a value of any other type is skipped and the search goes on.
func FindNumber(n Node, keys ...string) (float64, bool) {
	return find(n, keys, Node.AsFloat)
}

// FindProbability locates a precipitation probability anywhere in the tree
// and returns it normalized to [0,1].
func FindProbability(n Node) (float64, bool) {
	raw, ok := FindNumber(n, ProbabilityKeys...)
	if !ok {
		return 0, false
	}
	return types.NormalizeProbability(raw), true
}

// FirstOf returns the first of keys on a Map node whose value accept takes.
// It does not descend into nested values.
func FirstOf[T any](n Node, accept func(Node) (T, bool), keys ...string) (T, bool) {
	for _, k := range keys {
		if v, ok := n.Get(k); ok {
			if out, ok := accept(v); ok {
				return out, true
			}
		}
	}
	var zero T
	return zero, false
}

func find[T any](n Node, keys []string, accept func(Node) (T, bool)) (T, bool) {
	switch n.kind {
	case Map:
		if out, ok := FirstOf(n, accept, keys...); ok {
			return out, true
		}
		for _, f := range n.fields {
			if out, ok := find(f.Value, keys, accept); ok {
				return out, true
			}
		}
	case List:
		for _, item := range n.items {
			if out, ok := find(item, keys, accept); ok {
				return out, true
			}
		}
	}
	var zero T
	return zero, false
}
