package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindString(t *testing.T) {
	tests := []struct {
		name string
		json string
		keys []string
		want string
		ok   bool
	}{
		{
			name: "top level key",
			json: `{"name": "Providencia"}`,
			keys: []string{"name"},
			want: "Providencia",
			ok:   true,
		},
		{
			name: "key order beats document order at top level",
			json: `{"name": "second", "description": "first"}`,
			keys: []string{"description", "name"},
			want: "first",
			ok:   true,
		},
		{
			name: "top level wins over nested",
			json: `{"nested": {"summary": "deep"}, "summary": "shallow"}`,
			keys: []string{"summary"},
			want: "shallow",
			ok:   true,
		},
		{
			name: "nested three levels inside a list inside a map",
			json: `{"data": {"items": [{"meta": {"info": {"summary": "found it"}}}]}}`,
			keys: []string{"summary"},
			want: "found it",
			ok:   true,
		},
		{
			name: "depth first in encounter order",
			json: `{"a": {"b": {"title": "from a"}}, "c": {"title": "from c"}}`,
			keys: []string{"title"},
			want: "from a",
			ok:   true,
		},
		{
			name: "wrong type skipped, search continues",
			json: `{"name": 12, "items": [{"name": "valid"}]}`,
			keys: []string{"name"},
			want: "valid",
			ok:   true,
		},
		{
			name: "blank string skipped",
			json: `{"summary": "  ", "other": {"summary": "real"}}`,
			keys: []string{"summary"},
			want: "real",
			ok:   true,
		},
		{
			name: "list root",
			json: `[1, {"name": "in list"}]`,
			keys: []string{"name"},
			want: "in list",
			ok:   true,
		},
		{
			name: "no match anywhere",
			json: `{"data": {"items": [{"meta": {"info": {"other": "x"}}}]}}`,
			keys: []string{"summary"},
			ok:   false,
		},
		{
			name: "scalar root",
			json: `"summary"`,
			keys: []string{"summary"},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.json))
			require.NoError(t, err)

			got, ok := FindString(n, tt.keys...)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindString_MissingNode(t *testing.T) {
	_, ok := FindString(Node{}, "name")
	assert.False(t, ok)
}

func TestFindProbability(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
		ok   bool
	}{
		{name: "fraction", json: `{"pop": 0.3}`, want: 0.3, ok: true},
		{name: "percentage normalized", json: `{"precipitation_probability": 70}`, want: 0.7, ok: true},
		{name: "numeric string", json: `{"rain_chance": "45"}`, want: 0.45, ok: true},
		{name: "fixed key order", json: `{"probability": 10, "pop": 90}`, want: 0.9, ok: true},
		{
			name: "nested in list",
			json: `{"data": {"days": [{"hours": [{"precipitationProbability": 55}]}]}}`,
			want: 0.55,
			ok:   true,
		},
		{
			name: "malformed value skipped",
			json: `{"pop": "high", "forecast": {"probability": "0.2"}}`,
			want: 0.2,
			ok:   true,
		},
		{name: "zero is a value", json: `{"pop": 0}`, want: 0, ok: true},
		{name: "absent", json: `{"temperature": 20}`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.json))
			require.NoError(t, err)

			got, ok := FindProbability(n)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFindProbability_Deterministic(t *testing.T) {
	n, err := Parse([]byte(`{"b": {"pop": 20}, "a": {"pop": 80}}`))
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		got, ok := FindProbability(n)
		require.True(t, ok)
		require.InDelta(t, 0.2, got, 1e-9)
	}
}

func TestFirstOf(t *testing.T) {
	n := Object(
		F("rain", String("n/a")),
		F("rainProbability", Number(40)),
		F("nested", Object(F("rain_probability", Number(90)))),
	)

	got, ok := FirstOf(n, Node.AsFloat, "rain_probability", "rainProbability", "rain")
	require.True(t, ok)
	assert.Equal(t, 40.0, got)

	_, ok = FirstOf(n, Node.AsFloat, "missing")
	assert.False(t, ok)
}
