package object

import (
	"testing"

	"github.com/typeward/typeward/typeexpr"
)

func TestDecay(t *testing.T) {
	widget := typeexpr.NewClass("Widget")
	box := typeexpr.NewGenericClass("Box")
	point := typeexpr.NewRecordType("Point",
		typeexpr.Field{Name: "x", Type: typeexpr.Simple{Class: typeexpr.Int}})

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "None"},
		{"bool", true, "Bool"},
		{"int", 1, "Int"},
		{"float", 1.5, "Float"},
		{"complex", 1 + 1i, "Complex"},
		{"string", "a", "Str"},
		{"bytes", []byte("a"), "Bytes"},
		{"instance", NewInstance(widget), "Widget"},
		{"generic instance", NewGenericInstance(box, typeexpr.Simple{Class: typeexpr.Str}), "Box<Str>"},
		{"tuple", Tuple{1, "a"}, "(Int, Str)"},
		{"empty tuple", Tuple{}, "()"},
		{"homogeneous list", []any{1, 2, 3}, "List<Int>"},
		{"mixed list", []any{1, "a", 2}, "List<Int | Str>"},
		{"empty list", []any{}, "List"},
		{"typed slice", []int{1, 2}, "List<Int>"},
		{"set", NewSet("a", "b"), "Set<Str>"},
		{"empty set", NewSet(), "Set"},
		{"dict", map[string]any{"a": 1, "b": 2}, "Dict<Str, Int>"},
		{"mixed dict", map[string]any{"a": 1, "b": nil, "c": 1.5}, "Dict<Str, Float | Int | None>"},
		{"empty dict", map[string]any{}, "Dict"},
		{"nested list", []any{[]any{"s"}}, "List<List<Str>>"},
		{"function", func() {}, "Callable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decay(tt.value).String(); got != tt.want {
				t.Errorf("Decay(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}

	rec, err := NewRecord(point, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := Decay(rec).String(); got != "Point(x: Int)" {
		t.Errorf("Decay(record) = %q, want %q", got, "Point(x: Int)")
	}
}

// Decay must render identically however the container happens to iterate.
func TestDecayDeterministic(t *testing.T) {
	value := map[string]any{"a": 1, "b": "s", "c": nil, "d": 2.0, "e": 7}
	want := Decay(value).String()
	for i := 0; i < 20; i++ {
		if got := Decay(value).String(); got != want {
			t.Fatalf("decay of the same value rendered differently: %q vs %q", got, want)
		}
	}
}
