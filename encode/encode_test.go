package encode

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	rec "github.com/recfmt/go-rec"
	"github.com/recfmt/go-rec/ir"
	"github.com/recfmt/go-rec/num"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func checkRender(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("render mismatch\n got: %q\nwant: %q\ndiff: %s",
		got, want, dmp.DiffPrettyText(diffs))
}

func point() ir.Value {
	return ir.FromStruct(&ir.Struct{
		Name:   "Point",
		Fields: ir.NamedFields().Set("x", ir.FromInt(1)).Set("y", ir.FromInt(-2)),
	})
}

func abMap() ir.Value {
	m := ir.NewMap(2)
	m.Insert(ir.FromString("a"), ir.FromUint(1))
	m.Insert(ir.FromString("b"), ir.FromUint(2))
	return ir.FromMap(m)
}

func TestEncodeStruct(t *testing.T) {
	got, err := Marshal(point())
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "Point(\n    x: +1,\n    y: -2,\n)")
}

func TestEncodeMap(t *testing.T) {
	got, err := Marshal(abMap())
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "{\n    \"a\": 1,\n    \"b\": 2,\n}")
}

func TestEncodeOption(t *testing.T) {
	got, err := Marshal(ir.Some(ir.FromInt(5)))
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "Some(+5)")

	got, err = Marshal(ir.None())
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "None")
}

func TestEncodePrimitives(t *testing.T) {
	tests := []struct {
		name string
		v    ir.Value
		want string
	}{
		{"true", ir.FromBool(true), "true"},
		{"false", ir.FromBool(false), "false"},
		{"unit", ir.Unit(), "()"},
		{"unit struct", ir.FromStruct(&ir.Struct{Name: "Marker"}), "Marker"},
		{"signed zero", ir.FromInt(0), "+0"},
		{"negative", ir.FromInt(-42), "-42"},
		{"min int64", ir.FromInt(math.MinInt64), "-9223372036854775808"},
		{"unsigned", ir.FromUint(42), "42"},
		{"unsigned wide", ir.FromUnsigned(num.U128(1, 0)), "18446744073709551616"},
		{"float", ir.FromFloat(0.5), "0.5"},
		{"float negative", ir.FromFloat(-2.25), "-2.25"},
		{"char", ir.FromChar('a'), "'a'"},
		{"char escape", ir.FromChar('\n'), `'\n'`},
		{"string", ir.FromString("hello"), `"hello"`},
		{"string escape", ir.FromString("a\"b"), `"a\"b"`},
		{"bytes", ir.FromBytes([]byte("hi")), `b"aGk="`},
		{"empty bytes", ir.FromBytes(nil), `b""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			checkRender(t, got, tt.want)
		})
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	tests := []struct {
		name string
		v    ir.Value
		want string
	}{
		{"array", ir.FromSlice(nil), "[]"},
		{"map", ir.FromMap(ir.NewMap(0)), "{}"},
		{"named struct", ir.FromStruct(&ir.Struct{Name: "Empty", Fields: ir.NamedFields()}), "Empty()"},
		{"anonymous tuple", ir.FromStruct(&ir.Struct{Fields: &ir.Fields{}}), "()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.v)
			if err != nil {
				t.Fatal(err)
			}
			checkRender(t, got, tt.want)
		})
	}
}

func TestEncodeDepthLimitZero(t *testing.T) {
	tests := []struct {
		name string
		v    ir.Value
		want string
	}{
		{"array", ir.FromSlice([]ir.Value{ir.FromUint(1), ir.FromUint(2)}), "[ 1, 2 ]"},
		{"struct", point(), "Point( x:+1, y:-2 )"},
		{"map", abMap(), `{ "a":1, "b":2 }`},
		{"nested", ir.FromSlice([]ir.Value{ir.FromSlice([]ir.Value{ir.FromUint(1)})}), "[ [ 1 ] ]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.v, DepthLimit(0))
			if err != nil {
				t.Fatal(err)
			}
			checkRender(t, got, tt.want)
			if strings.Contains(got, "\n") {
				t.Error("DepthLimit(0) output contains a newline")
			}
		})
	}
}

func TestEncodeDepthLimitOne(t *testing.T) {
	v := ir.FromStruct(&ir.Struct{
		Name: "Path",
		Fields: ir.NamedFields().Set("pts",
			ir.FromSlice([]ir.Value{ir.FromInt(1), ir.FromInt(2)})),
	})
	got, err := Marshal(v, DepthLimit(1))
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "Path(\n    pts: [ +1, +2 ],\n)")
}

func TestEncodeIndent(t *testing.T) {
	got, err := Marshal(abMap(), WithIndent(Tabs(1)))
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "{\n\t\"a\": 1,\n\t\"b\": 2,\n}")

	got, err = Marshal(abMap(), WithIndent(Spaces(2)))
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "{\n  \"a\": 1,\n  \"b\": 2,\n}")
}

func TestEncodeNesting(t *testing.T) {
	inner := ir.NewMap(1)
	inner.Insert(ir.FromString("k"), ir.FromUint(9))
	v := ir.FromSlice([]ir.Value{ir.FromMap(inner)})

	got, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "[\n    {\n        \"k\": 9,\n    },\n]")
}

func TestEncodeNewtypeWrapsContainer(t *testing.T) {
	got, err := Marshal(ir.Some(point()))
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "Some(Point(\n    x: +1,\n    y: -2,\n))")
}

func TestEncodeTuple(t *testing.T) {
	got, err := Marshal(ir.Tuple(ir.FromUint(1), ir.FromUint(2)))
	if err != nil {
		t.Fatal(err)
	}
	checkRender(t, got, "(\n    1,\n    2,\n)")
}

func TestEncodeDeterministic(t *testing.T) {
	v := ir.FromStruct(&ir.Struct{
		Name: "Doc",
		Fields: ir.NamedFields().
			Set("m", abMap()).
			Set("p", point()).
			Set("opt", ir.Some(ir.FromFloat(0.5))),
	})
	first := MustString(v)
	for i := 0; i < 4; i++ {
		if again := MustString(v); again != first {
			t.Fatalf("render %d differed:\n%s\nvs\n%s", i, again, first)
		}
	}
}

type failWriter struct {
	limit int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.limit <= 0 {
		return 0, io.ErrShortWrite
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestEncodeWriterFailure(t *testing.T) {
	err := Encode(point(), &failWriter{limit: 4})
	if err == nil {
		t.Fatal("Encode() succeeded on a failing writer")
	}
	var e *rec.Error
	if !errors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if e.Kind != rec.KindIO {
		t.Errorf("Kind = %v, want KindIO", e.Kind)
	}
	if !errors.Is(err, io.ErrShortWrite) {
		t.Error("underlying write error lost")
	}
}

func TestColors(t *testing.T) {
	c := NewColors()
	if got := c.Get(BoolColor)("x"); got == "" {
		t.Error("color function produced nothing")
	}
	// Percent signs must not be treated as format verbs.
	if got := c.sprint(StringColor, `"100%"`); !strings.Contains(got, "100%") {
		t.Errorf("percent escaping broke the token: %q", got)
	}
}
